package users

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicUserJSONShape(t *testing.T) {
	// The public view carries id and username and nothing else. Password
	// material never enters this type, so it cannot leak through responses.
	data, err := json.Marshal(PublicUser{ID: 1, Username: "testuser1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"username":"testuser1"}`, string(data))
}
