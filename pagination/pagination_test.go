package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"defaults when absent", "", "", 1, 10},
		{"plain values", "3", "20", 3, 20},
		{"zero page coerced to one", "0", "10", 1, 10},
		{"negative page coerced to one", "-7", "10", 1, 10},
		{"unparsable page coerced to one", "abc", "10", 1, 10},
		{"limit clamped to max", "1", "1000", 1, 50},
		{"negative limit clamped to one", "0", "-5", 1, 1},
		{"zero limit clamped to one", "2", "0", 2, 1},
		{"unparsable limit falls back to default", "2", "lots", 2, 10},
		{"limit at max boundary", "1", "50", 1, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseParams(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 94, Params{Page: 48, Limit: 2}.Offset())
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name  string
		p     Params
		total int
		want  Meta
	}{
		{
			"first of several pages",
			Params{Page: 1, Limit: 10}, 25,
			Meta{CurrentPage: 1, TotalPages: 3, TotalItems: 25, HasNext: true, HasPrev: false},
		},
		{
			"middle page",
			Params{Page: 2, Limit: 10}, 25,
			Meta{CurrentPage: 2, TotalPages: 3, TotalItems: 25, HasNext: true, HasPrev: true},
		},
		{
			"last page",
			Params{Page: 3, Limit: 10}, 25,
			Meta{CurrentPage: 3, TotalPages: 3, TotalItems: 25, HasNext: false, HasPrev: true},
		},
		{
			"exact multiple of limit",
			Params{Page: 2, Limit: 5}, 10,
			Meta{CurrentPage: 2, TotalPages: 2, TotalItems: 10, HasNext: false, HasPrev: true},
		},
		{
			"page past the end is not an error",
			Params{Page: 9, Limit: 10}, 25,
			Meta{CurrentPage: 9, TotalPages: 3, TotalItems: 25, HasNext: false, HasPrev: true},
		},
		{
			"no items",
			Params{Page: 1, Limit: 10}, 0,
			Meta{CurrentPage: 1, TotalPages: 0, TotalItems: 0, HasNext: false, HasPrev: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMeta(tt.p, tt.total))
		})
	}
}
