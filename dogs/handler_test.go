package dogs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/dogadopt-go/apperror"
	"github.com/user/dogadopt-go/auth"
	"github.com/user/dogadopt-go/pagination"
)

// stubService is a canned Service implementation for handler tests. It records
// the arguments of the last call so tests can assert the wiring.
type stubService struct {
	registerResp *RegisterDogResponse
	adoptResp    *AdoptDogResponse
	removeResp   *RemoveDogResponse
	listRegResp  *RegisteredDogsResponse
	listAdoResp  *AdoptedDogsResponse
	err          error

	gotOwnerID      int
	gotAdopterID    int
	gotRequesterID  int
	gotDogID        string
	gotRegisterReq  RegisterDogRequest
	gotAdoptReq     AdoptDogRequest
	gotStatusFilter string
	gotParams       pagination.Params
}

func (s *stubService) Register(_ context.Context, ownerID int, req RegisterDogRequest) (*RegisterDogResponse, error) {
	s.gotOwnerID = ownerID
	s.gotRegisterReq = req
	return s.registerResp, s.err
}

func (s *stubService) Adopt(_ context.Context, dogID string, adopterID int, req AdoptDogRequest) (*AdoptDogResponse, error) {
	s.gotDogID = dogID
	s.gotAdopterID = adopterID
	s.gotAdoptReq = req
	return s.adoptResp, s.err
}

func (s *stubService) Remove(_ context.Context, dogID string, requesterID int) (*RemoveDogResponse, error) {
	s.gotDogID = dogID
	s.gotRequesterID = requesterID
	return s.removeResp, s.err
}

func (s *stubService) ListRegistered(_ context.Context, ownerID int, statusFilter string, p pagination.Params) (*RegisteredDogsResponse, error) {
	s.gotOwnerID = ownerID
	s.gotStatusFilter = statusFilter
	s.gotParams = p
	return s.listRegResp, s.err
}

func (s *stubService) ListAdopted(_ context.Context, adopterID int, p pagination.Params) (*AdoptedDogsResponse, error) {
	s.gotAdopterID = adopterID
	s.gotParams = p
	return s.listAdoResp, s.err
}

// newTestRouter mounts the handler behind a middleware that injects the
// authenticated user id, standing in for the JWT middleware.
func newTestRouter(svc Service, userID int) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/dogs", func(r chi.Router) {
		if userID != 0 {
			r.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
					ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
					next.ServeHTTP(w, req.WithContext(ctx))
				})
			})
		}
		NewHandler(svc).RegisterRoutes(r)
	})
	return r
}

func decodeMessage(t *testing.T, body []byte) string {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	msg, _ := payload["message"].(string)
	return msg
}

func TestHandleRegister(t *testing.T) {
	svc := &stubService{
		registerResp: &RegisterDogResponse{
			Message: "Dog registered successfully",
			Dog: NewDogView{
				ID:          "6f1c8e0a-0000-0000-0000-000000000001",
				Name:        "Buddy",
				Description: "A friendly dog",
				Status:      StatusAvailable,
				CreatedAt:   time.Now(),
			},
		},
	}
	router := newTestRouter(svc, 3)

	body := `{"name":"Buddy","description":"A friendly dog"}`
	req := httptest.NewRequest(http.MethodPost, "/api/dogs/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Dog registered successfully", decodeMessage(t, rec.Body.Bytes()))
	assert.Equal(t, 3, svc.gotOwnerID)
	assert.Equal(t, RegisterDogRequest{Name: "Buddy", Description: "A friendly dog"}, svc.gotRegisterReq)
}

func TestHandleRegisterInvalidBody(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(svc, 3)

	req := httptest.NewRequest(http.MethodPost, "/api/dogs/", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decodeMessage(t, rec.Body.Bytes()))
}

func TestHandleRegisterUnauthenticated(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(svc, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/dogs/", strings.NewReader(`{"name":"Buddy","description":"d"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access token required", decodeMessage(t, rec.Body.Bytes()))
}

func TestHandleAdopt(t *testing.T) {
	adoptionDate := time.Now()
	message := "Thanks!"
	svc := &stubService{
		adoptResp: &AdoptDogResponse{
			Message: "Dog adopted successfully",
			Dog: AdoptedDogView{
				ID:              "6f1c8e0a-0000-0000-0000-000000000001",
				Name:            "Buddy",
				Status:          StatusAdopted,
				Owner:           "testuser1",
				AdoptionMessage: &message,
				AdoptionDate:    &adoptionDate,
			},
		},
	}
	router := newTestRouter(svc, 9)

	body := `{"thankYouMessage":"Thanks!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/dogs/6f1c8e0a-0000-0000-0000-000000000001/adopt", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Dog adopted successfully", decodeMessage(t, rec.Body.Bytes()))
	assert.Equal(t, "6f1c8e0a-0000-0000-0000-000000000001", svc.gotDogID)
	assert.Equal(t, 9, svc.gotAdopterID)
	assert.Equal(t, "Thanks!", svc.gotAdoptReq.ThankYouMessage)
}

func TestHandleAdoptEmptyBody(t *testing.T) {
	svc := &stubService{
		adoptResp: &AdoptDogResponse{Message: "Dog adopted successfully"},
	}
	router := newTestRouter(svc, 9)

	// No body at all is accepted; the thank-you message is optional.
	req := httptest.NewRequest(http.MethodPost, "/api/dogs/6f1c8e0a-0000-0000-0000-000000000001/adopt", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.gotAdoptReq.ThankYouMessage)
}

func TestHandleAdoptServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", apperror.NewNotFoundError("Dog not found", nil), http.StatusNotFound, "Dog not found"},
		{"already adopted", apperror.NewBadRequestError("Dog is already adopted", nil), http.StatusBadRequest, "Dog is already adopted"},
		{"own dog", apperror.NewBadRequestError("You cannot adopt your own dog", nil), http.StatusBadRequest, "You cannot adopt your own dog"},
		{"invalid id", apperror.NewBadRequestError("Invalid dog ID", nil), http.StatusBadRequest, "Invalid dog ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			router := newTestRouter(svc, 9)

			req := httptest.NewRequest(http.MethodPost, "/api/dogs/abc/adopt", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rec.Body.Bytes()))
		})
	}
}

func TestHandleRemove(t *testing.T) {
	svc := &stubService{removeResp: &RemoveDogResponse{Message: "Dog removed successfully"}}
	router := newTestRouter(svc, 4)

	req := httptest.NewRequest(http.MethodDelete, "/api/dogs/6f1c8e0a-0000-0000-0000-000000000001", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Dog removed successfully", decodeMessage(t, rec.Body.Bytes()))
	assert.Equal(t, 4, svc.gotRequesterID)
}

func TestHandleRemoveForbidden(t *testing.T) {
	svc := &stubService{err: apperror.NewForbiddenError("You can only remove dogs you registered", nil)}
	router := newTestRouter(svc, 4)

	req := httptest.NewRequest(http.MethodDelete, "/api/dogs/6f1c8e0a-0000-0000-0000-000000000001", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You can only remove dogs you registered", decodeMessage(t, rec.Body.Bytes()))
}

func TestHandleListRegistered(t *testing.T) {
	svc := &stubService{
		listRegResp: &RegisteredDogsResponse{
			Dogs:       []OwnedDogItem{},
			Pagination: pagination.Meta{CurrentPage: 2, TotalPages: 3, TotalItems: 25, HasNext: true, HasPrev: true},
		},
	}
	router := newTestRouter(svc, 5)

	req := httptest.NewRequest(http.MethodGet, "/api/dogs/registered?page=2&limit=10&status=available", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, svc.gotOwnerID)
	assert.Equal(t, "available", svc.gotStatusFilter)
	assert.Equal(t, pagination.Params{Page: 2, Limit: 10}, svc.gotParams)

	var resp RegisteredDogsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 25, resp.Pagination.TotalItems)
	assert.True(t, resp.Pagination.HasNext)
}

func TestHandleListRegisteredDefaultParams(t *testing.T) {
	svc := &stubService{listRegResp: &RegisteredDogsResponse{Dogs: []OwnedDogItem{}}}
	router := newTestRouter(svc, 5)

	req := httptest.NewRequest(http.MethodGet, "/api/dogs/registered", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pagination.Params{Page: 1, Limit: 10}, svc.gotParams)
	assert.Empty(t, svc.gotStatusFilter)
}

func TestHandleListAdopted(t *testing.T) {
	svc := &stubService{
		listAdoResp: &AdoptedDogsResponse{
			Dogs:       []AdoptedDogItem{},
			Pagination: pagination.Meta{CurrentPage: 1, TotalPages: 0, TotalItems: 0},
		},
	}
	router := newTestRouter(svc, 6)

	req := httptest.NewRequest(http.MethodGet, "/api/dogs/adopted?limit=100", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 6, svc.gotAdopterID)
	assert.Equal(t, pagination.MaxLimit, svc.gotParams.Limit)
}
