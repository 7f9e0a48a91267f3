package dogs

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/dogadopt-go/apperror"
	"github.com/user/dogadopt-go/auth"
	"github.com/user/dogadopt-go/pagination"
)

// Handler wraps the dog Service with HTTP handlers. All routes sit behind
// the JWT middleware, so the authenticated user id comes from the context.
type Handler struct {
	service Service
}

// NewHandler creates a new Handler instance.
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the dog routes on the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.handleRegister())
	r.Post("/{dogID}/adopt", h.handleAdopt())
	r.Delete("/{dogID}", h.handleRemove())
	r.Get("/registered", h.handleListRegistered())
	r.Get("/adopted", h.handleListAdopted())
}

// handleRegister godoc
// @Summary Register a dog for adoption
// @Description Lists a new dog for adoption, owned by the authenticated user.
// @Tags Dogs
// @Accept json
// @Produce json
// @Param dogBody body dogs.RegisterDogRequest true "Dog details"
// @Success 201 {object} dogs.RegisterDogResponse "Dog registered successfully"
// @Failure 400 {object} apperror.ErrorResponse "Missing, blank, or over-length fields"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /api/dogs [post]
func (h *Handler) handleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Access token required", nil))
			return
		}

		var req RegisterDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("Invalid request body", err))
			return
		}
		defer r.Body.Close()

		resp, err := h.service.Register(r.Context(), userID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, resp)
	}
}

// handleAdopt godoc
// @Summary Adopt a dog
// @Description Adopts an available dog listed by another user, with an optional thank-you message.
// @Tags Dogs
// @Accept json
// @Produce json
// @Param dogID path string true "Dog ID"
// @Param adoptBody body dogs.AdoptDogRequest false "Adoption details"
// @Success 200 {object} dogs.AdoptDogResponse "Dog adopted successfully"
// @Failure 400 {object} apperror.ErrorResponse "Invalid id, already adopted, or own dog"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} apperror.ErrorResponse "Dog not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /api/dogs/{dogID}/adopt [post]
func (h *Handler) handleAdopt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Access token required", nil))
			return
		}

		// The body is optional: adopting without a thank-you message is fine.
		var req AdoptDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			auth.WriteError(w, r, apperror.NewBadRequestError("Invalid request body", err))
			return
		}
		defer r.Body.Close()

		resp, err := h.service.Adopt(r.Context(), chi.URLParam(r, "dogID"), userID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// handleRemove godoc
// @Summary Remove a dog listing
// @Description Deletes an available dog. Only the owner may remove it, and adopted dogs cannot be removed.
// @Tags Dogs
// @Produce json
// @Param dogID path string true "Dog ID"
// @Success 200 {object} dogs.RemoveDogResponse "Dog removed successfully"
// @Failure 400 {object} apperror.ErrorResponse "Invalid id or dog already adopted"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} apperror.ErrorResponse "Not the owner"
// @Failure 404 {object} apperror.ErrorResponse "Dog not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /api/dogs/{dogID} [delete]
func (h *Handler) handleRemove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Access token required", nil))
			return
		}

		resp, err := h.service.Remove(r.Context(), chi.URLParam(r, "dogID"), userID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// handleListRegistered godoc
// @Summary List registered dogs
// @Description Lists the authenticated user's registered dogs, newest first. An unrecognized status filter is ignored.
// @Tags Dogs
// @Produce json
// @Param status query string false "Filter by status (available or adopted)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 50)"
// @Success 200 {object} dogs.RegisteredDogsResponse
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /api/dogs/registered [get]
func (h *Handler) handleListRegistered() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Access token required", nil))
			return
		}

		q := r.URL.Query()
		params := pagination.ParseParams(q.Get("page"), q.Get("limit"))

		resp, err := h.service.ListRegistered(r.Context(), userID, q.Get("status"), params)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// handleListAdopted godoc
// @Summary List adopted dogs
// @Description Lists the dogs the authenticated user has adopted, most recent adoption first.
// @Tags Dogs
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 50)"
// @Success 200 {object} dogs.AdoptedDogsResponse
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /api/dogs/adopted [get]
func (h *Handler) handleListAdopted() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Access token required", nil))
			return
		}

		q := r.URL.Query()
		params := pagination.ParseParams(q.Get("page"), q.Get("limit"))

		resp, err := h.service.ListAdopted(r.Context(), userID, params)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"message":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}
