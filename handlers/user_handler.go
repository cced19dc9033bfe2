package handlers

import (
	"context"
	"net/http"

	"github.com/SebasDosman/vortex-bird-test/models"
	"github.com/SebasDosman/vortex-bird-test/services"
	"github.com/SebasDosman/vortex-bird-test/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserService defines the account operations the handler exposes
type UserService interface {
	List(ctx context.Context, page models.PageRequest) (models.Page[models.UserProfile], error)
	ListEnabled(ctx context.Context, page models.PageRequest) (models.Page[models.UserProfile], error)
	GetByID(ctx context.Context, id int64) (*models.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*models.UserProfile, error)
	Create(ctx context.Context, req services.CreateUserRequest) (*models.UserProfile, error)
	Update(ctx context.Context, req services.UpdateUserRequest) (*models.UserProfile, error)
	ToggleStatus(ctx context.Context, id int64) (*models.UserProfile, error)
	Delete(ctx context.Context, id int64) error
}

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	service UserService
	logger  *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{service: service, logger: logger}
}

// HandleList handles GET /user
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, ok := pageRequest(w, r)
	if !ok {
		return
	}
	result, err := h.service.List(r.Context(), page)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, result)
}

// HandleListEnabled handles GET /user/enabled
func (h *UserHandler) HandleListEnabled(w http.ResponseWriter, r *http.Request) {
	page, ok := pageRequest(w, r)
	if !ok {
		return
	}
	result, err := h.service.ListEnabled(r.Context(), page)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, result)
}

// HandleGet handles GET /user/{id}
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, user)
}

// HandleGetByEmail handles GET /user/email/{email}
func (h *UserHandler) HandleGetByEmail(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, user)
}

// HandleCreate handles POST /user
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req services.CreateUserRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}
	user, err := h.service.Create(r.Context(), req)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteCreated(w, user)
}

// HandleUpdate handles PUT /user
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateUserRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}
	user, err := h.service.Update(r.Context(), req)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, user)
}

// HandleToggleStatus handles PUT /user/admin/{id}
func (h *UserHandler) HandleToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	user, err := h.service.ToggleStatus(r.Context(), id)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, user)
}

// HandleDelete handles DELETE /user/admin/{id}
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	utils.WriteNoContent(w)
}
