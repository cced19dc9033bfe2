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

// FilmService defines the catalogue operations the handler exposes
type FilmService interface {
	List(ctx context.Context, page models.PageRequest) (models.Page[*models.Film], error)
	ListEnabled(ctx context.Context, page models.PageRequest) (models.Page[*models.Film], error)
	SearchByTitle(ctx context.Context, title string, page models.PageRequest) (models.Page[*models.Film], error)
	GetByID(ctx context.Context, id int64) (*models.Film, error)
	Create(ctx context.Context, req services.FilmRequest) (*models.Film, error)
	Update(ctx context.Context, req services.UpdateFilmRequest) (*models.Film, error)
	ToggleStatus(ctx context.Context, id int64) (*models.Film, error)
	Delete(ctx context.Context, id int64) error
}

// FilmHandler handles film-related HTTP requests
type FilmHandler struct {
	service FilmService
	logger  *zap.Logger
}

// NewFilmHandler creates a new FilmHandler
func NewFilmHandler(service FilmService, logger *zap.Logger) *FilmHandler {
	return &FilmHandler{service: service, logger: logger}
}

// HandleList handles GET /film
func (h *FilmHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, h.service.List)
}

// HandleListEnabled handles GET /film/enabled
func (h *FilmHandler) HandleListEnabled(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, h.service.ListEnabled)
}

// HandleSearch handles GET /film/title/{title}
func (h *FilmHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	h.writePage(w, r, func(ctx context.Context, page models.PageRequest) (models.Page[*models.Film], error) {
		return h.service.SearchByTitle(ctx, title, page)
	})
}

func (h *FilmHandler) writePage(w http.ResponseWriter, r *http.Request, list func(context.Context, models.PageRequest) (models.Page[*models.Film], error)) {
	page, ok := pageRequest(w, r)
	if !ok {
		return
	}
	result, err := list(r.Context(), page)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, result)
}

// HandleGet handles GET /film/{id}
func (h *FilmHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	film, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, film)
}

// HandleCreate handles POST /film
func (h *FilmHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req services.FilmRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}
	film, err := h.service.Create(r.Context(), req)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteCreated(w, film)
}

// HandleUpdate handles PUT /film
func (h *FilmHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateFilmRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}
	film, err := h.service.Update(r.Context(), req)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, film)
}

// HandleToggleStatus handles PUT /film/{id}
func (h *FilmHandler) HandleToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	film, err := h.service.ToggleStatus(r.Context(), id)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, film)
}

// HandleDelete handles DELETE /film/{id}
func (h *FilmHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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
