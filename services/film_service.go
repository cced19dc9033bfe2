package services

import (
	"context"
	"errors"
	"strings"

	"github.com/SebasDosman/vortex-bird-test/models"
	"github.com/SebasDosman/vortex-bird-test/repositories"
	"go.uber.org/zap"
)

// FilmRequest is the create body for a film
type FilmRequest struct {
	Title          string                    `json:"title" validate:"required,min=1,max=150"`
	Description    string                    `json:"description" validate:"required,min=1,max=1000"`
	ImageURL       string                    `json:"imageUrl" validate:"omitempty,url,max=500"`
	Genre          models.FilmGenre          `json:"genre" validate:"required,film_genre"`
	Classification models.FilmClassification `json:"classification" validate:"required,film_classification"`
	Duration       int                       `json:"duration" validate:"required,gt=0"`
	TicketPrice    float64                   `json:"ticketPrice" validate:"required,gte=1"`
}

// UpdateFilmRequest replaces the fields of an existing film
type UpdateFilmRequest struct {
	ID             int64                     `json:"id" validate:"required,gt=0"`
	Title          string                    `json:"title" validate:"required,min=1,max=150"`
	Description    string                    `json:"description" validate:"required,min=1,max=1000"`
	ImageURL       string                    `json:"imageUrl" validate:"omitempty,url,max=500"`
	Genre          models.FilmGenre          `json:"genre" validate:"required,film_genre"`
	Classification models.FilmClassification `json:"classification" validate:"required,film_classification"`
	Duration       int                       `json:"duration" validate:"required,gt=0"`
	TicketPrice    float64                   `json:"ticketPrice" validate:"required,gte=1"`
}

// FilmService manages the film catalogue
type FilmService struct {
	films  repositories.FilmRepository
	txMgr  repositories.TransactionManager
	logger *zap.Logger
}

// NewFilmService creates a new film service
func NewFilmService(films repositories.FilmRepository, txMgr repositories.TransactionManager, logger *zap.Logger) *FilmService {
	return &FilmService{films: films, txMgr: txMgr, logger: logger}
}

func (s *FilmService) List(ctx context.Context, page models.PageRequest) (models.Page[*models.Film], error) {
	films, err := s.films.List(ctx, page.Limit(), page.Offset())
	if err != nil {
		return models.Page[*models.Film]{}, WrapInternal("failed to list films", err)
	}
	return models.NewPage(films, page), nil
}

func (s *FilmService) ListEnabled(ctx context.Context, page models.PageRequest) (models.Page[*models.Film], error) {
	films, err := s.films.ListEnabled(ctx, page.Limit(), page.Offset())
	if err != nil {
		return models.Page[*models.Film]{}, WrapInternal("failed to list films", err)
	}
	return models.NewPage(films, page), nil
}

// SearchByTitle matches titles case-insensitively by substring
func (s *FilmService) SearchByTitle(ctx context.Context, title string, page models.PageRequest) (models.Page[*models.Film], error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Page[*models.Film]{}, ValidationError(map[string]string{"title": "must not be blank"})
	}
	films, err := s.films.SearchByTitle(ctx, title, page.Limit(), page.Offset())
	if err != nil {
		return models.Page[*models.Film]{}, WrapInternal("failed to search films", err)
	}
	return models.NewPage(films, page), nil
}

func (s *FilmService) GetByID(ctx context.Context, id int64) (*models.Film, error) {
	film, err := s.films.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, NotFoundf(msgFilmIDNotFound, id)
		}
		return nil, WrapInternal("failed to get film", err)
	}
	return film, nil
}

// Create adds an enabled film
func (s *FilmService) Create(ctx context.Context, req FilmRequest) (*models.Film, error) {
	film := models.NewFilm(req.Title, req.Description, req.ImageURL, req.Genre, req.Classification, req.Duration, req.TicketPrice)
	if err := s.films.Create(ctx, film); err != nil {
		return nil, WrapInternal("failed to create film", err)
	}
	s.logger.Info("film created", zap.Int64("film_id", film.ID), zap.String("title", film.Title))
	return film, nil
}

// Update replaces the fields of a film, keeping its enabled flag
func (s *FilmService) Update(ctx context.Context, req UpdateFilmRequest) (*models.Film, error) {
	return WithTransactionResult(ctx, s.txMgr, func(ctx context.Context, _ repositories.Transaction) (*models.Film, error) {
		current, err := s.GetByID(ctx, req.ID)
		if err != nil {
			return nil, err
		}

		film := models.NewFilm(req.Title, req.Description, req.ImageURL, req.Genre, req.Classification, req.Duration, req.TicketPrice)
		film.ID = current.ID
		film.Enabled = current.Enabled
		film.CreatedAt = current.CreatedAt

		if err := s.films.Update(ctx, film); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, NotFoundf(msgFilmIDNotFound, req.ID)
			}
			return nil, WrapInternal("failed to update film", err)
		}
		return film, nil
	})
}

// ToggleStatus flips the enabled flag of a film
func (s *FilmService) ToggleStatus(ctx context.Context, id int64) (*models.Film, error) {
	return WithTransactionResult(ctx, s.txMgr, func(ctx context.Context, _ repositories.Transaction) (*models.Film, error) {
		film, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		film.Enabled = !film.Enabled
		if err := s.films.Update(ctx, film); err != nil {
			return nil, WrapInternal("failed to update film", err)
		}
		s.logger.Info("film status toggled", zap.Int64("film_id", id), zap.Bool("enabled", film.Enabled))
		return film, nil
	})
}

func (s *FilmService) Delete(ctx context.Context, id int64) error {
	if err := s.films.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return NotFoundf(msgFilmIDNotFound, id)
		case errors.Is(err, repositories.ErrInvalidReference):
			return Conflictf(msgFilmInUse, id)
		}
		return WrapInternal("failed to delete film", err)
	}
	s.logger.Info("film deleted", zap.Int64("film_id", id))
	return nil
}
