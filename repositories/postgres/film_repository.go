package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SebasDosman/vortex-bird-test/models"
	"github.com/SebasDosman/vortex-bird-test/repositories"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const filmColumns = `id, title, description, image_url, genre, classification, duration, ticket_price, enabled, created_at, updated_at`

// FilmRepository implements the repositories.FilmRepository interface
type FilmRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewFilmRepository creates a new film repository
func NewFilmRepository(db *DB, logger *zap.Logger) repositories.FilmRepository {
	return &FilmRepository{db: db, logger: logger}
}

// Create creates a new film
func (r *FilmRepository) Create(ctx context.Context, film *models.Film) error {
	query := `
		INSERT INTO films (title, description, image_url, genre, classification, duration, ticket_price, enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := GetExecutor(ctx, r.db).QueryRowContext(ctx, query,
		film.Title,
		film.Description,
		film.ImageURL,
		film.Genre,
		film.Classification,
		film.Duration,
		film.TicketPrice,
		film.Enabled,
		film.CreatedAt,
		film.UpdatedAt,
	).Scan(&film.ID)
	if err != nil {
		return translateError("create film", err)
	}

	r.logger.Debug("film created", zap.Int64("id", film.ID), zap.String("title", film.Title))
	return nil
}

// GetByID retrieves a film by ID
func (r *FilmRepository) GetByID(ctx context.Context, id int64) (*models.Film, error) {
	query := `SELECT ` + filmColumns + ` FROM films WHERE id = $1`
	film, err := scanFilm(GetExecutor(ctx, r.db).QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(fmt.Sprintf("get film %d", id), err)
	}
	return film, nil
}

// GetByIDs retrieves the films matching ids
func (r *FilmRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*models.Film, error) {
	query := `SELECT ` + filmColumns + ` FROM films WHERE id = ANY($1)`
	films, err := r.query(ctx, "get films", query, pq.Array(ids))
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*models.Film, len(films))
	for _, f := range films {
		byID[f.ID] = f
	}
	return byID, nil
}

// List retrieves films with pagination
func (r *FilmRepository) List(ctx context.Context, limit, offset int) ([]*models.Film, error) {
	query := `SELECT ` + filmColumns + ` FROM films ORDER BY id LIMIT $1 OFFSET $2`
	return r.query(ctx, "list films", query, limit, offset)
}

// ListEnabled retrieves enabled films with pagination
func (r *FilmRepository) ListEnabled(ctx context.Context, limit, offset int) ([]*models.Film, error) {
	query := `SELECT ` + filmColumns + ` FROM films WHERE enabled = true ORDER BY id LIMIT $1 OFFSET $2`
	return r.query(ctx, "list enabled films", query, limit, offset)
}

// SearchByTitle retrieves films whose title contains title
func (r *FilmRepository) SearchByTitle(ctx context.Context, title string, limit, offset int) ([]*models.Film, error) {
	query := `SELECT ` + filmColumns + ` FROM films WHERE LOWER(title) LIKE $1 ORDER BY id LIMIT $2 OFFSET $3`
	return r.query(ctx, "search films", query, "%"+escapeLike(strings.ToLower(strings.TrimSpace(title)))+"%", limit, offset)
}

// Update updates a film
func (r *FilmRepository) Update(ctx context.Context, film *models.Film) error {
	query := `
		UPDATE films
		SET title = $2, description = $3, image_url = $4, genre = $5, classification = $6,
			duration = $7, ticket_price = $8, enabled = $9, updated_at = $10
		WHERE id = $1
	`

	film.UpdatedAt = time.Now().UTC()
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		film.ID,
		film.Title,
		film.Description,
		film.ImageURL,
		film.Genre,
		film.Classification,
		film.Duration,
		film.TicketPrice,
		film.Enabled,
		film.UpdatedAt,
	)
	op := fmt.Sprintf("update film %d", film.ID)
	if err != nil {
		return translateError(op, err)
	}
	return checkAffected(op, res)
}

// Delete deletes a film
func (r *FilmRepository) Delete(ctx context.Context, id int64) error {
	op := fmt.Sprintf("delete film %d", id)
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM films WHERE id = $1`, id)
	if err != nil {
		return translateError(op, err)
	}
	return checkAffected(op, res)
}

func (r *FilmRepository) query(ctx context.Context, op, query string, args ...interface{}) ([]*models.Film, error) {
	rows, err := GetExecutor(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(op, err)
	}
	defer rows.Close()

	var films []*models.Film
	for rows.Next() {
		film, err := scanFilm(rows)
		if err != nil {
			return nil, translateError(op, err)
		}
		films = append(films, film)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(op, err)
	}
	return films, nil
}

func scanFilm(row rowScanner) (*models.Film, error) {
	film := &models.Film{}
	err := row.Scan(
		&film.ID,
		&film.Title,
		&film.Description,
		&film.ImageURL,
		&film.Genre,
		&film.Classification,
		&film.Duration,
		&film.TicketPrice,
		&film.Enabled,
		&film.CreatedAt,
		&film.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return film, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
