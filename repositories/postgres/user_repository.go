package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/SebasDosman/vortex-bird-test/models"
	"github.com/SebasDosman/vortex-bird-test/repositories"
	"go.uber.org/zap"
)

const userColumns = `id, name, last_name, phone, email, password, role, enabled, created_at, updated_at`

// UserRepository implements the repositories.UserRepository interface
type UserRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *DB, logger *zap.Logger) repositories.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, last_name, phone, email, password, role, enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	user.Email = models.NormalizeEmail(user.Email)
	executor := GetExecutor(ctx, r.db)
	err := executor.QueryRowContext(ctx, query,
		user.Name,
		user.LastName,
		user.Phone,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Enabled,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		return translateError("create user", err)
	}

	r.logger.Debug("user created", zap.Int64("id", user.ID))
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(GetExecutor(ctx, r.db).QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(fmt.Sprintf("get user %d", id), err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(GetExecutor(ctx, r.db).QueryRowContext(ctx, query, models.NormalizeEmail(email)))
	if err != nil {
		return nil, translateError("get user by email", err)
	}
	return user, nil
}

// ExistsByEmail reports whether the email is registered
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", models.NormalizeEmail(email))
}

// ExistsByPhone reports whether the phone is registered
func (r *UserRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, "phone", models.NormalizePhone(phone))
}

// column is always one of the constants above.
func (r *UserRepository) exists(ctx context.Context, column string, value interface{}) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE ` + column + ` = $1)`

	var exists bool
	if err := GetExecutor(ctx, r.db).QueryRowContext(ctx, query, value).Scan(&exists); err != nil {
		return false, translateError("check user "+column, err)
	}
	return exists, nil
}

// List retrieves users with pagination
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT $1 OFFSET $2`
	return r.query(ctx, "list users", query, limit, offset)
}

// ListEnabled retrieves enabled users with pagination
func (r *UserRepository) ListEnabled(ctx context.Context, limit, offset int) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE enabled = true ORDER BY id LIMIT $1 OFFSET $2`
	return r.query(ctx, "list enabled users", query, limit, offset)
}

// Update updates a user
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $2, last_name = $3, phone = $4, email = $5, password = $6, role = $7, enabled = $8, updated_at = $9
		WHERE id = $1
	`

	user.Email = models.NormalizeEmail(user.Email)
	user.UpdatedAt = time.Now().UTC()
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.LastName,
		user.Phone,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Enabled,
		user.UpdatedAt,
	)
	if err != nil {
		return translateError(fmt.Sprintf("update user %d", user.ID), err)
	}
	if err := checkAffected(fmt.Sprintf("update user %d", user.ID), res); err != nil {
		return err
	}

	r.logger.Debug("user updated", zap.Int64("id", user.ID))
	return nil
}

// Delete deletes a user
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return translateError(fmt.Sprintf("delete user %d", id), err)
	}
	if err := checkAffected(fmt.Sprintf("delete user %d", id), res); err != nil {
		return err
	}

	r.logger.Debug("user deleted", zap.Int64("id", id))
	return nil
}

func (r *UserRepository) query(ctx context.Context, op, query string, args ...interface{}) ([]*models.User, error) {
	rows, err := GetExecutor(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(op, err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, translateError(op, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(op, err)
	}
	return users, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.LastName,
		&user.Phone,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Enabled,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

