package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SebasDosman/vortex-bird-test/config"
	_ "github.com/lib/pq" // PostgreSQL driver
	"go.uber.org/zap"
)

// DB wraps the sql.DB connection pool
type DB struct {
	*sql.DB
	logger *zap.Logger
}

// NewDB creates a new database connection pool
func NewDB(cfg config.DatabaseConfig, logger *zap.Logger) (*DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established",
		zap.String("connection", cfg.LogString()))

	return &DB{
		DB:     db,
		logger: logger,
	}, nil
}

// Close closes the database connection pool
func (db *DB) Close() error {
	db.logger.Info("closing database connection")
	return db.DB.Close()
}

// HealthCheck performs a health check on the database
func (db *DB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	// Check if we can query
	var result int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("database query check failed: %w", err)
	}

	return nil
}

// InitSchema creates the tables when they do not exist
func (db *DB) InitSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			phone VARCHAR(10) NOT NULL,
			email VARCHAR(150) NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'USER',
			enabled BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT users_phone_key UNIQUE (phone),
			CONSTRAINT users_email_key UNIQUE (email)
		);

		CREATE TABLE IF NOT EXISTS films (
			id BIGSERIAL PRIMARY KEY,
			title VARCHAR(150) NOT NULL,
			description TEXT NOT NULL,
			image_url VARCHAR(500) NOT NULL DEFAULT '',
			genre VARCHAR(50) NOT NULL,
			classification VARCHAR(50) NOT NULL,
			duration INTEGER NOT NULL CHECK (duration > 0),
			ticket_price NUMERIC(10, 2) NOT NULL CHECK (ticket_price >= 1),
			enabled BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS purchases (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL CONSTRAINT purchases_user_id_fkey REFERENCES users(id) ON DELETE CASCADE,
			purchase_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			total_amount NUMERIC(12, 2) NOT NULL,
			payment_status VARCHAR(20) NOT NULL,
			payment_method VARCHAR(20) NOT NULL
		);

		CREATE TABLE IF NOT EXISTS purchase_details (
			id BIGSERIAL PRIMARY KEY,
			purchase_id BIGINT NOT NULL REFERENCES purchases(id) ON DELETE CASCADE,
			film_id BIGINT NOT NULL CONSTRAINT purchase_details_film_id_fkey REFERENCES films(id),
			quantity INTEGER NOT NULL CHECK (quantity >= 1),
			unit_price NUMERIC(10, 2) NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_users_enabled ON users(enabled);
		CREATE INDEX IF NOT EXISTS idx_films_enabled ON films(enabled);
		CREATE INDEX IF NOT EXISTS idx_films_title ON films(LOWER(title));
		CREATE INDEX IF NOT EXISTS idx_purchases_user_id ON purchases(user_id);
		CREATE INDEX IF NOT EXISTS idx_purchase_details_purchase_id ON purchase_details(purchase_id);
		CREATE INDEX IF NOT EXISTS idx_purchase_details_film_id ON purchase_details(film_id);
	`

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	db.logger.Info("database schema initialized successfully")
	return nil
}
