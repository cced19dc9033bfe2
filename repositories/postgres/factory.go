package postgres

import (
	"context"

	"github.com/SebasDosman/vortex-bird-test/config"
	"github.com/SebasDosman/vortex-bird-test/repositories"
	"go.uber.org/zap"
)

// RepositoryFactory creates and manages all repositories
type RepositoryFactory struct {
	db     *DB
	logger *zap.Logger
}

// NewRepositoryFactory opens the pool and creates a new repository factory
func NewRepositoryFactory(cfg *config.Config, logger *zap.Logger) (*RepositoryFactory, error) {
	db, err := NewDB(cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	return &RepositoryFactory{db: db, logger: logger}, nil
}

// NewRepositories creates all repository instances
func (f *RepositoryFactory) NewRepositories() *repositories.Repositories {
	return &repositories.Repositories{
		Users:           NewUserRepository(f.db, f.logger),
		Films:           NewFilmRepository(f.db, f.logger),
		Purchases:       NewPurchaseRepository(f.db, f.logger),
		PurchaseDetails: NewPurchaseDetailRepository(f.db, f.logger),
	}
}

// GetTransactionManager returns a transaction manager
func (f *RepositoryFactory) GetTransactionManager() repositories.TransactionManager {
	return NewTransactionManager(f.db, f.logger)
}

// GetDB returns the database connection
func (f *RepositoryFactory) GetDB() *DB {
	return f.db
}

// InitSchema creates the schema on the factory's database
func (f *RepositoryFactory) InitSchema(ctx context.Context) error {
	return f.db.InitSchema(ctx)
}

// Close closes the database connection
func (f *RepositoryFactory) Close() error {
	return f.db.Close()
}
