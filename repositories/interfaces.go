package repositories

import (
	"context"

	"github.com/SebasDosman/vortex-bird-test/models"
)

// TransactionManager manages database transactions
type TransactionManager interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) (Transaction, error)
}

// Transaction represents a database transaction
type Transaction interface {
	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Context returns the transaction context
	Context() context.Context
}

// UserRepository handles account data operations. Emails are stored
// normalized; lookups normalize their argument.
type UserRepository interface {
	// Create inserts a user and fills in its ID and timestamps.
	// Returns ErrDuplicatePhone or ErrDuplicateEmail on a uniqueness violation.
	Create(ctx context.Context, user *models.User) error

	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)

	// List retrieves users ordered by id
	List(ctx context.Context, limit, offset int) ([]*models.User, error)

	// ListEnabled retrieves enabled users ordered by id
	ListEnabled(ctx context.Context, limit, offset int) ([]*models.User, error)

	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

// FilmRepository handles film data operations
type FilmRepository interface {
	Create(ctx context.Context, film *models.Film) error
	GetByID(ctx context.Context, id int64) (*models.Film, error)

	// GetByIDs returns the films found for ids, keyed by id
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*models.Film, error)

	List(ctx context.Context, limit, offset int) ([]*models.Film, error)
	ListEnabled(ctx context.Context, limit, offset int) ([]*models.Film, error)

	// SearchByTitle matches titles containing title, case-insensitively
	SearchByTitle(ctx context.Context, title string, limit, offset int) ([]*models.Film, error)

	Update(ctx context.Context, film *models.Film) error
	Delete(ctx context.Context, id int64) error
}

// PurchaseRepository handles purchase data operations. Purchases are
// returned with their details loaded.
type PurchaseRepository interface {
	// Create inserts the purchase and all of its details
	Create(ctx context.Context, purchase *models.Purchase) error

	GetByID(ctx context.Context, id int64) (*models.Purchase, error)
	List(ctx context.Context, limit, offset int) ([]*models.Purchase, error)
	ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]*models.Purchase, error)
	Delete(ctx context.Context, id int64) error
}

// PurchaseDetailRepository handles purchase detail data operations
type PurchaseDetailRepository interface {
	GetByID(ctx context.Context, id int64) (*models.PurchaseDetail, error)
	List(ctx context.Context, limit, offset int) ([]*models.PurchaseDetail, error)
	Delete(ctx context.Context, id int64) error
}

// Repositories aggregates all repository interfaces
type Repositories struct {
	Users           UserRepository
	Films           FilmRepository
	Purchases       PurchaseRepository
	PurchaseDetails PurchaseDetailRepository
}
