package services

import (
	"context"

	"github.com/SebasDosman/vortex-bird-test/auth"
	"github.com/SebasDosman/vortex-bird-test/models"
	"github.com/SebasDosman/vortex-bird-test/repositories"
	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock implementation of TransactionManager
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Begin(ctx context.Context) (repositories.Transaction, error) {
	args := m.Called(ctx)
	if tx := args.Get(0); tx != nil {
		return tx.(repositories.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockTransaction is a mock implementation of Transaction
type MockTransaction struct {
	mock.Mock
	committed  bool
	rolledback bool
}

func (m *MockTransaction) Commit() error {
	args := m.Called()
	m.committed = true
	return args.Error(0)
}

func (m *MockTransaction) Rollback() error {
	args := m.Called()
	m.rolledback = true
	return args.Error(0)
}

func (m *MockTransaction) Context() context.Context {
	args := m.Called()
	return args.Get(0).(context.Context)
}

// newPassthroughTx returns a manager whose transactions always commit or roll back cleanly
func newPassthroughTx() (*MockTransactionManager, *MockTransaction) {
	mgr := new(MockTransactionManager)
	tx := new(MockTransaction)
	mgr.On("Begin", mock.Anything).Return(tx, nil)
	tx.On("Commit").Return(nil)
	tx.On("Rollback").Return(nil)
	return mgr, tx
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) ListEnabled(ctx context.Context, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockFilmRepository is a mock implementation of FilmRepository
type MockFilmRepository struct {
	mock.Mock
}

func (m *MockFilmRepository) Create(ctx context.Context, film *models.Film) error {
	return m.Called(ctx, film).Error(0)
}

func (m *MockFilmRepository) GetByID(ctx context.Context, id int64) (*models.Film, error) {
	args := m.Called(ctx, id)
	if f := args.Get(0); f != nil {
		return f.(*models.Film), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFilmRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*models.Film, error) {
	args := m.Called(ctx, ids)
	if f := args.Get(0); f != nil {
		return f.(map[int64]*models.Film), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFilmRepository) List(ctx context.Context, limit, offset int) ([]*models.Film, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Film), args.Error(1)
}

func (m *MockFilmRepository) ListEnabled(ctx context.Context, limit, offset int) ([]*models.Film, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Film), args.Error(1)
}

func (m *MockFilmRepository) SearchByTitle(ctx context.Context, title string, limit, offset int) ([]*models.Film, error) {
	args := m.Called(ctx, title, limit, offset)
	return args.Get(0).([]*models.Film), args.Error(1)
}

func (m *MockFilmRepository) Update(ctx context.Context, film *models.Film) error {
	return m.Called(ctx, film).Error(0)
}

func (m *MockFilmRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockPurchaseRepository is a mock implementation of PurchaseRepository
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) Create(ctx context.Context, purchase *models.Purchase) error {
	return m.Called(ctx, purchase).Error(0)
}

func (m *MockPurchaseRepository) GetByID(ctx context.Context, id int64) (*models.Purchase, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*models.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPurchaseRepository) List(ctx context.Context, limit, offset int) ([]*models.Purchase, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]*models.Purchase, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]*models.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockPurchaseDetailRepository is a mock implementation of PurchaseDetailRepository
type MockPurchaseDetailRepository struct {
	mock.Mock
}

func (m *MockPurchaseDetailRepository) GetByID(ctx context.Context, id int64) (*models.PurchaseDetail, error) {
	args := m.Called(ctx, id)
	if d := args.Get(0); d != nil {
		return d.(*models.PurchaseDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPurchaseDetailRepository) List(ctx context.Context, limit, offset int) ([]*models.PurchaseDetail, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.PurchaseDetail), args.Error(1)
}

func (m *MockPurchaseDetailRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockPasswordHasher is a mock implementation of auth.PasswordHasher
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
}

// MockInvalidator records principal cache invalidations
type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) Invalidate(subject string) {
	m.Called(subject)
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)
