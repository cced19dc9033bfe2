package handlers

import (
	"context"

	"github.com/SebasDosman/vortex-bird-test/auth"
	"github.com/SebasDosman/vortex-bird-test/models"
	"github.com/SebasDosman/vortex-bird-test/services"
	"github.com/stretchr/testify/mock"
)

// MockAuthenticator is a mock implementation of Authenticator
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) SignIn(ctx context.Context, req services.SignInRequest) (*services.AuthenticationResponse, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*services.AuthenticationResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticator) SignUp(ctx context.Context, req services.SignUpRequest) (*services.AuthenticationResponse, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*services.AuthenticationResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context, page models.PageRequest) (models.Page[models.UserProfile], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(models.Page[models.UserProfile]), args.Error(1)
}

func (m *MockUserService) ListEnabled(ctx context.Context, page models.PageRequest) (models.Page[models.UserProfile], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(models.Page[models.UserProfile]), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id int64) (*models.UserProfile, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.UserProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*models.UserProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, req services.CreateUserRequest) (*models.UserProfile, error) {
	args := m.Called(ctx, req)
	if u := args.Get(0); u != nil {
		return u.(*models.UserProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, req services.UpdateUserRequest) (*models.UserProfile, error) {
	args := m.Called(ctx, req)
	if u := args.Get(0); u != nil {
		return u.(*models.UserProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) ToggleStatus(ctx context.Context, id int64) (*models.UserProfile, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.UserProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockFilmService is a mock implementation of FilmService
type MockFilmService struct {
	mock.Mock
}

func (m *MockFilmService) List(ctx context.Context, page models.PageRequest) (models.Page[*models.Film], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(models.Page[*models.Film]), args.Error(1)
}

func (m *MockFilmService) ListEnabled(ctx context.Context, page models.PageRequest) (models.Page[*models.Film], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(models.Page[*models.Film]), args.Error(1)
}

func (m *MockFilmService) SearchByTitle(ctx context.Context, title string, page models.PageRequest) (models.Page[*models.Film], error) {
	args := m.Called(ctx, title, page)
	return args.Get(0).(models.Page[*models.Film]), args.Error(1)
}

func (m *MockFilmService) GetByID(ctx context.Context, id int64) (*models.Film, error) {
	args := m.Called(ctx, id)
	if f := args.Get(0); f != nil {
		return f.(*models.Film), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFilmService) Create(ctx context.Context, req services.FilmRequest) (*models.Film, error) {
	args := m.Called(ctx, req)
	if f := args.Get(0); f != nil {
		return f.(*models.Film), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFilmService) Update(ctx context.Context, req services.UpdateFilmRequest) (*models.Film, error) {
	args := m.Called(ctx, req)
	if f := args.Get(0); f != nil {
		return f.(*models.Film), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFilmService) ToggleStatus(ctx context.Context, id int64) (*models.Film, error) {
	args := m.Called(ctx, id)
	if f := args.Get(0); f != nil {
		return f.(*models.Film), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFilmService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockPurchaseService is a mock implementation of PurchaseService
type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) Create(ctx context.Context, actor auth.Principal, req services.PurchaseRequest) (*models.Purchase, error) {
	args := m.Called(ctx, actor, req)
	if p := args.Get(0); p != nil {
		return p.(*models.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPurchaseService) List(ctx context.Context, page models.PageRequest) (models.Page[*models.Purchase], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(models.Page[*models.Purchase]), args.Error(1)
}

func (m *MockPurchaseService) ListByUser(ctx context.Context, actor auth.Principal, userID int64, page models.PageRequest) (models.Page[*models.Purchase], error) {
	args := m.Called(ctx, actor, userID, page)
	return args.Get(0).(models.Page[*models.Purchase]), args.Error(1)
}

func (m *MockPurchaseService) GetByID(ctx context.Context, actor auth.Principal, id int64) (*models.Purchase, error) {
	args := m.Called(ctx, actor, id)
	if p := args.Get(0); p != nil {
		return p.(*models.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPurchaseService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockPurchaseDetailService is a mock implementation of PurchaseDetailService
type MockPurchaseDetailService struct {
	mock.Mock
}

func (m *MockPurchaseDetailService) List(ctx context.Context, page models.PageRequest) (models.Page[*models.PurchaseDetail], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(models.Page[*models.PurchaseDetail]), args.Error(1)
}

func (m *MockPurchaseDetailService) GetByID(ctx context.Context, id int64) (*models.PurchaseDetail, error) {
	args := m.Called(ctx, id)
	if d := args.Get(0); d != nil {
		return d.(*models.PurchaseDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPurchaseDetailService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var (
	_ Authenticator         = (*MockAuthenticator)(nil)
	_ UserService           = (*MockUserService)(nil)
	_ FilmService           = (*MockFilmService)(nil)
	_ PurchaseService       = (*MockPurchaseService)(nil)
	_ PurchaseDetailService = (*MockPurchaseDetailService)(nil)
	_ Authenticator         = (*services.AuthenticationService)(nil)
	_ UserService           = (*services.UserService)(nil)
	_ FilmService           = (*services.FilmService)(nil)
	_ PurchaseService       = (*services.PurchaseService)(nil)
	_ PurchaseDetailService = (*services.PurchaseDetailService)(nil)
)
