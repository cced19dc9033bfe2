package services

import (
	"context"
	"errors"

	"github.com/SebasDosman/vortex-bird-test/auth"
	"github.com/SebasDosman/vortex-bird-test/models"
	"github.com/SebasDosman/vortex-bird-test/repositories"
	"go.uber.org/zap"
)

// PrincipalInvalidator drops cached principals after an account changes
type PrincipalInvalidator interface {
	Invalidate(subject string)
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(string) {}

// CreateUserRequest is the admin account creation body
type CreateUserRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=100,person_name"`
	LastName string          `json:"lastName" validate:"required,min=1,max=100,person_name"`
	Phone    string          `json:"phone" validate:"required,len=10,numeric,co_phone"`
	Email    string          `json:"email" validate:"required,email,max=150"`
	Password string          `json:"password" validate:"required,min=8,max=50,password"`
	Role     models.UserRole `json:"role" validate:"omitempty,oneof=USER ADMIN"`
}

// UpdateUserRequest replaces the profile and password of an account
type UpdateUserRequest struct {
	ID       int64  `json:"id" validate:"required,gt=0"`
	Name     string `json:"name" validate:"required,min=1,max=100,person_name"`
	LastName string `json:"lastName" validate:"required,min=1,max=100,person_name"`
	Phone    string `json:"phone" validate:"required,len=10,numeric,co_phone"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=8,max=50,password"`
}

// UserService manages accounts
type UserService struct {
	users       repositories.UserRepository
	txMgr       repositories.TransactionManager
	hasher      auth.PasswordHasher
	invalidator PrincipalInvalidator
	logger      *zap.Logger
}

// NewUserService creates a new user service. invalidator may be nil.
func NewUserService(
	users repositories.UserRepository,
	txMgr repositories.TransactionManager,
	hasher auth.PasswordHasher,
	invalidator PrincipalInvalidator,
	logger *zap.Logger,
) *UserService {
	if invalidator == nil {
		invalidator = noopInvalidator{}
	}
	return &UserService{
		users:       users,
		txMgr:       txMgr,
		hasher:      hasher,
		invalidator: invalidator,
		logger:      logger,
	}
}

// List returns a page of all users
func (s *UserService) List(ctx context.Context, page models.PageRequest) (models.Page[models.UserProfile], error) {
	return s.page(ctx, page, s.users.List)
}

// ListEnabled returns a page of enabled users
func (s *UserService) ListEnabled(ctx context.Context, page models.PageRequest) (models.Page[models.UserProfile], error) {
	return s.page(ctx, page, s.users.ListEnabled)
}

func (s *UserService) page(ctx context.Context, page models.PageRequest, list func(context.Context, int, int) ([]*models.User, error)) (models.Page[models.UserProfile], error) {
	users, err := list(ctx, page.Limit(), page.Offset())
	if err != nil {
		return models.Page[models.UserProfile]{}, WrapInternal("failed to list users", err)
	}
	return models.MapPage(models.NewPage(users, page), (*models.User).Profile), nil
}

// GetByID returns the profile of a user
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.UserProfile, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, NotFoundf(msgUserIDNotFound, id)
		}
		return nil, WrapInternal("failed to get user", err)
	}
	profile := user.Profile()
	return &profile, nil
}

// GetByEmail returns the profile of the user with email
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	email = models.NormalizeEmail(email)
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, NotFoundf(msgUserEmailNotFound, email)
		}
		return nil, WrapInternal("failed to get user", err)
	}
	profile := user.Profile()
	return &profile, nil
}

// Create registers an account with the same conflict rules as sign-up
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*models.UserProfile, error) {
	return WithTransactionResult(ctx, s.txMgr, func(ctx context.Context, _ repositories.Transaction) (*models.UserProfile, error) {
		phone := models.NormalizePhone(req.Phone)
		email := models.NormalizeEmail(req.Email)

		if err := checkAccountConflicts(ctx, s.users, phone, email); err != nil {
			return nil, err
		}

		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, WrapInternal("failed to hash password", err)
		}

		user := models.NewUser(req.Name, req.LastName, phone, email, hash)
		if req.Role != "" {
			user.Role = req.Role
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, accountWriteError(err, phone, email)
		}

		s.logger.Info("user created", zap.Int64("user_id", user.ID), zap.String("role", string(user.Role)))
		profile := user.Profile()
		return &profile, nil
	})
}

// Update replaces profile fields and the password. Role and enabled are
// kept; a phone or email only conflicts when it changes.
func (s *UserService) Update(ctx context.Context, req UpdateUserRequest) (*models.UserProfile, error) {
	var previousEmail string
	profile, err := WithTransactionResult(ctx, s.txMgr, func(ctx context.Context, _ repositories.Transaction) (*models.UserProfile, error) {
		user, err := s.users.GetByID(ctx, req.ID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, NotFoundf(msgUserIDNotFound, req.ID)
			}
			return nil, WrapInternal("failed to get user", err)
		}
		previousEmail = user.Email

		phone := models.NormalizePhone(req.Phone)
		email := models.NormalizeEmail(req.Email)

		if phone != user.Phone {
			taken, err := s.users.ExistsByPhone(ctx, phone)
			if err != nil {
				return nil, WrapInternal("failed to check phone", err)
			}
			if taken {
				return nil, Conflictf(msgUserPhoneExists, phone)
			}
		}
		if email != user.Email {
			taken, err := s.users.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, WrapInternal("failed to check email", err)
			}
			if taken {
				return nil, Conflictf(msgUserEmailExists, email)
			}
		}

		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, WrapInternal("failed to hash password", err)
		}

		updated := models.NewUser(req.Name, req.LastName, phone, email, hash)
		updated.ID = user.ID
		updated.Role = user.Role
		updated.Enabled = user.Enabled
		updated.CreatedAt = user.CreatedAt

		if err := s.users.Update(ctx, updated); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, NotFoundf(msgUserIDNotFound, req.ID)
			}
			return nil, accountWriteError(err, phone, email)
		}

		p := updated.Profile()
		return &p, nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(previousEmail)
	s.invalidator.Invalidate(profile.Email)
	s.logger.Info("user updated", zap.Int64("user_id", profile.ID))
	return profile, nil
}

// ToggleStatus flips the enabled flag of a user
func (s *UserService) ToggleStatus(ctx context.Context, id int64) (*models.UserProfile, error) {
	profile, err := WithTransactionResult(ctx, s.txMgr, func(ctx context.Context, _ repositories.Transaction) (*models.UserProfile, error) {
		user, err := s.users.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, NotFoundf(msgUserIDNotFound, id)
			}
			return nil, WrapInternal("failed to get user", err)
		}

		user.Enabled = !user.Enabled
		if err := s.users.Update(ctx, user); err != nil {
			return nil, WrapInternal("failed to update user", err)
		}
		p := user.Profile()
		return &p, nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(profile.Email)
	s.logger.Info("user status toggled", zap.Int64("user_id", id), zap.Bool("enabled", profile.Enabled))
	return profile, nil
}

// Delete removes a user
func (s *UserService) Delete(ctx context.Context, id int64) error {
	var email string
	err := WithTransaction(ctx, s.txMgr, func(ctx context.Context, _ repositories.Transaction) error {
		user, err := s.users.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return NotFoundf(msgUserIDNotFound, id)
			}
			return WrapInternal("failed to get user", err)
		}
		email = user.Email

		if err := s.users.Delete(ctx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return NotFoundf(msgUserIDNotFound, id)
			}
			return WrapInternal("failed to delete user", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidator.Invalidate(email)
	s.logger.Info("user deleted", zap.Int64("user_id", id))
	return nil
}
