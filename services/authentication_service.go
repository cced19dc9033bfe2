package services

import (
	"context"
	"errors"

	"github.com/SebasDosman/vortex-bird-test/auth"
	"github.com/SebasDosman/vortex-bird-test/models"
	"github.com/SebasDosman/vortex-bird-test/repositories"
	"go.uber.org/zap"
)

// TokenIssuer issues bearer tokens and reports their expiry
type TokenIssuer interface {
	Issue(subject string, accountID int64) (string, error)
	ExpiryEpochMillis(token string) (int64, error)
	TokenType() string
}

// CredentialAuthenticator verifies a subject/password pair
type CredentialAuthenticator interface {
	Authenticate(ctx context.Context, subject, password string) (auth.Authenticatable, error)
}

// SignInRequest is the sign-in body
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,max=50"`
}

// SignUpRequest is the registration body
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100,person_name"`
	LastName string `json:"lastName" validate:"required,min=1,max=100,person_name"`
	Phone    string `json:"phone" validate:"required,len=10,numeric,co_phone"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=8,max=50,password"`
}

// AuthenticationResponse is returned by both sign-in and sign-up
type AuthenticationResponse struct {
	AccessToken string             `json:"accessToken"`
	TokenType   string             `json:"tokenType"`
	ExpiresIn   int64              `json:"expiresIn"`
	Principal   models.UserProfile `json:"principal"`
}

// AuthenticationService signs accounts in and registers new ones. Both
// flows run in a single transaction.
type AuthenticationService struct {
	users         repositories.UserRepository
	txMgr         repositories.TransactionManager
	authenticator CredentialAuthenticator
	tokens        TokenIssuer
	hasher        auth.PasswordHasher
	logger        *zap.Logger
}

// NewAuthenticationService creates a new authentication service
func NewAuthenticationService(
	users repositories.UserRepository,
	txMgr repositories.TransactionManager,
	authenticator CredentialAuthenticator,
	tokens TokenIssuer,
	hasher auth.PasswordHasher,
	logger *zap.Logger,
) *AuthenticationService {
	return &AuthenticationService{
		users:         users,
		txMgr:         txMgr,
		authenticator: authenticator,
		tokens:        tokens,
		hasher:        hasher,
		logger:        logger,
	}
}

// SignIn verifies the credentials and issues a token. Unknown email and
// wrong password fail with the same error.
func (s *AuthenticationService) SignIn(ctx context.Context, req SignInRequest) (*AuthenticationResponse, error) {
	return WithTransactionResult(ctx, s.txMgr, func(ctx context.Context, _ repositories.Transaction) (*AuthenticationResponse, error) {
		return s.signIn(ctx, req.Email, req.Password)
	})
}

// SignUp creates an enabled USER account and signs it in. A phone conflict
// is reported before an email conflict.
func (s *AuthenticationService) SignUp(ctx context.Context, req SignUpRequest) (*AuthenticationResponse, error) {
	return WithTransactionResult(ctx, s.txMgr, func(ctx context.Context, _ repositories.Transaction) (*AuthenticationResponse, error) {
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
		if err := s.users.Create(ctx, user); err != nil {
			return nil, accountWriteError(err, phone, email)
		}

		s.logger.Info("account registered", zap.Int64("user_id", user.ID))
		return s.signIn(ctx, email, req.Password)
	})
}

func (s *AuthenticationService) signIn(ctx context.Context, email, password string) (*AuthenticationResponse, error) {
	email = models.NormalizeEmail(email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, WrapInternal("failed to look up account", err)
	}
	if !exists {
		s.logger.Debug("sign-in rejected: unknown email", zap.String("email", email))
		return nil, ErrIncorrectCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrIncorrectCredentials
		}
		return nil, WrapInternal("failed to load account", err)
	}
	if !user.Enabled {
		s.logger.Debug("sign-in rejected: account disabled", zap.Int64("user_id", user.ID))
		return nil, ErrUserNotEnabled
	}

	details, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Debug("sign-in rejected", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, ErrIncorrectCredentials
	}

	token, err := s.tokens.Issue(details.Subject(), user.ID)
	if err != nil {
		return nil, WrapInternal("failed to issue token", err)
	}
	expiresIn, err := s.tokens.ExpiryEpochMillis(token)
	if err != nil {
		return nil, WrapInternal("failed to read token expiry", err)
	}

	return &AuthenticationResponse{
		AccessToken: token,
		TokenType:   s.tokens.TokenType(),
		ExpiresIn:   expiresIn,
		Principal:   user.Profile(),
	}, nil
}

// checkAccountConflicts reports a taken phone before a taken email
func checkAccountConflicts(ctx context.Context, users repositories.UserRepository, phone, email string) error {
	taken, err := users.ExistsByPhone(ctx, phone)
	if err != nil {
		return WrapInternal("failed to check phone", err)
	}
	if taken {
		return Conflictf(msgUserPhoneExists, phone)
	}

	taken, err = users.ExistsByEmail(ctx, email)
	if err != nil {
		return WrapInternal("failed to check email", err)
	}
	if taken {
		return Conflictf(msgUserEmailExists, email)
	}
	return nil
}

// accountWriteError translates store rejections of an account write. The
// unique constraints catch races the existence checks miss.
func accountWriteError(err error, phone, email string) error {
	switch {
	case errors.Is(err, repositories.ErrDuplicatePhone):
		return Conflictf(msgUserPhoneExists, phone)
	case errors.Is(err, repositories.ErrDuplicateEmail):
		return Conflictf(msgUserEmailExists, email)
	}
	return WrapInternal("failed to save account", err)
}

// NewUserDetailsLoader adapts the account store to the auth core
func NewUserDetailsLoader(users repositories.UserRepository) auth.DetailsLoader {
	return auth.DetailsLoaderFunc(func(ctx context.Context, subject string) (auth.Authenticatable, error) {
		user, err := users.GetByEmail(ctx, subject)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, auth.ErrUnknownSubject
			}
			return nil, err
		}
		return user, nil
	})
}
