package app

import (
	"context"
	"fmt"

	"github.com/SebasDosman/vortex-bird-test/auth"
	"github.com/SebasDosman/vortex-bird-test/config"
	"github.com/SebasDosman/vortex-bird-test/handlers"
	"github.com/SebasDosman/vortex-bird-test/middleware"
	"github.com/SebasDosman/vortex-bird-test/repositories"
	"github.com/SebasDosman/vortex-bird-test/repositories/postgres"
	"github.com/SebasDosman/vortex-bird-test/services"
	"go.uber.org/zap"
)

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	DB     *postgres.DB
	Logger *zap.Logger

	// Repository Factory
	RepoFactory *postgres.RepositoryFactory

	// Repositories
	Repositories *repositories.Repositories
	TxManager    repositories.TransactionManager

	// Auth
	Tokens         *auth.TokenService
	Principals     auth.PrincipalResolver
	AuthMiddleware *middleware.AuthMiddleware

	// Services
	AuthService           *services.AuthenticationService
	UserService           *services.UserService
	FilmService           *services.FilmService
	PurchaseService       *services.PurchaseService
	PurchaseDetailService *services.PurchaseDetailService

	// Handlers
	AuthHandler     *handlers.AuthHandler
	UserHandler     *handlers.UserHandler
	FilmHandler     *handlers.FilmHandler
	PurchaseHandler *handlers.PurchaseHandler
	HealthHandler   *handlers.HealthHandler
}

// NewDependencies opens the database and wires up all application dependencies.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	factory, err := postgres.NewRepositoryFactory(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	deps, err := Assemble(cfg, logger, factory.NewRepositories(), factory.GetTransactionManager(), factory.GetDB())
	if err != nil {
		_ = factory.Close()
		return nil, err
	}
	deps.RepoFactory = factory
	deps.DB = factory.GetDB()

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// Assemble wires auth, services and handlers on top of the given store.
// health may be nil when no database backs the store.
func Assemble(
	cfg *config.Config,
	logger *zap.Logger,
	repos *repositories.Repositories,
	txMgr repositories.TransactionManager,
	health handlers.HealthChecker,
) (*Dependencies, error) {
	d := &Dependencies{
		Config:       cfg,
		Logger:       logger,
		Repositories: repos,
		TxManager:    txMgr,
	}

	if err := d.initAuth(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize auth: %w", err)
	}
	d.initServices(cfg)
	d.initHandlers(health)
	return d, nil
}

// initAuth builds the token service, the principal resolver and the filter
func (d *Dependencies) initAuth(cfg *config.Config) error {
	tokenCfg := auth.TokenConfig{
		Issuer: cfg.Auth.TokenIssuer,
		TTL:    cfg.Auth.TokenTTL,
	}
	if cfg.Auth.SigningKeyFile != "" {
		key, err := auth.LoadPrivateKey(cfg.Auth.SigningKeyFile)
		if err != nil {
			return err
		}
		tokenCfg.PrivateKey = key
		d.Logger.Info("token signing key loaded from file",
			zap.String("path", cfg.Auth.SigningKeyFile))
	} else {
		d.Logger.Warn("using ephemeral token signing key; tokens do not survive a restart")
	}

	tokens, err := auth.NewTokenService(tokenCfg)
	if err != nil {
		return err
	}
	d.Tokens = tokens

	var resolver auth.PrincipalResolver = auth.NewLoaderResolver(services.NewUserDetailsLoader(d.Repositories.Users))
	if cfg.Auth.PrincipalCacheTTL > 0 {
		resolver = auth.NewCachingResolver(resolver, cfg.Auth.PrincipalCacheSize, cfg.Auth.PrincipalCacheTTL)
		d.Logger.Info("principal cache enabled",
			zap.Int("size", cfg.Auth.PrincipalCacheSize),
			zap.Duration("ttl", cfg.Auth.PrincipalCacheTTL))
	}
	d.Principals = resolver
	d.AuthMiddleware = middleware.NewAuthMiddleware(tokens, resolver, d.Logger)
	return nil
}

func (d *Dependencies) initServices(cfg *config.Config) {
	verifier := auth.NewBcryptVerifier(cfg.Auth.BcryptCost)
	authenticator := auth.NewCredentialAuthenticator(services.NewUserDetailsLoader(d.Repositories.Users), verifier)

	var invalidator services.PrincipalInvalidator
	if cache, ok := d.Principals.(*auth.CachingResolver); ok {
		invalidator = cache
	}

	d.AuthService = services.NewAuthenticationService(d.Repositories.Users, d.TxManager, authenticator, d.Tokens, verifier, d.Logger)
	d.UserService = services.NewUserService(d.Repositories.Users, d.TxManager, verifier, invalidator, d.Logger)
	d.FilmService = services.NewFilmService(d.Repositories.Films, d.TxManager, d.Logger)
	d.PurchaseService = services.NewPurchaseService(d.Repositories.Purchases, d.Repositories.Users, d.Repositories.Films, d.TxManager, d.Logger)
	d.PurchaseDetailService = services.NewPurchaseDetailService(d.Repositories.PurchaseDetails, d.Logger)
}

func (d *Dependencies) initHandlers(health handlers.HealthChecker) {
	d.AuthHandler = handlers.NewAuthHandler(d.AuthService, d.Logger)
	d.UserHandler = handlers.NewUserHandler(d.UserService, d.Logger)
	d.FilmHandler = handlers.NewFilmHandler(d.FilmService, d.Logger)
	d.PurchaseHandler = handlers.NewPurchaseHandler(d.PurchaseService, d.PurchaseDetailService, d.Logger)
	d.HealthHandler = handlers.NewHealthHandler(health, d.Logger)
}

// Close gracefully shuts down all dependencies
func (d *Dependencies) Close(ctx context.Context) error {
	d.Logger.Info("shutting down dependencies")

	var errs []error

	if d.RepoFactory != nil {
		if err := d.RepoFactory.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		} else {
			d.Logger.Info("database connection closed")
		}
	}

	_ = d.Logger.Sync()

	if len(errs) > 0 {
		return fmt.Errorf("errors during shutdown: %v", errs)
	}

	return nil
}
