package routes

import (
	"net/http"
	"time"

	"github.com/SebasDosman/vortex-bird-test/app"
	"github.com/SebasDosman/vortex-bird-test/middleware"
	"github.com/SebasDosman/vortex-bird-test/models"
	"github.com/SebasDosman/vortex-bird-test/utils"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const requestTimeout = 60 * time.Second

var adminOnly = string(models.RoleAdmin)

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	// Core middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(requestTimeout))

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Server.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Every request passes the filter; anonymous requests continue unauthenticated
	r.Use(deps.AuthMiddleware.Authenticate)

	// Health check endpoints
	r.Get("/healthz", deps.HealthHandler.HandleHealth)
	r.Get("/readyz", deps.HealthHandler.HandleReadiness)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signIn", deps.AuthHandler.HandleSignIn)
		r.Post("/signUp", deps.AuthHandler.HandleSignUp)
	})

	authMw := deps.AuthMiddleware

	r.Route("/user", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireRole(adminOnly))
			r.Get("/", deps.UserHandler.HandleList)
			r.Get("/enabled", deps.UserHandler.HandleListEnabled)
			r.Post("/", deps.UserHandler.HandleCreate)
			r.Put("/admin/{id}", deps.UserHandler.HandleToggleStatus)
			r.Delete("/admin/{id}", deps.UserHandler.HandleDelete)
		})
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireAuth)
			r.Get("/{id}", deps.UserHandler.HandleGet)
			r.Get("/email/{email}", deps.UserHandler.HandleGetByEmail)
			r.Put("/", deps.UserHandler.HandleUpdate)
		})
	})

	r.Route("/film", func(r chi.Router) {
		r.Get("/enabled", deps.FilmHandler.HandleListEnabled)
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireAuth)
			r.Get("/", deps.FilmHandler.HandleList)
			r.Get("/{id}", deps.FilmHandler.HandleGet)
			r.Get("/title/{title}", deps.FilmHandler.HandleSearch)
		})
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireRole(adminOnly))
			r.Post("/", deps.FilmHandler.HandleCreate)
			r.Put("/", deps.FilmHandler.HandleUpdate)
			r.Put("/{id}", deps.FilmHandler.HandleToggleStatus)
			r.Delete("/{id}", deps.FilmHandler.HandleDelete)
		})
	})

	r.Route("/purchase", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireRole(adminOnly))
			r.Get("/", deps.PurchaseHandler.HandleList)
			r.Delete("/{id}", deps.PurchaseHandler.HandleDelete)
		})
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireAuth)
			r.Get("/user/{userId}", deps.PurchaseHandler.HandleListByUser)
			r.Get("/{id}", deps.PurchaseHandler.HandleGet)
			r.Post("/", deps.PurchaseHandler.HandleCreate)
		})
	})

	r.Route("/purchaseDetail", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireAuth)
			r.Get("/", deps.PurchaseHandler.HandleListDetails)
			r.Get("/{id}", deps.PurchaseHandler.HandleGetDetail)
		})
		r.With(authMw.RequireRole(adminOnly)).Delete("/admin/{id}", deps.PurchaseHandler.HandleDeleteDetail)
	})

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteNotFound(w, "Endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteError(w, http.StatusMethodNotAllowed, "", nil)
	})

	return r
}
