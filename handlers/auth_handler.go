package handlers

import (
	"context"
	"net/http"

	"github.com/SebasDosman/vortex-bird-test/middleware"
	"github.com/SebasDosman/vortex-bird-test/services"
	"github.com/SebasDosman/vortex-bird-test/utils"
	"go.uber.org/zap"
)

// Authenticator is the sign-in / sign-up surface the handler needs
type Authenticator interface {
	SignIn(ctx context.Context, req services.SignInRequest) (*services.AuthenticationResponse, error)
	SignUp(ctx context.Context, req services.SignUpRequest) (*services.AuthenticationResponse, error)
}

// AuthHandler serves the public /auth endpoints
type AuthHandler struct {
	service Authenticator
	logger  *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service Authenticator, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger}
}

// HandleSignIn handles POST /auth/signIn
func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req services.SignInRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	resp, err := h.service.SignIn(r.Context(), req)
	if err != nil {
		h.logger.Debug("sign-in rejected",
			zap.String("request_id", middleware.GetRequestIDFromContext(r.Context())),
			zap.String("type", string(services.GetErrorType(err))))
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, resp)
}

// HandleSignUp handles POST /auth/signUp
func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req services.SignUpRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	resp, err := h.service.SignUp(r.Context(), req)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("account registered",
		zap.String("request_id", middleware.GetRequestIDFromContext(r.Context())),
		zap.Int64("user_id", resp.Principal.ID))
	_ = utils.WriteCreated(w, resp)
}
