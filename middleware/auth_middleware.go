package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/SebasDosman/vortex-bird-test/auth"
	"github.com/SebasDosman/vortex-bird-test/services"
	"github.com/SebasDosman/vortex-bird-test/utils"
	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

// SubjectVerifier validates a bearer token and returns its subject
type SubjectVerifier interface {
	VerifySubject(token string) (string, error)
}

// AuthMiddleware provides authentication middleware functionality
type AuthMiddleware struct {
	tokens     SubjectVerifier
	principals auth.PrincipalResolver
	logger     *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(tokens SubjectVerifier, principals auth.PrincipalResolver, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:     tokens,
		principals: principals,
		logger:     logger,
	}
}

// Authenticate runs on every request. Requests without a bearer token pass
// through as anonymous; a token that fails verification or names an unknown
// account ends the request with 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := GetRequestIDFromContext(ctx)

		token, ok := extractBearerToken(r)
		if !ok {
			next.ServeHTTP(w, r.WithContext(WithPrincipal(ctx, auth.Anonymous())))
			return
		}

		subject, err := m.tokens.VerifySubject(token)
		if err != nil {
			m.logger.Warn("token validation failed",
				zap.String("request_id", requestID),
				zap.Error(err))
			_ = utils.WriteUnauthorized(w, services.MsgTokenNotValid)
			return
		}

		principal, err := m.principals.Resolve(ctx, subject)
		if err != nil {
			if errors.Is(err, auth.ErrUnknownSubject) {
				m.logger.Warn("token subject not found",
					zap.String("request_id", requestID),
					zap.String("subject", subject))
				_ = utils.WriteUnauthorized(w, services.MsgTokenNotValid)
				return
			}
			m.logger.Error("failed to resolve principal",
				zap.String("request_id", requestID),
				zap.Error(err))
			_ = utils.WriteInternalServerError(w, services.MsgInternal)
			return
		}

		m.logger.Debug("authentication successful",
			zap.String("request_id", requestID),
			zap.String("subject", principal.Subject()),
			zap.String("role", principal.Role()))

		next.ServeHTTP(w, r.WithContext(WithPrincipal(ctx, principal)))
	})
}

// RequireAuth rejects anonymous requests with 401 and disabled principals with 403
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.allow(w, r) {
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole is RequireAuth plus a check that the principal holds one of roles
func (m *AuthMiddleware) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !m.allow(w, r) {
				return
			}

			principal := PrincipalFromContext(r.Context())
			if !principal.HasAnyRole(roles...) {
				m.logger.Warn("insufficient permissions",
					zap.String("request_id", GetRequestIDFromContext(r.Context())),
					zap.Strings("required_roles", roles),
					zap.String("role", principal.Role()))
				_ = utils.WriteForbidden(w, services.MsgAccessDenied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m *AuthMiddleware) allow(w http.ResponseWriter, r *http.Request) bool {
	principal := PrincipalFromContext(r.Context())
	if !principal.IsAuthenticated() {
		_ = utils.WriteUnauthorized(w, "Authentication required")
		return false
	}
	if !principal.Enabled() {
		m.logger.Warn("disabled principal rejected",
			zap.String("request_id", GetRequestIDFromContext(r.Context())),
			zap.String("subject", principal.Subject()))
		_ = utils.WriteForbidden(w, services.MsgUserNotEnabled)
		return false
	}
	return true
}

// extractBearerToken returns the token of an "Authorization: Bearer <token>"
// header. Any other scheme counts as no token.
func extractBearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(bearerPrefix):]), true
}
