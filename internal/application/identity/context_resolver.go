package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopcore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

const bearerScheme = "Bearer"

// ContextResolver turns an Authorization header into the caller's role context
type ContextResolver struct {
	auth   *AuthService
	logger *zap.Logger
}

// NewContextResolver creates a resolver backed by the auth service
func NewContextResolver(authService *AuthService, logger *zap.Logger) *ContextResolver {
	return &ContextResolver{auth: authService, logger: logger}
}

// GetContextInfo resolves "Bearer <token>" to the caller. It never defaults a role:
// every credential failure, including an unrecognized stored role, is Unauthenticated.
// Storage failures are returned wrapped so callers can answer with an internal error.
func (r *ContextResolver) GetContextInfo(ctx context.Context, authorization string) (*ContextInfo, error) {
	token, ok := BearerToken(authorization)
	if !ok {
		return nil, shared.ErrUnauthenticated
	}

	user, _, err := r.auth.authenticate(ctx, token)
	if err != nil {
		if _, isDomain := shared.AsDomainError(err); !isDomain {
			r.logger.Error("Failed to resolve caller", zap.Error(err))
			return nil, fmt.Errorf("resolve caller: %w", err)
		}
		return nil, shared.ErrUnauthenticated
	}
	if !user.Role.IsValid() {
		r.logger.Warn("Caller has an unrecognized role", userIDField(user.ID))
		return nil, shared.ErrUnauthenticated
	}

	return &ContextInfo{Role: user.Role, UserID: user.ID, Email: user.Email}, nil
}

// BearerToken extracts the token from an Authorization header value
func BearerToken(authorization string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorization), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

type contextInfoKey struct{}

// WithContextInfo stores the caller in ctx
func WithContextInfo(ctx context.Context, info *ContextInfo) context.Context {
	return context.WithValue(ctx, contextInfoKey{}, info)
}

// ContextInfoFrom returns the caller stored in ctx, if any
func ContextInfoFrom(ctx context.Context) (*ContextInfo, bool) {
	info, ok := ctx.Value(contextInfoKey{}).(*ContextInfo)
	return info, ok && info != nil
}
