package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopcore/backend/internal/application/identity"
	domainIdentity "github.com/shopcore/backend/internal/domain/identity"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/infrastructure/logger"
	"github.com/shopcore/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Auth context keys
const (
	ContextInfoKey = "caller_context"
	AuthHeaderKey  = "Authorization"
)

// CallerResolver resolves an Authorization header to the caller
type CallerResolver interface {
	GetContextInfo(ctx context.Context, authorization string) (*identity.ContextInfo, error)
}

// Authenticate rejects requests without a valid bearer token with 401.
// The resolved caller is stored on the gin context and on the request context.
func Authenticate(resolver CallerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := resolver.GetContextInfo(c.Request.Context(), c.GetHeader(AuthHeaderKey))
		if err != nil {
			abortResolveFailure(c, err)
			return
		}
		setCaller(c, info)
		c.Next()
	}
}

// OptionalAuthenticate lets requests without an Authorization header through anonymously.
// A header that is present but does not resolve is still rejected.
func OptionalAuthenticate(resolver CallerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AuthHeaderKey)
		if header == "" {
			c.Next()
			return
		}
		info, err := resolver.GetContextInfo(c.Request.Context(), header)
		if err != nil {
			abortResolveFailure(c, err)
			return
		}
		setCaller(c, info)
		c.Next()
	}
}

func setCaller(c *gin.Context, info *identity.ContextInfo) {
	c.Set(ContextInfoKey, info)

	ctx := identity.WithContextInfo(c.Request.Context(), info)
	ctx, _ = logger.WithUserID(ctx, logger.FromContext(ctx), info.UserID.String())
	c.Request = c.Request.WithContext(ctx)
}

// abortResolveFailure answers 401 for credential errors and 500 when the caller could not be looked up
func abortResolveFailure(c *gin.Context, err error) {
	if _, ok := shared.AsDomainError(err); ok {
		abortUnauthenticated(c)
		return
	}
	logger.FromContext(c.Request.Context()).Error("Caller resolution failed", zap.Error(err))
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeInternal,
		"An unexpected error occurred",
		GetRequestID(c),
	))
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeUnauthorized,
		"Authentication required",
		GetRequestID(c),
	))
}

// GetCaller returns the authenticated caller, if any
func GetCaller(c *gin.Context) (*identity.ContextInfo, bool) {
	v, ok := c.Get(ContextInfoKey)
	if !ok {
		return nil, false
	}
	info, ok := v.(*identity.ContextInfo)
	return info, ok && info != nil
}

// GetCallerRole returns the caller's role, or the empty role for anonymous requests
func GetCallerRole(c *gin.Context) domainIdentity.Role {
	if info, ok := GetCaller(c); ok {
		return info.Role
	}
	return ""
}
