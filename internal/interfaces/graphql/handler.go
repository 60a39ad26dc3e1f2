package graphql

import (
	"context"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/gin-gonic/gin"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/infrastructure/logger"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.uber.org/zap"
)

// NewServer serves e over HTTP. POST takes a JSON body; GET reads query,
// operationName and variables from the URL and only runs queries.
func NewServer(e *Executor) *handler.Server {
	srv := handler.New(e)
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})
	srv.SetQueryCache(lru.New[*ast.QueryDocument](1000))
	srv.SetErrorPresenter(e.presentError)
	return srv
}

// Handler adapts NewServer to gin and records the client IP for field rate limits
func Handler(e *Executor) gin.HandlerFunc {
	srv := NewServer(e)
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(WithClientIP(c.Request.Context(), c.ClientIP()))
		srv.ServeHTTP(c.Writer, c.Request)
	}
}

type clientIPKey struct{}

// WithClientIP stores the caller's address in ctx
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

// ClientIPFrom returns the address stored by WithClientIP, or ""
func ClientIPFrom(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

// presentError maps domain errors to their code. Resolver failures that are
// not domain errors are logged and masked; errors raised by the server itself
// (parse, validation) keep the code gqlgen gave them.
func (e *Executor) presentError(ctx context.Context, err error) *gqlerror.Error {
	gqlErr := graphql.DefaultErrorPresenter(ctx, err)

	if de, ok := shared.AsDomainError(err); ok {
		gqlErr.Message = de.Message
		gqlErr.Extensions = map[string]any{"code": de.Code}
		if de.Field != "" {
			gqlErr.Extensions["field"] = de.Field
		}
		return gqlErr
	}
	if gqlErr.Err == nil {
		return gqlErr
	}

	logger.For(ctx, e.logger).Error("GraphQL field failed", zap.String("path", gqlErr.Path.String()), zap.Error(gqlErr.Err))
	gqlErr.Message = "An unexpected error occurred"
	gqlErr.Extensions = map[string]any{"code": shared.CodeInternal}
	return gqlErr
}
