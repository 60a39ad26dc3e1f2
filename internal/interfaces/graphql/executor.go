// Package graphql serves the catalog and identity operations over a single GraphQL endpoint.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/99designs/gqlgen/graphql"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/infrastructure/logger"
	"github.com/shopcore/backend/internal/infrastructure/telemetry"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.uber.org/zap"
)

// ResolverFunc resolves one root field from its coerced arguments
type ResolverFunc func(ctx context.Context, args map[string]any) (any, error)

// FieldLimiter counts calls per key in fixed windows
type FieldLimiter interface {
	Take(ctx context.Context, key string) (allowed bool, remaining int, err error)
}

var errFieldRateLimited = shared.NewDomainError(shared.CodeRateLimited, "Too many requests. Please try again later.")

// Executor runs root fields through registered resolvers. It implements
// graphql.ExecutableSchema, so parsing, validation and variable coercion
// happen in the gqlgen server before Exec is reached.
type Executor struct {
	schema    *ast.Schema
	queries   map[string]ResolverFunc
	mutations map[string]ResolverFunc
	limiters  map[string]FieldLimiter
	logger    *zap.Logger
}

var _ graphql.ExecutableSchema = (*Executor)(nil)

// NewExecutor creates an executor for schema with no resolvers registered
func NewExecutor(schema *ast.Schema, logger *zap.Logger) *Executor {
	return &Executor{
		schema:    schema,
		queries:   make(map[string]ResolverFunc),
		mutations: make(map[string]ResolverFunc),
		limiters:  make(map[string]FieldLimiter),
		logger:    logger,
	}
}

// Query registers the resolver of a Query field
func (e *Executor) Query(name string, fn ResolverFunc) {
	e.queries[name] = fn
}

// Mutation registers the resolver of a Mutation field
func (e *Executor) Mutation(name string, fn ResolverFunc) {
	e.mutations[name] = fn
}

// LimitFields counts every selection of the named root fields against limiter,
// keyed by client IP. Aliases of the same field share one budget.
func (e *Executor) LimitFields(limiter FieldLimiter, names ...string) {
	for _, name := range names {
		e.limiters[name] = limiter
	}
}

func (e *Executor) Schema() *ast.Schema {
	return e.schema
}

func (e *Executor) Complexity(context.Context, string, string, int, map[string]any) (int, bool) {
	return 0, false
}

// Exec runs the validated operation. Root fields run in document order; a
// failing field yields null data for its key and an entry in errors.
func (e *Executor) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	done := false

	return func(ctx context.Context) *graphql.Response {
		if done {
			return nil
		}
		done = true

		var resolvers map[string]ResolverFunc
		var rootType string
		switch opCtx.Operation.Operation {
		case ast.Query:
			resolvers, rootType = e.queries, "Query"
		case ast.Mutation:
			resolvers, rootType = e.mutations, "Mutation"
		default:
			return graphql.ErrorResponse(ctx, "%s operations are not supported", opCtx.Operation.Operation)
		}

		data := newObject()
		for _, cf := range collectFields(opCtx.Operation.SelectionSet, opCtx.Variables) {
			if cf.field.Name == "__typename" {
				data.set(cf.key, rootType)
				continue
			}

			if err := e.admit(ctx, cf.field.Name); err != nil {
				graphql.AddError(ctx, fieldError(cf, err))
				data.set(cf.key, nil)
				continue
			}
			value, err := e.resolveField(ctx, resolvers, cf, opCtx.Variables)
			if err != nil {
				graphql.AddError(ctx, fieldError(cf, err))
				data.set(cf.key, nil)
				continue
			}
			data.set(cf.key, value)
		}

		raw, err := json.Marshal(data)
		if err != nil {
			return graphql.ErrorResponse(ctx, "encode response: %v", err)
		}
		return &graphql.Response{Data: raw}
	}
}

// admit takes one unit of the field's budget. A limiter failure lets the field run.
func (e *Executor) admit(ctx context.Context, field string) error {
	limiter, ok := e.limiters[field]
	if !ok {
		return nil
	}
	allowed, _, err := limiter.Take(ctx, ClientIPFrom(ctx)+":graphql:"+field)
	if err != nil {
		logger.For(ctx, e.logger).Warn("Rate limiter unavailable", zap.String("field", field), zap.Error(err))
		return nil
	}
	if !allowed {
		return errFieldRateLimited
	}
	return nil
}

func (e *Executor) resolveField(ctx context.Context, resolvers map[string]ResolverFunc, cf collectedField, vars map[string]any) (value any, err error) {
	fn, ok := resolvers[cf.field.Name]
	if !ok {
		return nil, fmt.Errorf("no resolver for field %s", cf.field.Name)
	}

	ctx, span := telemetry.StartSpan(ctx, "graphql", cf.field.Name)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	result, err := fn(ctx, cf.field.ArgumentMap(vars))
	if err != nil {
		return nil, err
	}
	generic, err := toGeneric(result)
	if err != nil {
		return nil, fmt.Errorf("encode %s result: %w", cf.field.Name, err)
	}
	return project(generic, cf.selections, vars), nil
}

// fieldError wraps a resolver failure with the response path of its root field
func fieldError(cf collectedField, err error) *gqlerror.Error {
	gqlErr := &gqlerror.Error{
		Err:     err,
		Message: err.Error(),
		Path:    ast.Path{ast.PathName(cf.key)},
	}
	if pos := cf.field.Position; pos != nil {
		gqlErr.Locations = []gqlerror.Location{{Line: pos.Line, Column: pos.Column}}
	}
	return gqlErr
}

// toGeneric turns a resolver result into JSON-shaped maps, slices and scalars
func toGeneric(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
