package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/interfaces/http/middleware"
	"github.com/shopcore/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

type gqlError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path"`
	Extensions map[string]any `json:"extensions"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// data decodes the data member; a null payload decodes to nil
func (r gqlResponse) data(t *testing.T) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(r.Data, &out))
	return out
}

// post sends query through srv with ctx as the request context
func post(t *testing.T, srv http.Handler, ctx context.Context, query string, vars map[string]any) (int, gqlResponse) {
	t.Helper()
	body := map[string]any{"query": query}
	if vars != nil {
		body["variables"] = vars
	}
	req := httptest.NewRequest(http.MethodPost, "/graphql", testutil.ToJSONReader(t, body)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	var resp gqlResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}

func stubServer() http.Handler {
	e := NewExecutor(LoadSchema(), zap.NewNop())
	e.Query("getMasterProduct", func(_ context.Context, args map[string]any) (any, error) {
		return map[string]any{
			"id":                args["_id"],
			"masterProductName": "Pixel",
			"sku":               "PX-1",
			"status":            "PUBLISHED",
			"category":          map[string]any{"id": "c1", "name": "Phones"},
		}, nil
	})
	e.Query("getCategory", func(context.Context, map[string]any) (any, error) {
		return nil, shared.NewDomainError(shared.CodeNotFound, "Category not found")
	})
	e.Query("getOneSubProductById", func(context.Context, map[string]any) (any, error) {
		return nil, errors.New("connection reset")
	})
	return NewServer(e)
}

func TestExecutor_ProjectsSelection(t *testing.T) {
	srv := stubServer()

	code, resp := post(t, srv, context.Background(), `{ product: getMasterProduct(_id: "m1") { sku _id category { name } } }`, nil)
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, resp.Errors)
	assert.Equal(t, `{"product":{"sku":"PX-1","_id":"m1","category":{"name":"Phones"}}}`, string(resp.Data),
		"fields keep selection order")
}

func TestExecutor_FragmentsAndDirectives(t *testing.T) {
	srv := stubServer()

	_, resp := post(t, srv, context.Background(), `query Get($withSku: Boolean!) {
			getMasterProduct(_id: "m1") {
				...names
				sku @include(if: $withSku)
				status @skip(if: true)
				__typename
			}
		}
		fragment names on MasterProduct { masterProductName }`,
		map[string]any{"withSku": false})
	require.Empty(t, resp.Errors)
	assert.JSONEq(t,
		`{"getMasterProduct":{"masterProductName":"Pixel","__typename":"MasterProduct"}}`,
		string(resp.Data))
}

func TestExecutor_Errors(t *testing.T) {
	srv := stubServer()
	ctx := context.Background()

	t.Run("domain errors carry their code", func(t *testing.T) {
		_, resp := post(t, srv, ctx, `{ getCategory(_id: "x") { name } }`, nil)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "Category not found", resp.Errors[0].Message)
		assert.Equal(t, shared.CodeNotFound, resp.Errors[0].Extensions["code"])
		assert.Equal(t, []any{"getCategory"}, resp.Errors[0].Path)
		assert.Nil(t, resp.data(t)["getCategory"])
	})

	t.Run("unexpected errors are masked", func(t *testing.T) {
		_, resp := post(t, srv, ctx, `{ getOneSubProductById(_id: "x") { id } }`, nil)
		require.Len(t, resp.Errors, 1)
		assert.NotContains(t, resp.Errors[0].Message, "connection reset")
		assert.Equal(t, shared.CodeInternal, resp.Errors[0].Extensions["code"])
	})

	t.Run("one failing field leaves the others", func(t *testing.T) {
		_, resp := post(t, srv, ctx, `{ getCategory(_id: "x") { name } getMasterProduct(_id: "m1") { sku } }`, nil)
		require.Len(t, resp.Errors, 1)
		assert.NotNil(t, resp.data(t)["getMasterProduct"])
	})

	t.Run("invalid documents fail validation", func(t *testing.T) {
		code, resp := post(t, srv, ctx, `{ getMasterProduct(_id: "m1") { passwordHash } }`, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		require.NotEmpty(t, resp.Errors)
		assert.Equal(t, "GRAPHQL_VALIDATION_FAILED", resp.Errors[0].Extensions["code"])
		assert.Nil(t, resp.data(t))
	})

	t.Run("missing variables", func(t *testing.T) {
		code, resp := post(t, srv, ctx, `query($id: ID!) { getMasterProduct(_id: $id) { sku } }`, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		require.Len(t, resp.Errors, 1)
		assert.Contains(t, resp.Errors[0].Message, "id")
	})
}

func TestExecutor_LimitFields(t *testing.T) {
	var logins int
	e := NewExecutor(LoadSchema(), zap.NewNop())
	e.Mutation("login", func(context.Context, map[string]any) (any, error) {
		logins++
		return map[string]any{"access_token": "t"}, nil
	})
	e.Query("getCategory", func(context.Context, map[string]any) (any, error) {
		return map[string]any{"id": "c1", "name": "Phones"}, nil
	})
	e.LimitFields(middleware.NewMemoryRateLimiter(2, time.Minute), "login", "signup")

	r := gin.New()
	r.POST("/graphql", Handler(e))

	const batch = `mutation {
		a: login(userLoginInput: {email: "a@example.com", password: "x"}) { access_token }
		b: login(userLoginInput: {email: "a@example.com", password: "y"}) { access_token }
		c: login(userLoginInput: {email: "a@example.com", password: "z"}) { access_token }
	}`

	limited := 0
	for i := 0; i < 5; i++ {
		code, resp := post(t, r, context.Background(), batch, nil)
		assert.Equal(t, http.StatusOK, code)
		for _, gerr := range resp.Errors {
			assert.Equal(t, shared.CodeRateLimited, gerr.Extensions["code"])
			limited++
		}
	}
	assert.Equal(t, 2, logins, "aliases each count against the budget")
	assert.Equal(t, 13, limited)

	t.Run("unlimited fields are unaffected", func(t *testing.T) {
		_, resp := post(t, r, context.Background(), `{ getCategory(_id: "c1") { name } }`, nil)
		assert.Empty(t, resp.Errors)
	})

	t.Run("other clients have their own budget", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/graphql", testutil.ToJSONReader(t, map[string]any{"query": batch}))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "198.51.100.7:4000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var resp gqlResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Errors, 1)
		assert.Equal(t, 4, logins)
	})
}

type failingLimiter struct{}

func (failingLimiter) Take(context.Context, string) (bool, int, error) {
	return false, 0, errors.New("redis down")
}

func TestExecutor_LimitFieldsFailsOpen(t *testing.T) {
	e := NewExecutor(LoadSchema(), zap.NewNop())
	e.Mutation("login", func(context.Context, map[string]any) (any, error) {
		return map[string]any{"access_token": "t"}, nil
	})
	e.LimitFields(failingLimiter{}, "login")

	_, resp := post(t, NewServer(e), context.Background(), `mutation { login(userLoginInput: {email: "a@example.com", password: "x"}) { access_token } }`, nil)
	assert.Empty(t, resp.Errors)
	assert.Equal(t, "t", resp.data(t)["login"].(map[string]any)["access_token"])
}

func TestDecodeArg(t *testing.T) {
	var in struct {
		ID    string  `json:"_id"`
		Price *string `json:"price"`
		Page  *int    `json:"page"`
	}
	err := decodeArg(map[string]any{"input": map[string]any{"_id": "a", "page": float64(2)}}, "input", &in)
	require.NoError(t, err)
	assert.Equal(t, "a", in.ID)
	require.NotNil(t, in.Page)
	assert.Equal(t, 2, *in.Page)
	assert.Nil(t, in.Price)

	_, err = idsArg(map[string]any{"categoryIds": []any{"nope"}}, "categoryIds")
	de, ok := shared.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, "categoryIds", de.Field)
}
