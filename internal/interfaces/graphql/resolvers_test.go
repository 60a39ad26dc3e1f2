package graphql

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopcore/backend/internal/application/identity"
	domainIdentity "github.com/shopcore/backend/internal/domain/identity"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/interfaces/http/middleware"
	"github.com/shopcore/backend/internal/testutil"
	"github.com/shopcore/backend/internal/testutil/apptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	app *apptest.App
	exe *Executor
	srv http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	app := apptest.New(t)
	exe := NewExecutor(LoadSchema(), zap.NewNop())
	Register(exe, Services{
		Auth:          app.Auth,
		Users:         app.UserSvc,
		Categories:    app.Categories,
		MasterProduct: app.Masters,
		SubProduct:    app.Subs,
	}, Limits{DefaultLimit: 10, MaxLimit: 100})
	return &fixture{app: app, exe: exe, srv: NewServer(exe)}
}

// run executes query as the holder of token (anonymous when empty) and decodes data
func (f *fixture) run(t *testing.T, token, query string, vars map[string]any) (map[string]any, gqlResponse) {
	t.Helper()
	ctx := context.Background()
	if token != "" {
		info := f.app.Caller(t, token)
		ctx = identity.WithContextInfo(ctx, &info)
	}
	_, resp := post(t, f.srv, ctx, query, vars)
	return resp.data(t), resp
}

func (f *fixture) mustRun(t *testing.T, token, query string, vars map[string]any) map[string]any {
	t.Helper()
	data, resp := f.run(t, token, query, vars)
	require.Empty(t, resp.Errors, "unexpected errors: %v", resp.Errors)
	return data
}

func errorCode(t *testing.T, resp gqlResponse) any {
	t.Helper()
	require.NotEmpty(t, resp.Errors)
	return resp.Errors[0].Extensions["code"]
}

func TestResolvers_Identity(t *testing.T) {
	f := newFixture(t)

	data := f.mustRun(t, "", `mutation($in: CreateUserInput!) { signup(createUserInput: $in) { _id email role } }`,
		map[string]any{"in": map[string]any{"email": "Ada@Example.com", "password": "long-enough-pw", "firstName": "Ada"}})
	user := data["signup"].(map[string]any)
	assert.Equal(t, "ada@example.com", user["email"])
	assert.Equal(t, "CUSTOMER", user["role"])
	assert.NotEmpty(t, user["_id"])

	_, resp := f.run(t, "", `mutation { signup(createUserInput: {email: "ada@example.com", password: "long-enough-pw"}) { email } }`, nil)
	assert.Equal(t, shared.CodeAlreadyExists, errorCode(t, resp))

	_, resp = f.run(t, "", `mutation { login(userLoginInput: {email: "ada@example.com", password: "nope"}) { access_token } }`, nil)
	assert.Equal(t, shared.CodeUnauthenticated, errorCode(t, resp))

	data = f.mustRun(t, "", `mutation { login(userLoginInput: {email: "ada@example.com", password: "long-enough-pw"}) { access_token } }`, nil)
	token := data["login"].(map[string]any)["access_token"].(string)
	require.NotEmpty(t, token)

	data = f.mustRun(t, token, `{ userByEmail(email: "ada@example.com") { firstName } }`, nil)
	assert.Equal(t, "Ada", data["userByEmail"].(map[string]any)["firstName"])

	_, resp = f.run(t, token, `{ getAllUsers { totalCount } }`, nil)
	assert.Equal(t, shared.CodeForbidden, errorCode(t, resp))

	admin := f.app.SignIn(t, "root@example.com", domainIdentity.RoleSuperAdmin)
	data = f.mustRun(t, admin, `{ getAllUsers(paginationInput: {page: 1, limit: 1}, searchFields: ["email"]) { totalCount items { email } } }`, nil)
	users := data["getAllUsers"].(map[string]any)
	assert.EqualValues(t, 2, users["totalCount"])
	assert.Len(t, users["items"], 1)

	_, resp = f.run(t, admin, `{ getAllUsers(paginationInput: {page: 0}) { totalCount } }`, nil)
	assert.Equal(t, shared.CodeInvalidInput, errorCode(t, resp))
	assert.Equal(t, "page", resp.Errors[0].Extensions["field"])

	data = f.mustRun(t, admin, `mutation($id: ID!) { updateUser(updateUserInput: {_id: $id, role: "MANAGER"}) { role } }`,
		map[string]any{"id": user["_id"]})
	assert.Equal(t, "MANAGER", data["updateUser"].(map[string]any)["role"])

	data = f.mustRun(t, token, `mutation { userLogout }`, nil)
	assert.Equal(t, "User logged out successfully", data["userLogout"])
	_, err := f.app.Resolver.GetContextInfo(context.Background(), "Bearer "+token)
	assert.Error(t, err)
}

func TestResolvers_Catalog(t *testing.T) {
	f := newFixture(t)
	admin := f.app.SignIn(t, "root@example.com", domainIdentity.RoleAdmin)
	customer := f.app.SignIn(t, "ada@example.com", domainIdentity.RoleCustomer)

	_, resp := f.run(t, "", `mutation { createCategory(createCategoryInput: {name: "Phones"}) { _id } }`, nil)
	assert.Equal(t, shared.CodeUnauthenticated, errorCode(t, resp))
	_, resp = f.run(t, customer, `mutation { createCategory(createCategoryInput: {name: "Phones"}) { _id } }`, nil)
	assert.Equal(t, shared.CodeForbidden, errorCode(t, resp))

	data := f.mustRun(t, admin, `mutation { createCategory(createCategoryInput: {name: "Phones", attributes: [{attributeName: "color", value: "black"}]}) { _id name attributes { attributeName value } } }`, nil)
	category := data["createCategory"].(map[string]any)
	categoryID := category["_id"].(string)
	assert.Equal(t, []any{map[string]any{"attributeName": "color", "value": "black"}}, category["attributes"])

	data = f.mustRun(t, admin, `mutation($in: CreateMasterProductInput!) { createMasterProduct(createMasterProductInput: $in) { _id status category { name } } }`,
		map[string]any{"in": map[string]any{"masterProductName": "Pixel", "sku": "PX-1", "categoryId": categoryID}})
	master := data["createMasterProduct"].(map[string]any)
	masterID := master["_id"].(string)
	assert.Equal(t, "Phones", master["category"].(map[string]any)["name"])

	_, resp = f.run(t, admin, `mutation($in: CreateMasterProductInput!) { createMasterProduct(createMasterProductInput: $in) { _id } }`,
		map[string]any{"in": map[string]any{"masterProductName": "Pixel", "sku": "PX-2", "categoryId": categoryID}})
	assert.Equal(t, shared.CodeAlreadyExists, errorCode(t, resp))

	createSub := `mutation($in: CreateSubProductInput!) { createSubProduct(createSubProductInput: $in) { _id subProductName price status } }`
	data = f.mustRun(t, admin, createSub, map[string]any{"in": map[string]any{"masterProductId": masterID, "price": "12.5"}})
	sub := data["createSubProduct"].(map[string]any)
	assert.Equal(t, "Pixel", sub["subProductName"])
	assert.Equal(t, "12.5", sub["price"])
	f.mustRun(t, admin, createSub, map[string]any{"in": map[string]any{"masterProductId": masterID, "subProductName": "Draft", "price": 40, "status": "DRAFT"}})

	listSubs := `query($ids: [ID!]) { getAllSubProducts(masterProductIds: $ids) { totalCount items { subProductName } } }`
	data = f.mustRun(t, "", listSubs, map[string]any{"ids": []any{masterID}})
	assert.EqualValues(t, 1, data["getAllSubProducts"].(map[string]any)["totalCount"])
	data = f.mustRun(t, admin, listSubs, map[string]any{"ids": []any{masterID}})
	assert.EqualValues(t, 2, data["getAllSubProducts"].(map[string]any)["totalCount"])

	_, resp = f.run(t, customer, `mutation($id: ID!) { deleteSubProductById(_id: $id) { _id } }`, map[string]any{"id": sub["_id"]})
	assert.Equal(t, shared.CodeForbidden, errorCode(t, resp))

	data = f.mustRun(t, "", `{ getAllMasterProduct { totalCount minPrice maxPrice items { sku } } }`, nil)
	masters := data["getAllMasterProduct"].(map[string]any)
	assert.EqualValues(t, 1, masters["totalCount"])
	assert.Equal(t, "12.5", masters["minPrice"])
	assert.Equal(t, "12.5", masters["maxPrice"])

	data = f.mustRun(t, admin, `mutation($in: UpdateMasterProductInput!) { updateMasterProductById(updateMasterProductInput: $in) { description } }`,
		map[string]any{"in": map[string]any{"_id": masterID, "description": "Flagship"}})
	assert.Equal(t, "Flagship", data["updateMasterProductById"].(map[string]any)["description"])

	data = f.mustRun(t, admin, `mutation($id: ID!) { deleteCategory(_id: $id) { archivedMasterProducts deletedSubProducts } }`, map[string]any{"id": categoryID})
	result := data["deleteCategory"].(map[string]any)
	assert.EqualValues(t, 1, result["archivedMasterProducts"])
	assert.EqualValues(t, 2, result["deletedSubProducts"])

	_, resp = f.run(t, "", `query($id: ID!) { getMasterProduct(_id: $id) { sku } }`, map[string]any{"id": masterID})
	assert.Equal(t, shared.CodeNotFound, errorCode(t, resp))
}

func TestHandler(t *testing.T) {
	f := newFixture(t)
	token := f.app.SignIn(t, "ada@example.com", domainIdentity.RoleCustomer)

	r := gin.New()
	h := Handler(f.exe)
	r.POST("/graphql", middleware.OptionalAuthenticate(f.app.Resolver), h)
	r.GET("/graphql", middleware.OptionalAuthenticate(f.app.Resolver), h)

	w := testutil.Do(t, r, testutil.Request{
		Method: http.MethodPost, Path: "/graphql", Token: token,
		Body: map[string]any{"query": `{ userByEmail(email: "ada@example.com") { email } }`},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"userByEmail":{"email":"ada@example.com"}}}`, w.Body.String())

	w = testutil.Do(t, r, testutil.Request{Path: `/graphql?query=%7B__typename%7D`})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"__typename":"Query"}}`, w.Body.String())

	w = testutil.Do(t, r, testutil.Request{Path: `/graphql?query=mutation%7BuserLogout%7D`, Token: token})
	assert.Equal(t, http.StatusNotAcceptable, w.Code)

	w = testutil.Do(t, r, testutil.Request{Method: http.MethodPost, Path: "/graphql", Body: map[string]any{"query": "{ nope }"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
