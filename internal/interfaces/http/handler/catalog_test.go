package handler

import (
	"fmt"
	"net/http"
	"testing"

	domainIdentity "github.com/shopcore/backend/internal/domain/identity"
	"github.com/shopcore/backend/internal/interfaces/http/dto"
	"github.com/shopcore/backend/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *testServer) create(t *testing.T, token, path string, body any) map[string]any {
	t.Helper()
	w := testutil.Do(t, s.engine, testutil.Request{Method: http.MethodPost, Path: path, Token: token, Body: body})
	testutil.AssertSuccessResponse(t, w, http.StatusCreated)
	return testutil.Data(t, w)
}

func assertDecimal(t *testing.T, want string, got any) {
	t.Helper()
	d, err := decimal.NewFromString(fmt.Sprint(got))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString(want).Equal(d), "want %s, got %v", want, got)
}

func TestCatalogHandlers_WriteAccess(t *testing.T) {
	s := newTestServer(t)
	customer := s.app.SignIn(t, "ada@example.com", domainIdentity.RoleCustomer)
	body := map[string]any{"name": "Phones"}

	w := testutil.Do(t, s.engine, testutil.Request{Method: http.MethodPost, Path: "/api/v1/catalog/categories", Body: body})
	testutil.AssertErrorResponse(t, w, http.StatusUnauthorized, dto.ErrCodeUnauthorized)

	w = testutil.Do(t, s.engine, testutil.Request{Method: http.MethodPost, Path: "/api/v1/catalog/categories", Token: customer, Body: body})
	testutil.AssertErrorResponse(t, w, http.StatusForbidden, dto.ErrCodeForbidden)

	w = testutil.Do(t, s.engine, testutil.Request{Path: "/api/v1/catalog/sub-products", Headers: map[string]string{"Authorization": "Bearer garbage"}})
	testutil.AssertErrorResponse(t, w, http.StatusUnauthorized, dto.ErrCodeUnauthorized)
}

func TestCatalogHandlers_Flow(t *testing.T) {
	s := newTestServer(t)
	admin := s.app.SignIn(t, "root@example.com", domainIdentity.RoleAdmin)
	customer := s.app.SignIn(t, "ada@example.com", domainIdentity.RoleCustomer)

	category := s.create(t, admin, "/api/v1/catalog/categories", map[string]any{
		"name":       "Phones",
		"attributes": []map[string]any{{"attributeName": "color", "value": "black"}},
	})
	categoryID := category["id"].(string)

	master := s.create(t, admin, "/api/v1/catalog/master-products", map[string]any{
		"masterProductName": "Pixel",
		"sku":               "PX-1",
		"description":       "A phone",
		"categoryId":        categoryID,
	})
	masterID := master["id"].(string)
	assert.Equal(t, "PUBLISHED", master["status"])
	assert.Equal(t, "Phones", master["category"].(map[string]any)["name"])

	t.Run("duplicate sku conflicts on sku", func(t *testing.T) {
		w := testutil.Do(t, s.engine, testutil.Request{
			Method: http.MethodPost, Path: "/api/v1/catalog/master-products", Token: admin,
			Body: map[string]any{"masterProductName": "Other", "sku": "PX-1", "categoryId": categoryID},
		})
		errMap := testutil.AssertErrorResponse(t, w, http.StatusConflict, dto.ErrCodeAlreadyExists)
		assert.Equal(t, "sku", errMap["field"])
	})

	published := s.create(t, admin, "/api/v1/catalog/sub-products", map[string]any{
		"masterProductId": masterID, "price": "10.50",
	})
	assert.Equal(t, "Pixel", published["subProductName"], "name defaults to the master's")
	s.create(t, admin, "/api/v1/catalog/sub-products", map[string]any{
		"masterProductId": masterID, "subProductName": "Pixel XL", "price": "30",
	})
	draft := s.create(t, admin, "/api/v1/catalog/sub-products", map[string]any{
		"masterProductId": masterID, "subProductName": "Pixel Prototype", "price": "99", "status": "DRAFT",
	})
	draftID := draft["id"].(string)

	t.Run("anonymous callers see published sub-products", func(t *testing.T) {
		w := testutil.Do(t, s.engine, testutil.Request{Path: "/api/v1/catalog/sub-products"})
		testutil.AssertSuccessResponse(t, w, http.StatusOK)
		assert.Len(t, testutil.JSONResponse(t, w)["data"], 2)

		w = testutil.Do(t, s.engine, testutil.Request{Path: "/api/v1/catalog/sub-products/" + draftID})
		testutil.AssertErrorResponse(t, w, http.StatusNotFound, dto.ErrCodeNotFound)
	})

	t.Run("customers see published sub-products", func(t *testing.T) {
		w := testutil.Do(t, s.engine, testutil.Request{Path: "/api/v1/catalog/sub-products", Token: customer})
		testutil.AssertSuccessResponse(t, w, http.StatusOK)
		assert.Len(t, testutil.JSONResponse(t, w)["data"], 2)
	})

	t.Run("staff see drafts", func(t *testing.T) {
		w := testutil.Do(t, s.engine, testutil.Request{Path: "/api/v1/catalog/sub-products?masterProductIds=" + masterID, Token: admin})
		testutil.AssertSuccessResponse(t, w, http.StatusOK)
		assert.Len(t, testutil.JSONResponse(t, w)["data"], 3)

		w = testutil.Do(t, s.engine, testutil.Request{Path: "/api/v1/catalog/sub-products/" + draftID, Token: admin})
		testutil.AssertSuccessResponse(t, w, http.StatusOK)
	})

	t.Run("sub-products filter by category", func(t *testing.T) {
		w := testutil.Do(t, s.engine, testutil.Request{Path: "/api/v1/catalog/sub-products?categoryIds=" + categoryID + "&search=xl&searchFields=subProductName"})
		testutil.AssertSuccessResponse(t, w, http.StatusOK)
		assert.Len(t, testutil.JSONResponse(t, w)["data"], 1)
	})

	t.Run("invalid id filter is rejected", func(t *testing.T) {
		w := testutil.Do(t, s.engine, testutil.Request{Path: "/api/v1/catalog/sub-products?categoryIds=not-a-uuid"})
		errMap := testutil.AssertErrorResponse(t, w, http.StatusBadRequest, dto.ErrCodeInvalidInput)
		assert.Equal(t, "categoryIds", errMap["field"])
	})

	t.Run("master list carries the published price range", func(t *testing.T) {
		w := testutil.Do(t, s.engine, testutil.Request{Path: "/api/v1/catalog/master-products?categoryIds=" + categoryID})
		testutil.AssertSuccessResponse(t, w, http.StatusOK)
		resp := testutil.JSONResponse(t, w)
		data := resp["data"].(map[string]any)
		assert.Len(t, data["items"], 1)
		assertDecimal(t, "10.5", data["minPrice"])
		assertDecimal(t, "30", data["maxPrice"])
		assert.EqualValues(t, 1, resp["meta"].(map[string]any)["total"])
	})

	t.Run("master cascade delete", func(t *testing.T) {
		w := testutil.Do(t, s.engine, testutil.Request{Method: http.MethodDelete, Path: "/api/v1/catalog/master-products/" + masterID + "/cascade", Token: admin})
		testutil.AssertSuccessResponse(t, w, http.StatusOK)
		result := testutil.Data(t, w)
		assert.EqualValues(t, 1, result["archivedMasterProducts"])
		assert.EqualValues(t, 3, result["deletedSubProducts"])

		w = testutil.Do(t, s.engine, testutil.Request{Path: "/api/v1/catalog/master-products/" + masterID})
		testutil.AssertErrorResponse(t, w, http.StatusNotFound, dto.ErrCodeNotFound)
	})
}

func TestCatalogHandlers_CategoryCascade(t *testing.T) {
	s := newTestServer(t)
	admin := s.app.SignIn(t, "root@example.com", domainIdentity.RoleManager)

	category := s.create(t, admin, "/api/v1/catalog/categories", map[string]any{"name": "Laptops"})
	categoryID := category["id"].(string)
	for i, sku := range []string{"LP-1", "LP-2"} {
		master := s.create(t, admin, "/api/v1/catalog/master-products", map[string]any{
			"masterProductName": fmt.Sprintf("Laptop %d", i), "sku": sku, "categoryId": categoryID,
		})
		s.create(t, admin, "/api/v1/catalog/sub-products", map[string]any{"masterProductId": master["id"], "price": "999"})
	}

	w := testutil.Do(t, s.engine, testutil.Request{Method: http.MethodDelete, Path: "/api/v1/catalog/categories/" + categoryID, Token: admin})
	testutil.AssertSuccessResponse(t, w, http.StatusOK)
	result := testutil.Data(t, w)
	assert.EqualValues(t, 2, result["archivedMasterProducts"])
	assert.EqualValues(t, 2, result["deletedSubProducts"])

	w = testutil.Do(t, s.engine, testutil.Request{Path: "/api/v1/catalog/categories/" + categoryID})
	testutil.AssertErrorResponse(t, w, http.StatusNotFound, dto.ErrCodeNotFound)

	w = testutil.Do(t, s.engine, testutil.Request{Path: "/api/v1/catalog/master-products"})
	testutil.AssertSuccessResponse(t, w, http.StatusOK)
	data := testutil.Data(t, w)
	assert.Empty(t, data["items"])
}

func TestCatalogHandlers_MalformedID(t *testing.T) {
	s := newTestServer(t)

	w := testutil.Do(t, s.engine, testutil.Request{Path: "/api/v1/catalog/categories/123"})
	errMap := testutil.AssertErrorResponse(t, w, http.StatusBadRequest, dto.ErrCodeInvalidInput)
	assert.Equal(t, "id", errMap["field"])
}
