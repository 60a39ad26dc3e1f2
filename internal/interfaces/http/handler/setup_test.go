package handler

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopcore/backend/internal/interfaces/http/middleware"
	"github.com/shopcore/backend/internal/testutil/apptest"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

type testServer struct {
	app    *apptest.App
	engine *gin.Engine
}

// newTestServer mounts every handler over a real service graph
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := apptest.New(t)
	paging := DefaultPaging()
	authn := middleware.Authenticate(app.Resolver)
	optional := middleware.OptionalAuthenticate(app.Resolver)

	authH := NewAuthHandler(app.Auth)
	userH := NewUserHandler(app.UserSvc, paging)
	categoryH := NewCategoryHandler(app.Categories, paging)
	masterH := NewMasterProductHandler(app.Masters, paging)
	subH := NewSubProductHandler(app.Subs, paging)

	r := gin.New()
	r.Use(middleware.RequestID())
	api := r.Group("/api/v1")

	api.POST("/auth/login", authH.Login)
	api.POST("/auth/signup", authH.Signup)
	api.POST("/auth/refresh", authH.Refresh)
	api.POST("/auth/revoke", authn, authH.Revoke)
	api.GET("/auth/me", authn, authH.Me)

	api.GET("/users", authn, userH.List)
	api.GET("/users/by-email", authn, userH.GetByEmail)
	api.PUT("/users/:id", authn, userH.Update)
	api.POST("/users/logout", authn, userH.Logout)

	api.POST("/catalog/categories", authn, categoryH.Create)
	api.GET("/catalog/categories", categoryH.List)
	api.GET("/catalog/categories/:id", categoryH.GetByID)
	api.PUT("/catalog/categories/:id", authn, categoryH.Update)
	api.DELETE("/catalog/categories/:id", authn, categoryH.Delete)

	api.POST("/catalog/master-products", authn, masterH.Create)
	api.GET("/catalog/master-products", masterH.List)
	api.GET("/catalog/master-products/:id", masterH.GetByID)
	api.PUT("/catalog/master-products/:id", authn, masterH.Update)
	api.DELETE("/catalog/master-products/:id", authn, masterH.Delete)
	api.DELETE("/catalog/master-products/:id/cascade", authn, masterH.DeleteCascade)

	api.POST("/catalog/sub-products", authn, subH.Create)
	api.GET("/catalog/sub-products", optional, subH.List)
	api.GET("/catalog/sub-products/:id", optional, subH.GetByID)
	api.PUT("/catalog/sub-products/:id", authn, subH.Update)
	api.DELETE("/catalog/sub-products/:id", authn, subH.Delete)

	return &testServer{app: app, engine: r}
}
