package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopcore/backend/internal/interfaces/http/handler"
	"github.com/shopcore/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers are the endpoints mounted by Mount
type Handlers struct {
	Auth          *handler.AuthHandler
	User          *handler.UserHandler
	Category      *handler.CategoryHandler
	MasterProduct *handler.MasterProductHandler
	SubProduct    *handler.SubProductHandler
	System        *handler.SystemHandler

	// GraphQL serves POST and GET /graphql when set
	GraphQL gin.HandlerFunc
	// Metrics serves GET /metrics when set
	Metrics http.Handler
}

// Options control the optional surfaces
type Options struct {
	APIVersion    string
	EnableSwagger bool
	// AuthRateLimit guards the credential endpoints when set
	AuthRateLimit gin.HandlerFunc
}

// AuthRoutes builds the /auth group. limit, when non-nil, runs before login, signup and refresh.
func AuthRoutes(h *handler.AuthHandler, authn, limit gin.HandlerFunc) *DomainGroup {
	guarded := func(fn gin.HandlerFunc) []gin.HandlerFunc {
		if limit == nil {
			return []gin.HandlerFunc{fn}
		}
		return []gin.HandlerFunc{limit, fn}
	}

	g := NewDomainGroup("auth", "/auth")
	g.POST("/login", guarded(h.Login)...).Describe("Exchange credentials for a token pair")
	g.POST("/signup", guarded(h.Signup)...).Describe("Create a customer account")
	g.POST("/refresh", guarded(h.Refresh)...).Describe("Rotate a refresh token")
	g.POST("/revoke", authn, h.Revoke).Describe("Revoke an access token")
	g.GET("/me", authn, h.Me).Describe("Current user")
	return g
}

// UserRoutes builds the /users group; every route requires a caller
func UserRoutes(h *handler.UserHandler, authn gin.HandlerFunc) *DomainGroup {
	g := NewDomainGroup("users", "/users").Use(authn)
	g.GET("", h.List).Describe("List users")
	g.GET("/by-email", h.GetByEmail).Describe("Get a user by email")
	g.PUT("/:id", h.Update).Describe("Update a user")
	g.POST("/logout", h.Logout).Describe("End every session of a user")
	return g
}

// CatalogRoutes builds the /catalog group. Reads are public, sub-product reads
// resolve an optional caller for status visibility.
func CatalogRoutes(h Handlers, authn, optional gin.HandlerFunc) *DomainGroup {
	g := NewDomainGroup("catalog", "/catalog")

	categories := g.Group("categories", "/categories")
	categories.POST("", authn, h.Category.Create).Describe("Create a category")
	categories.GET("", h.Category.List).Describe("List categories")
	categories.GET("/:id", h.Category.GetByID).Describe("Get a category")
	categories.PUT("/:id", authn, h.Category.Update).Describe("Update a category")
	categories.DELETE("/:id", authn, h.Category.Delete).Describe("Delete a category and its dependents")

	masters := g.Group("master-products", "/master-products")
	masters.POST("", authn, h.MasterProduct.Create).Describe("Create a master product")
	masters.GET("", h.MasterProduct.List).Describe("List master products with the price range")
	masters.GET("/:id", h.MasterProduct.GetByID).Describe("Get a master product")
	masters.PUT("/:id", authn, h.MasterProduct.Update).Describe("Update a master product")
	masters.DELETE("/:id", authn, h.MasterProduct.Delete).Describe("Archive a master product")
	masters.DELETE("/:id/cascade", authn, h.MasterProduct.DeleteCascade).Describe("Archive a master product and delete its sub-products")

	subs := g.Group("sub-products", "/sub-products")
	subs.POST("", authn, h.SubProduct.Create).Describe("Create a sub-product")
	subs.GET("", optional, h.SubProduct.List).Describe("List visible sub-products")
	subs.GET("/:id", optional, h.SubProduct.GetByID).Describe("Get a visible sub-product")
	subs.PUT("/:id", authn, h.SubProduct.Update).Describe("Update a sub-product")
	subs.DELETE("/:id", authn, h.SubProduct.Delete).Describe("Delete a sub-product")

	return g
}

// Mount registers the REST groups under the API prefix and the top-level
// system, metrics, swagger and GraphQL endpoints. It returns the mounted groups.
func Mount(engine *gin.Engine, resolver middleware.CallerResolver, h Handlers, opts Options) []*DomainGroup {
	authn := middleware.Authenticate(resolver)
	optional := middleware.OptionalAuthenticate(resolver)

	var routerOpts []RouterOption
	if opts.APIVersion != "" {
		routerOpts = append(routerOpts, WithAPIVersion(opts.APIVersion))
	}
	r := NewRouter(engine, routerOpts...)

	groups := []*DomainGroup{
		AuthRoutes(h.Auth, authn, opts.AuthRateLimit),
		UserRoutes(h.User, authn),
		CatalogRoutes(h, authn, optional),
	}
	for _, g := range groups {
		r.Register(g)
	}
	r.Setup()

	if h.System != nil {
		engine.GET("/health", h.System.Health)
	}
	if h.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(h.Metrics))
	}
	if h.GraphQL != nil {
		engine.POST("/graphql", optional, h.GraphQL)
		engine.GET("/graphql", optional, h.GraphQL)
	}
	if opts.EnableSwagger {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	return groups
}
