package httpserver

import (
	"github.com/labstack/echo/v4"

	mwauth "github.com/ReemOthm/home-decor-backend/internal/middleware/auth"
	"github.com/ReemOthm/home-decor-backend/internal/tokens"
)

type Deps struct {
	Tokens *tokens.Service

	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	OrderHandler    *OrderHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	requireLogin := mwauth.RequireLogin(d.Tokens)
	adminOnly := mwauth.Requires(tokens.RoleAdmin)
	notBanned := mwauth.RequireNotBanned()

	v1 := e.Group("/api/v1")

	v1.POST("/login", d.AuthHandler.Login)
	v1.POST("/refresh", d.AuthHandler.Refresh)
	v1.POST("/revoke", d.AuthHandler.Revoke, requireLogin)

	users := v1.Group("/users")
	users.POST("/signup", d.UserHandler.Signup)
	users.GET("/profile", d.UserHandler.Profile, requireLogin)
	users.PUT("/profile", d.UserHandler.UpdateProfile, requireLogin)
	users.GET("", d.UserHandler.List, requireLogin, adminOnly)
	users.GET("/:id", d.UserHandler.Get, requireLogin, adminOnly)
	users.PUT("/:id/ban", d.UserHandler.ToggleBan, requireLogin, adminOnly)
	users.DELETE("/:id", d.UserHandler.Delete, requireLogin, adminOnly)

	categories := v1.Group("/categories")
	categories.GET("", d.CategoryHandler.List)
	categories.GET("/:slug", d.CategoryHandler.GetBySlug)
	categories.GET("/:slug/products", d.CategoryHandler.Products)
	categories.POST("", d.CategoryHandler.Create, requireLogin, adminOnly)
	categories.PUT("/:id", d.CategoryHandler.Update, requireLogin, adminOnly)
	categories.DELETE("/:id", d.CategoryHandler.Delete, requireLogin, adminOnly)

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.List)
	products.GET("/search", d.ProductHandler.Search)
	products.GET("/slug/:slug", d.ProductHandler.GetBySlug)
	products.GET("/:id", d.ProductHandler.Get)
	products.POST("", d.ProductHandler.Create, requireLogin, adminOnly)
	products.PUT("/:id", d.ProductHandler.Update, requireLogin, adminOnly)
	products.DELETE("/:id", d.ProductHandler.Delete, requireLogin, adminOnly)

	orders := v1.Group("/orders", requireLogin)
	orders.POST("", d.OrderHandler.Create, notBanned)
	orders.POST("/:id/products", d.OrderHandler.AttachProduct, notBanned)
	orders.GET("/my-orders", d.OrderHandler.ListMine)
	orders.PUT("/my-orders/:id", d.OrderHandler.UpdateMine, notBanned)
	orders.DELETE("/my-orders/:id", d.OrderHandler.DeleteMine)
	orders.GET("", d.OrderHandler.ListAll, adminOnly)
	orders.GET("/:id", d.OrderHandler.Get, adminOnly)
	orders.PUT("/:id", d.OrderHandler.Update, adminOnly)
	orders.DELETE("/:id", d.OrderHandler.Delete, adminOnly)
}
