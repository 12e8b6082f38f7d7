package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mwauth "github.com/unicart/unicart/internal/middleware/auth"
)

type Deps struct {
	Auth     *AuthHTTP
	Catalog  *CatalogHTTP
	Cart     *CartHTTP
	Wishlist *WishlistHTTP
	Gate     *mwauth.Gate
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	api.POST("/auth/register", d.Auth.Register)
	api.POST("/auth/login", d.Auth.Login)

	api.GET("/products", d.Catalog.GetProducts)
	api.GET("/products/search", d.Catalog.SearchProducts)
	api.GET("/products/:id", d.Catalog.GetProduct)
	api.GET("/categories", d.Catalog.GetCategories)

	cart := api.Group("/cart")
	cart.Use(d.Gate.RequireAuth)
	cart.GET("", d.Cart.GetCart)
	cart.POST("", d.Cart.AddToCart)
	cart.PUT("/:productId", d.Cart.UpdateCartItem)
	cart.DELETE("/:productId", d.Cart.DeleteCartItem)

	wishlist := api.Group("/wishlist")
	wishlist.Use(d.Gate.RequireAuth)
	wishlist.GET("", d.Wishlist.GetWishlist)
	wishlist.POST("", d.Wishlist.AddToWishlist)
	wishlist.DELETE("/:productId", d.Wishlist.DeleteWishlistItem)

	admin := api.Group("/admin", d.Gate.RequireAdmin)
	admin.POST("/products", d.Catalog.CreateProduct)
	admin.PUT("/products/:id", d.Catalog.UpdateProduct)
	admin.DELETE("/products/:id", d.Catalog.DeleteProduct)
}
