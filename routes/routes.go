package routes

import (
	"github.com/JamesBarr456/tienda-api/auth"
	"github.com/JamesBarr456/tienda-api/checkout"
	cartControllers "github.com/JamesBarr456/tienda-api/controllers/cart"
	checkoutControllers "github.com/JamesBarr456/tienda-api/controllers/checkout"
	productControllers "github.com/JamesBarr456/tienda-api/controllers/product"
	"github.com/JamesBarr456/tienda-api/middleware"
	"github.com/JamesBarr456/tienda-api/services"
	"github.com/JamesBarr456/tienda-api/store"
	"github.com/gin-gonic/gin"
)

// Deps carries the wired services the route groups need.
type Deps struct {
	Carts     *services.CartService
	Checkout  *checkout.Service
	Products  store.ProductStore
	Users     store.UserStore
	OrderFeed *checkoutControllers.OrderFeed
}

// SetupRoutes is the single entry point that wires up the auth, user
// and order-feed route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	r.POST("/auth/session", auth.CreateSession(deps.Users))

	// Order feed for the store dashboard
	r.GET("/orders/feed", deps.OrderFeed.Handler)

	// User routes (JWT protected)
	SetupUserRoutes(r, deps)
}

// SetupUserRoutes registers all "/user/*" endpoints.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(deps.Carts))                      // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(deps.Carts))                     // POST /user/cart
			cartGroup.PATCH("/items/:item_id", cartControllers.UpdateCartItem(deps.Carts))   // PATCH /user/cart/items/:item_id
			cartGroup.DELETE("/items/:item_id", cartControllers.RemoveCartItem(deps.Carts))  // DELETE /user/cart/items/:item_id
			cartGroup.PUT("/promo", cartControllers.SetPromoDiscount(deps.Carts))            // PUT /user/cart/promo
			cartGroup.GET("/history", cartControllers.CartHistory(deps.Carts))               // GET /user/cart/history
		}

		// ──────────────── Checkout ────────────────
		checkoutGroup := userGroup.Group("/checkout")
		{
			checkoutGroup.GET("/shipping-rates", checkoutControllers.GetShippingRates()) // GET /user/checkout/shipping-rates
			checkoutGroup.POST("/quote", checkoutControllers.Quote(deps.Carts))          // POST /user/checkout/quote
			checkoutGroup.POST("/", checkoutControllers.Submit(deps.Checkout))           // POST /user/checkout
		}

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productControllers.GetProducts(deps.Products))                   // GET /user/products
		userGroup.GET("/products/export", productControllers.ExportProductsToExcel(deps.Products)) // GET /user/products/export
		userGroup.GET("/products/by-name/:name", productControllers.GetProductByName(deps.Products))
		userGroup.GET("/products/:id", productControllers.GetProductByID(deps.Products)) // GET /user/products/:id
	}
}
