package routes

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/odualeSamsonSolomon/JoTech/controllers"
	"github.com/odualeSamsonSolomon/JoTech/middleware"
)

// RegisterAPIRoutes mounts the public storefront API.
func RegisterAPIRoutes(
	r *gin.Engine,
	products *controllers.ProductController,
	orders *controllers.OrderController,
	engagement *controllers.EngagementController,
) {
	api := r.Group("/api")
	{
		api.GET("/products", products.GetProducts)
		api.GET("/products/:id", products.GetProduct)
		api.POST("/orders", middleware.RateLimit(rate.Limit(1), 5), orders.CreateOrder)
		api.GET("/orders/:orderNumber", orders.GetOrder)
		api.POST("/newsletter", engagement.Subscribe)
		api.POST("/appointments", engagement.BookAppointment)
	}
}

// RegisterCartRoutes mounts the session cart surface.
func RegisterCartRoutes(r *gin.Engine, carts *controllers.CartController) {
	group := r.Group("/cart")
	{
		group.GET("", carts.GetCart)
		group.POST("/items", carts.AddItem)
		group.POST("/checkout", carts.Checkout)
	}
}
