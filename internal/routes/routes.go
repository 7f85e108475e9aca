package routes

import (
	"olyncha_back_end/internal/handlers"
	"olyncha_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.Use(middleware.OptionalAuth())

	// Produits
	api.GET("/products", handlers.GetProducts)
	api.GET("/products/:id", handlers.GetProductByID)
	api.POST("/products", handlers.ProductActions)

	// Panier
	api.GET("/cart", handlers.GetCart)
	api.POST("/cart/items", handlers.AddToCart)
	api.PATCH("/cart/items/:id", handlers.UpdateCartQuantity)
	api.DELETE("/cart/items/:id", handlers.RemoveFromCart)
	api.DELETE("/cart", handlers.ClearCart)
	api.POST("/cart/toggle", handlers.ToggleCart)
	api.POST("/cart/open", handlers.OpenCart)
	api.POST("/cart/close", handlers.CloseCart)
	api.GET("/cart/ws", handlers.CartWebSocket)

	// Auth
	api.POST("/auth", handlers.AuthActions)
	api.GET("/auth/me", handlers.Me)

	// Profil (token obligatoire)
	api.GET("/auth/profile", middleware.AuthRequired(), handlers.Me)
	api.PUT("/auth/profile", middleware.AuthRequired(), handlers.UpdateProfile)

	// Commandes
	api.POST("/orders", handlers.CreateOrder)
	api.GET("/orders", handlers.GetOrders)
	api.GET("/orders/:id", handlers.GetOrderByID)
	api.PATCH("/orders/:id", handlers.UpdateOrderStatus)
}
