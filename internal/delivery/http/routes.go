package http

import (
	"github.com/amoremio/backend/config"
	"github.com/gin-gonic/gin"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	if cfg.RateLimit.PerIP > 0 {
		router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
	}

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/catalog", handler.GetCatalog)
		v1.GET("/products/:id", handler.GetProduct)
		v1.GET("/nav", handler.GetNav)

		cart := v1.Group("/cart")
		{
			cart.GET("", handler.GetCart)
			cart.POST("/items", handler.AddCartItem)
			cart.PUT("/items/:index", handler.UpdateCartItem)
			cart.DELETE("/items/:index", handler.RemoveCartItem)
		}

		checkout := v1.Group("/checkout")
		{
			checkout.POST("", handler.SubmitCheckout)
			checkout.GET("/whatsapp", handler.GetWhatsAppLink)
		}
	}

	return router
}
