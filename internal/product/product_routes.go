package product

import (
	"go-storefront-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	products := r.Group("/products")
	{
		// Public browsing is limited per IP against bulk scraping;
		// generous enough for real clients.
		products.GET("", middleware.RateLimitByIP(50, 100), handler.List)
		products.GET("/categories/list", handler.Categories)
		products.GET("/:id", handler.GetByID)

		products.POST("", handler.Create)
		products.PUT("/:id", handler.Update)
		products.DELETE("/:id", handler.Delete)
	}
}
