package app

import (
	"net/http"
	"time"

	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/events"
	"go-storefront-api/internal/middleware"
	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"
	"go-storefront-api/internal/product"
	"go-storefront-api/internal/shared/cache"
	"go-storefront-api/internal/system"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	logger *zap.Logger,
	productStore *product.Store,
	cartStore *cart.Store,
	categoryCache cache.Cache,
	publisher events.Publisher,
) {
	// --- Cross-cutting middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		MaxAge:          24 * time.Hour,
	}))

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, apperror.CodeNotFound,
			"The requested resource was not found")
	})

	// --- Services ---
	productService := product.NewService(productStore, categoryCache, publisher)
	cartService := cart.NewService(cartStore, publisher)

	// --- Handlers ---
	productHandler := product.NewHandler(productService)
	cartHandler := cart.NewHandler(cartService)
	systemHandler := system.NewHandler()

	// --- Routes ---
	system.RegisterRoutes(router, systemHandler)

	api := router.Group("/api/v1")
	{
		product.RegisterRoutes(api, productHandler)
		cart.RegisterRoutes(api, cartHandler)
	}
}
