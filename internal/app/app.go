package app

import (
	"os"

	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/events"
	"go-storefront-api/internal/product"
	"go-storefront-api/internal/shared/cache"
	"go-storefront-api/internal/shared/seed"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp constructs the stores once, seeds the catalog, wires the
// optional infrastructure and registers all routes. State lives in
// memory for the process lifetime; a restart reseeds.
func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	// 1. Stores
	productStore := product.NewStore()
	for _, p := range seed.Products() {
		productStore.Create(p)
	}
	cartStore := cart.NewStore(productStore)

	logger.Info("catalog seeded", zap.Int("products", productStore.Count()))

	// 2. Optional infrastructure
	var categoryCache cache.Cache = cache.Noop{}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client, err := connectRedisWithRetry(addr, 5, logger)
		if err != nil {
			return err
		}
		categoryCache = cache.NewRedis(client)
	}

	var publisher events.Publisher = events.Nop{}
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		writer, err := connectKafkaWithRetry(broker, 5, logger)
		if err != nil {
			return err
		}
		publisher = events.NewKafkaPublisher(writer, logger)
	}

	// 3. Modules & routes
	registerModules(router, logger, productStore, cartStore, categoryCache, publisher)

	return nil
}
