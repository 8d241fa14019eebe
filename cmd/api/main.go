package main

import (
	"log"
	"os"
	"time"

	"go-storefront-api/internal/app"
	"go-storefront-api/internal/bootstrap"
	"go-storefront-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	zl, err := logger.Init()
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// build dependencies + routes
	if err := app.BuildApp(r, zl); err != nil {
		zl.Fatal("build app failed", zap.Error(err))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		zl,
	); err != nil {
		zl.Fatal("server failed", zap.Error(err))
	}
}
