package main

import (
	"log"

	"watch-shop/config"
	_ "watch-shop/docs"
	"watch-shop/logger"
	"watch-shop/middleware"
	"watch-shop/models"
	"watch-shop/repositories"
	"watch-shop/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title Sammy Fx Watch Shop API
// @version 1.0
// @description Storefront API for the Sammy Fx watch catalog.
// @BasePath /
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	zlog, err := logger.NewLogger(config.AppConfig.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	models.InitRedis()
	defer models.CloseRedis()

	catalogRepo := repositories.NewCatalogRepository()
	if err := catalogRepo.LoadFromFile(config.AppConfig.CatalogFile, config.AppConfig.PriceMarkup); err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	zlog.Info("catalog loaded",
		zap.String("file", config.AppConfig.CatalogFile),
		zap.Int("products", len(catalogRepo.GetAllProducts())))

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, catalogRepo, zlog)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
