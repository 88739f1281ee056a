package api

import (
	"log"
	"net/http"
	"sync"

	"watch-shop/config"
	"watch-shop/logger"
	"watch-shop/middleware"
	"watch-shop/models"
	"watch-shop/repositories"
	"watch-shop/routes"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		models.InitRedis()

		zlog, err := logger.NewLogger(config.AppConfig.LogLevel)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}

		catalogRepo := repositories.NewCatalogRepository()
		if err := catalogRepo.LoadFromFile(config.AppConfig.CatalogFile, config.AppConfig.PriceMarkup); err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, catalogRepo, zlog)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
