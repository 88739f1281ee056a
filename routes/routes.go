package routes

import (
	"watch-shop/controllers"
	"watch-shop/logger"
	"watch-shop/middleware"
	"watch-shop/repositories"
	"watch-shop/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, catalogRepo *repositories.CatalogRepository, log *logger.Logger) {
	catalogService := services.NewCatalogService(catalogRepo)
	cartService := services.NewCartService()
	orderService := services.NewOrderService()

	catalogCtrl := controllers.NewCatalogController(catalogService, log)
	cartCtrl := controllers.NewCartController(cartService, catalogService, log)
	orderCtrl := controllers.NewOrderController(cartService, orderService, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/products", catalogCtrl.GetAllProducts)
	router.GET("/products/:id", catalogCtrl.GetProductByID)
	router.GET("/brands", catalogCtrl.GetAllBrands)
	router.GET("/vendor", orderCtrl.GetVendor)

	cart := router.Group("/cart")
	cart.Use(middleware.SessionMiddleware())
	{
		cart.GET("", cartCtrl.GetCart)
		cart.POST("/items/:id", cartCtrl.AddToCart)
		cart.DELETE("/items/:id", cartCtrl.RemoveFromCart)
		cart.POST("/items/:id/increment", cartCtrl.IncrementQty)
		cart.POST("/items/:id/decrement", cartCtrl.DecrementQty)
		cart.GET("/checkout", orderCtrl.Checkout)
		cart.POST("/enquiry", orderCtrl.SendEnquiry)
	}
}
