// @title Volubiks CMS API
// @version 1.0
// @description Volubiks Admin Backend API Documentation
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/teesvolubiks/volubiks-cms-backend/config"
	"github.com/teesvolubiks/volubiks-cms-backend/controllers/cms/analytics_controller"
	"github.com/teesvolubiks/volubiks-cms-backend/controllers/cms/customer_controller"
	"github.com/teesvolubiks/volubiks-cms-backend/controllers/cms/dashboard_controller"
	"github.com/teesvolubiks/volubiks-cms-backend/controllers/cms/inventory_controller"
	"github.com/teesvolubiks/volubiks-cms-backend/controllers/cms/order_controller"
	_ "github.com/teesvolubiks/volubiks-cms-backend/docs"
	"github.com/teesvolubiks/volubiks-cms-backend/middleware"
	"github.com/teesvolubiks/volubiks-cms-backend/routes/cms_routes"
	"github.com/teesvolubiks/volubiks-cms-backend/store"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to the storefront's key-value store
	redisClient, err := config.ConnectRedis()
	if err != nil {
		logrus.Fatalf("[main] failed to connect to Redis: %v", err)
	}

	// Stores over the storefront blobs
	orderStore := store.NewOrderStore(redisClient)
	productStore := store.NewProductStore(redisClient)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "volubiks-cms-backend",
		})
	})

	// Register API routes (admin panel at /api/v1/admin)
	api := router.Group("/api/v1")

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(redisClient, 100, time.Minute))

	cms_routes.SetupDashboardRoutes(adminGroup, dashboard_controller.NewController(orderStore, productStore))
	cms_routes.SetupAnalyticsRoutes(adminGroup, analytics_controller.NewController(orderStore, productStore))
	cms_routes.SetupCustomerRoutes(adminGroup, customer_controller.NewController(orderStore))
	cms_routes.SetupOrderRoutes(adminGroup, order_controller.NewController(orderStore))
	cms_routes.SetupInventoryRoutes(adminGroup, inventory_controller.NewController(productStore))
	logrus.Info("[main] admin routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := config.GetEnv("PORT", "8081")
	logrus.Infof("[main] server is running on http://localhost:%s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("[main] server error: %v", err)
	}
}
