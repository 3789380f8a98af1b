package main

import (
	"fmt"
	"os"

	"agencypro-backend/config"
	"agencypro-backend/controllers"
	"agencypro-backend/models"
	"agencypro-backend/routes"
	"agencypro-backend/services"
	"agencypro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}
	utils.InitLogger()
	config.ConnectDB()

	if err := config.DB.AutoMigrate(models.All()...); err != nil {
		utils.GetLogger().Fatal("auto-migration failed", zap.Error(err))
	}
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Constructed here, after init has loaded .env, so the twilio
	// credentials are in the environment when they are read.
	controllers.SetLeadNotifier(services.NewNotificationService())

	publisher := services.NewPublisherService(config.DB)
	publisher.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
