package routes

import (
	"os"
	"strings"

	"agencypro-backend/config"
	"agencypro-backend/controllers"
	"agencypro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	{
		// Public catalog routes consumed by the landing pages
		services := api.Group("/services")
		{
			services.GET("", controllers.GetServices)
			services.GET("/:slug", controllers.GetServiceBySlug)
			services.GET("/:slug/faqs", controllers.GetServiceFAQs)
			services.GET("/:slug/related", controllers.GetRelatedServices)
		}

		blog := api.Group("/blog")
		{
			blog.GET("", controllers.GetBlogPosts)
			blog.GET("/:slug", controllers.GetBlogPostBySlug)
		}

		api.GET("/site-config", controllers.GetSiteConfig)
		api.GET("/contact/options", controllers.GetContactOptions)
		api.POST("/contact", controllers.CreateLead)

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(utils.AuthMiddleware())
		{
			admin.GET("/dashboard", controllers.GetDashboardOverview)
			admin.GET("/leads", controllers.GetLeads)
			admin.PUT("/leads/:id/status", controllers.UpdateLeadStatus)

			admin.GET("/seeders", controllers.ListSeeders)
			admin.POST("/seeders/:name/run", controllers.RunSeeder)
			admin.POST("/seeders/:name/clear", controllers.ClearSeeder)
		}
	}

	return r
}
