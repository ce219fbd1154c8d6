package app

import (
	"course_admin_backend/docs"
	"course_admin_backend/internal/config"
	"course_admin_backend/internal/middleware"
	"course_admin_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes, no token required.
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/login", c.auth.Login)
	}

	// Everything below requires an authenticated admin.
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg, a.services.auth))
	{
		authGroup.POST("/logout", c.auth.Logout)
		authGroup.GET("/profile", c.auth.GetProfile)

		authGroup.GET("/dashboard", c.dashboard.Stats)

		courses := authGroup.Group("/courses")
		{
			courses.POST("/generate", c.course.Generate)
			courses.GET("", c.course.List)
			courses.GET("/cid/:cid", c.course.GetByCID)
			courses.GET("/:id", c.course.Get)
			courses.DELETE("/:id", c.course.Delete)
			courses.POST("/:id/banner", c.course.UploadBanner)
			courses.POST("/:id/videos", c.course.UploadChapterVideo)
			courses.GET("/:id/assets", c.course.ListAssets)
		}

		workers := authGroup.Group("/admin/workers")
		{
			workers.POST("", c.worker.Create)
			workers.GET("", c.worker.List)
			workers.GET("/:id", c.worker.Get)
			workers.PUT("/:id", c.worker.Update)
			workers.DELETE("/:id", c.worker.Delete)
		}
	}
}
