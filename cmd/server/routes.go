package main

import (
	"net/http"

	"edufund.backend/internal/interfaces/http/handlers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	profileHandler  *handlers.ProfileHandler
	campaignHandler *handlers.CampaignHandler
	studentHandler  *handlers.StudentHandler
	donorHandler    *handlers.DonorHandler
	avatarHandler   *handlers.AvatarHandler
	authMiddleware  gin.HandlerFunc
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/verify", d.authMiddleware, d.authHandler.Verify)
		}

		// Profile routes (protected)
		profile := api.Group("/profile")
		profile.Use(d.authMiddleware)
		{
			profile.POST("", d.profileHandler.CreateProfile)
			profile.GET("/me", d.profileHandler.GetMyProfile)
			profile.PUT("/me", d.profileHandler.UpdateMyProfile)
			profile.POST("/avatar", d.avatarHandler.Upload)
		}

		// Signed asset URLs (protected)
		api.GET("/avatar/signed-url", d.authMiddleware, d.avatarHandler.SignedURL)

		// Student directory (public)
		students := api.Group("/students")
		{
			students.GET("", d.studentHandler.ListStudents)
			students.GET("/:id", d.studentHandler.GetStudent)
		}

		// Donor routes
		donor := api.Group("/donor")
		{
			donor.GET("/tiers", d.donorHandler.ListTiers)
			donor.GET("/profile", d.authMiddleware, d.donorHandler.GetProfile)
		}

		// Campaign routes (public read, owner write)
		campaigns := api.Group("/campaigns")
		{
			campaigns.GET("", d.campaignHandler.List)
			campaigns.GET("/:id", d.campaignHandler.Get)
			campaigns.POST("", d.authMiddleware, d.campaignHandler.Create)
			campaigns.PUT("/:id", d.authMiddleware, d.campaignHandler.Update)
			campaigns.DELETE("/:id", d.authMiddleware, d.campaignHandler.Delete)
		}
	}
}
