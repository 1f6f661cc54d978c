package routes

import (
	"net/http"
	"time"

	"travelhub/config"
	"travelhub/handlers"
	"travelhub/middleware"
	"travelhub/models"
	"travelhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		api.POST("/logout", middleware.JWTAuthMiddleware(hb.Cache), hb.Auth.LogoutHandler)
	}
}

// RegisterReservationRoutes registers the booking lifecycle endpoints.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	api.Use(middleware.JWTAuthMiddleware(hb.Cache))
	{
		api.POST("", hb.Reservations.CreateServiceReservation)
		api.POST("/tours", hb.Reservations.CreateTourReservation)
		api.POST("/vehicles", hb.Reservations.CreateVehicleReservation)
		api.POST("/restaurants", hb.Reservations.CreateRestaurantReservation)

		api.GET("/my-bookings", hb.Reservations.MyBookings)
		api.GET("/provider", middleware.RequireRole(models.RoleProvider, models.RoleAdmin), hb.Reservations.ProviderReservations)

		api.PUT("/:kind/:id/status", middleware.RequireRole(models.RoleProvider, models.RoleAdmin), hb.Reservations.UpdateStatus)
		api.POST("/:kind/:id/cancel", hb.Reservations.Cancel)
		api.GET("/:kind/:id", hb.Reservations.Details)
		api.DELETE("/:kind/:id", hb.Reservations.Delete)
	}
}

// RegisterNotificationRoutes registers the inbox endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	api.Use(middleware.JWTAuthMiddleware(hb.Cache))
	{
		api.GET("", hb.Notifications.List)
		api.POST("", middleware.RequireRole(models.RoleAdmin), hb.Notifications.Create)
		api.POST("/mark-all-read", hb.Notifications.MarkAllRead)
		api.POST("/:id/read", hb.Notifications.MarkRead)
		api.DELETE("/:id", hb.Notifications.Delete)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.Cache), middleware.RequireRole(models.RoleAdmin))
		adminGroup.GET("/stats", hb.Admin.StatsHandler)
		adminGroup.GET("/users", hb.Admin.GetAllUsersHandler)
		adminGroup.GET("/services", hb.Admin.GetAllServicesHandler)
		adminGroup.GET("/reservations", hb.Reservations.AllReservations)
	}
}

// RegisterHealthRoute reports the last dependency health snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		health := utils.GetHealthStatus()
		status := http.StatusOK
		if !health.CheckedAt.IsZero() && !health.Mongo {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"status": http.StatusText(status), "checks": health})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	handlers.RegisterValidators()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	RegisterAuthRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
