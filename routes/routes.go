package routes

import (
	"net/http"
	"time"

	"courtside/handlers"
	"courtside/middleware"
	userService "courtside/services/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the court schedule endpoints. Every
// booking endpoint requires an authenticated member.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.FirebaseAuthMiddleware())
		api.GET("", hb.Booking.ListBookings)
		api.GET("/mine", hb.Booking.ListMyBookings)
		api.GET("/slots", hb.Booking.DisabledSlots)
		api.GET("/:id", hb.Booking.GetBooking)
		api.POST("", hb.Booking.CreateBooking)
		api.PATCH("/:id", hb.Booking.UpdateBooking)
		api.POST("/:id/cancel", hb.Booking.CancelBooking)
		api.DELETE("/:id", hb.Booking.DeleteBooking)
	}
}

// RegisterUserRoutes registers the member profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.FirebaseAuthMiddleware())
		api.GET("/me", hb.User.GetMe)
		api.PATCH("/me", hb.User.UpdateMe)
		api.GET("", hb.User.ListUsers)
		api.GET("/:uid", hb.User.GetProfile)
	}
}

// RegisterSettingsRoutes registers the public reads for the announcement
// banner and app settings. Every signed-in page load fetches both.
func RegisterSettingsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/settings")
	{
		api.Use(middleware.FirebaseAuthMiddleware())
		api.GET("/announcement", hb.Admin.GetAnnouncement)
		api.GET("/app", hb.Admin.GetAppSettings)
	}
}

// RegisterAdminRoutes registers the admin-only write endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle, users userService.UserService) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.FirebaseAuthMiddleware())
		api.Use(middleware.AdminOnlyMiddleware(users))
		api.PUT("/announcement", hb.Admin.UpdateAnnouncement)
		api.PUT("/settings", hb.Admin.UpdateAppSettings)
		api.PUT("/users/:uid/role", hb.Admin.UpdateUserRole)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Courtside"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, users userService.UserService) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterSettingsRoutes(r, hb)
	RegisterAdminRoutes(r, hb, users)
}
