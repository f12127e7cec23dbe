package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	adminRepo "sahara/database/repository/admin"
	"sahara/handlers"
	"sahara/middleware"
)

// HandlerBundle groups everything route registration needs.
type HandlerBundle struct {
	AdminRepo  adminRepo.AdminRepository
	Booking    *handlers.BookingHandler
	Contact    *handlers.ContactHandler
	Auth       *handlers.AuthHandler
	Experience *handlers.ExperienceHandler
	Wizard     *handlers.WizardHandler
}

// RegisterBookingRoutes registers the public intake and admin booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBooking)

		// Protected routes (require an admin assertion)
		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware(hb.AdminRepo))
		admin.GET("", hb.Booking.ListBookings)
		admin.GET("/:id", hb.Booking.GetBooking)
		admin.PATCH("/:id/status", hb.Booking.UpdateStatus)
		admin.DELETE("/:id", hb.Booking.DeleteBooking)
	}
}

// RegisterContactRoutes registers the public contact form and admin endpoints.
func RegisterContactRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/contacts")
	{
		api.POST("", hb.Contact.CreateContact)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware(hb.AdminRepo))
		admin.GET("", hb.Contact.ListContacts)
		admin.DELETE("/:id", hb.Contact.DeleteContact)
	}
}

// RegisterAuthRoutes registers admin login and token verification.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.Login)
		api.GET("/verify", hb.Auth.Verify)
	}
}

// RegisterExperienceRoutes registers the public catalog endpoints.
func RegisterExperienceRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/experiences")
	{
		api.GET("", hb.Experience.ListExperiences)
		api.GET("/:id", hb.Experience.GetExperience)
	}
}

// RegisterWizardRoutes registers the multi-step booking flow endpoints.
func RegisterWizardRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/wizard")
	{
		api.POST("", hb.Wizard.StartSession)
		api.GET("/:sessionID", hb.Wizard.GetSession)
		api.PUT("/:sessionID", hb.Wizard.SubmitStep)
		api.POST("/:sessionID/confirm", hb.Wizard.Confirm)
		api.DELETE("/:sessionID", hb.Wizard.CancelSession)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Sahara Adventures API"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterExperienceRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterHealthRoute(r)
}
