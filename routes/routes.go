package routes

import (
	"net/http"
	"time"

	"savayas/handlers"
	"savayas/middleware"
	"savayas/models"
	"savayas/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and token endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.UserHandler.RegisterUserHandler)
		api.POST("/register/professional", hb.ProfessionalHandler.RegisterProfessionalHandler)
		api.POST("/login", hb.UserHandler.LoginHandler)
		api.POST("/refresh", hb.UserHandler.RefreshTokenHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("/logout", hb.UserHandler.LogoutHandler)
		protected.POST("/verify/request", hb.UserHandler.RequestVerificationHandler)
		protected.POST("/verify", hb.UserHandler.VerifyEmailHandler)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.UserHandler.GetProfileHandler)
		api.PUT("/me", hb.UserHandler.UpdateProfileHandler)
		api.DELETE("/me", hb.UserHandler.DeleteAccountHandler)
	}
}

// RegisterProfessionalRoutes registers the public directory plus the
// professional's own profile management.
func RegisterProfessionalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/professionals")
	{
		api.GET("", hb.ProfessionalHandler.ListProfessionalsHandler)
		api.GET("/:id", hb.ProfessionalHandler.GetProfessionalHandler)
		api.GET("/:id/slots", hb.AppointmentHandler.ListSlotsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.Use(middleware.RequireRole(models.RoleProfessional))
		protected.GET("/me/profile", hb.ProfessionalHandler.GetOwnProfileHandler)
		protected.PATCH("/me/profile", hb.ProfessionalHandler.UpdateProfessionalHandler)
		protected.DELETE("/me/profile", hb.ProfessionalHandler.DeleteProfessionalHandler)
	}
}

// RegisterAvailabilityRoutes registers weekly rule management.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/:professionalId", hb.ProfessionalHandler.ListAvailabilityHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.Use(middleware.RequireRole(models.RoleProfessional))
		protected.PUT("", hb.ProfessionalHandler.UpsertAvailabilityHandler)
		protected.DELETE("/:ruleId", hb.ProfessionalHandler.DeleteAvailabilityHandler)
	}
}

// RegisterAppointmentRoutes registers the booking lifecycle.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.AppointmentHandler.CreateAppointmentHandler)
		api.GET("", hb.AppointmentHandler.ListMyAppointmentsHandler)
		api.GET("/:id", hb.AppointmentHandler.GetAppointmentHandler)
		api.PATCH("/:id/status", hb.AppointmentHandler.UpdateStatusHandler)

		professional := api.Group("")
		professional.Use(middleware.RequireRole(models.RoleProfessional, models.RoleAdmin))
		professional.GET("/professional/:professionalId", hb.AppointmentHandler.ListProfessionalAppointmentsHandler)
	}
}

// RegisterPaymentRoutes registers gateway order and verification endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/order", hb.PaymentHandler.CreateOrderHandler)
		api.POST("/verify", hb.PaymentHandler.VerifyPaymentHandler)
		api.GET("", hb.PaymentHandler.ListMyPaymentsHandler)
		api.GET("/appointment/:appointmentId", hb.PaymentHandler.GetPaymentHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRole(models.RoleAdmin))
		api.GET("/users", hb.UserHandler.GetAllUsersHandler)
		api.GET("/professionals", hb.ProfessionalHandler.GetAllProfessionalsHandler)
		api.PUT("/professionals/:id/approve", hb.ProfessionalHandler.ApproveProfessionalHandler)
		api.GET("/appointments", hb.AppointmentHandler.GetAllAppointmentsHandler)
		api.GET("/payments", hb.PaymentHandler.GetAllPaymentsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())
	r.Use(utils.ErrorHandler())

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterProfessionalRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
