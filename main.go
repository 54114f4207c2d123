package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"savayas/config"
	"savayas/cron"
	"savayas/database"
	appointmentRepoPkg "savayas/database/repository/appointment"
	availabilityRepoPkg "savayas/database/repository/availability"
	paymentRepoPkg "savayas/database/repository/payment"
	professionalRepoPkg "savayas/database/repository/professional"
	userRepoPkg "savayas/database/repository/user"
	"savayas/handlers"
	"savayas/routes"
	"savayas/services/booking"
	"savayas/services/notification"
	"savayas/services/payment"
	"savayas/services/professional"
	"savayas/services/user"
	"savayas/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gopkg.in/gomail.v2"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	professionalRepo := professionalRepoPkg.NewMongoProfessionalRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()

	// services.
	dialer := gomail.NewDialer(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUser,
		config.AppConfig.SMTPPass,
	)
	notificationService := notification.NewEmailNotificationService(
		dialer,
		config.AppConfig.MailFrom,
		userRepo,
		professionalRepo,
	)

	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Notifier: notificationService,
	}

	professionalService := &professional.DefaultProfessionalService{
		Users:         userRepo,
		Professionals: professionalRepo,
		Availability:  availabilityRepo,
	}

	reminderScheduler := cron.NewReminderScheduler()
	defer reminderScheduler.Close()

	bookingService := &booking.DefaultBookingService{
		Professionals: professionalRepo,
		Availability:  availabilityRepo,
		Appointments:  appointmentRepo,
		Notifier:      notificationService,
		Reminders:     reminderScheduler,
	}

	paymentService := &payment.DefaultPaymentService{
		Repo:      paymentRepo,
		Bookings:  bookingService,
		Gateway:   payment.NewRazorpayGateway(config.AppConfig.RazorpayKeyID, config.AppConfig.RazorpayKeySecret),
		KeySecret: config.AppConfig.RazorpayKeySecret,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:            userRepo,
		UserHandler:         &handlers.UserHandler{UserService: userService},
		ProfessionalHandler: &handlers.ProfessionalHandler{ProfessionalService: professionalService},
		AppointmentHandler: &handlers.AppointmentHandler{
			BookingService:      bookingService,
			ProfessionalService: professionalService,
		},
		PaymentHandler: &handlers.PaymentHandler{PaymentService: paymentService},
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background worker: reminders and the completion sweep.
	cron.InitWorker(appointmentRepo, notificationService)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetAuthCacheClient(), utils.GetOTPCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
