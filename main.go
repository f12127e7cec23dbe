package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"sahara/config"
	"sahara/database"
	adminRepoPkg "sahara/database/repository/admin"
	bookingRepoPkg "sahara/database/repository/booking"
	contactRepoPkg "sahara/database/repository/contact"
	experienceRepoPkg "sahara/database/repository/experience"
	"sahara/handlers"
	"sahara/middleware"
	"sahara/routes"
	"sahara/services/auth"
	"sahara/services/booking"
	"sahara/services/contact"
	"sahara/services/payment"
	"sahara/services/wizard"
	"sahara/utils"
)

func main() {
	seed := flag.Bool("seed", false, "seed the admin account and experience catalog, then continue")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	contactRepo := contactRepoPkg.NewMongoContactRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()
	experienceRepo := experienceRepoPkg.NewMongoExperienceRepo()

	if *seed {
		if err := database.SeedAdmin(adminRepo, config.AppConfig.AdminEmail, config.AppConfig.AdminPassword); err != nil {
			logger.Sugar().Fatalf("main: failed to seed admin: %v", err)
		}
		if err := database.SeedExperiences(experienceRepo); err != nil {
			logger.Sugar().Fatalf("main: failed to seed experiences: %v", err)
		}
		logger.Sugar().Info("main: seeding complete")
	}

	// services.
	bookingService := &booking.DefaultBookingService{Repo: bookingRepo}
	contactService := &contact.DefaultContactService{Repo: contactRepo}
	authService := &auth.DefaultAuthService{Repo: adminRepo}
	paymentProcessor := &payment.DefaultProcessor{Logger: logger}
	wizardService := &wizard.DefaultWizardService{
		Store:    wizard.NewRedisSessionStore(),
		Catalog:  experienceRepo,
		Payments: paymentProcessor,
		Bookings: bookingService,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		AdminRepo:  adminRepo,
		Booking:    handlers.NewBookingHandler(bookingService, logger),
		Contact:    handlers.NewContactHandler(contactService, logger),
		Auth:       handlers.NewAuthHandler(authService, logger),
		Experience: handlers.NewExperienceHandler(experienceRepo),
		Wizard:     handlers.NewWizardHandler(wizardService, logger),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
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
