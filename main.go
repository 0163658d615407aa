package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dbswash/config"
	"dbswash/cron"
	"dbswash/database"
	catalogRepo "dbswash/database/repository/catalog"
	"dbswash/handlers"
	"dbswash/middleware"
	"dbswash/routes"
	"dbswash/services/booking"
	"dbswash/services/catalog"
	"dbswash/services/notification"
	"dbswash/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitCatalogCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// Repositories.
	catRepo := catalogRepo.NewMongoCatalogRepo()

	// Services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:   catRepo,
		Logger: logger,
	}

	sessionStore := booking.NewRedisSessionStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)
	paymentProcessor := booking.NewSimulatedPaymentProcessor(
		logger,
		time.Duration(config.AppConfig.PaymentDelayMs)*time.Millisecond,
		config.AppConfig.PaymentFailRate,
	)
	receiptDispatcher := notification.NewAsynqReceiptDispatcher(logger)

	bookingService := &booking.DefaultSessionService{
		Catalog:       catalogService,
		Store:         sessionStore,
		Payments:      paymentProcessor,
		Receipts:      receiptDispatcher,
		Logger:        logger,
		Currency:      config.AppConfig.Currency,
		ReceiptPrefix: config.AppConfig.ReceiptPrefix,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	adminHandler := handlers.NewAdminHandler(catalogService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		GetPackages:  catalogHandler.GetPackages,
		GetExtras:    catalogHandler.GetExtras,
		GetLocations: catalogHandler.GetLocations,

		// Booking endpoints.
		CreateSession:  bookingHandler.CreateSession,
		GetSession:     bookingHandler.GetSession,
		SetSchedule:    bookingHandler.SetSchedule,
		TogglePackage:  bookingHandler.TogglePackage,
		ToggleExtra:    bookingHandler.ToggleExtra,
		SetContact:     bookingHandler.SetContact,
		AdvanceSession: bookingHandler.Advance,
		BackSession:    bookingHandler.Back,
		SubmitSession:  bookingHandler.Submit,
		CancelSession:  bookingHandler.CancelSession,

		// Admin endpoints.
		AdminHandler: adminHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background receipt-delivery worker.
	cron.InitReceiptWorker()

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetCatalogCacheClient()},
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
