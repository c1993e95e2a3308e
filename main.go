// File: courtside/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courtside/config"
	"courtside/database"
	bookingRepoPkg "courtside/database/repository/booking"
	settingsRepoPkg "courtside/database/repository/settings"
	userRepoPkg "courtside/database/repository/user"
	"courtside/handlers"
	"courtside/routes"
	adminService "courtside/services/admin"
	bookingService "courtside/services/booking"
	userService "courtside/services/user"
	"courtside/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()

	// services.
	userSvc := &userService.DefaultUserService{
		Repo: userRepo,
	}

	bookingSvc := &bookingService.DefaultBookingService{
		Repo:     bookingRepo,
		Settings: settingsRepo,
		SlotCfg:  config.AppConfig.Slots,
	}

	adminSvc := &adminService.DefaultAdminService{
		Repo:  settingsRepo,
		Cache: utils.GetCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingSvc, userSvc, logger),
		User:    handlers.NewUserHandler(userSvc, logger),
		Admin:   handlers.NewAdminHandler(adminSvc, userSvc, logger),
	}

	routes.RegisterRoutes(router, handlerBundle, userSvc)

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
