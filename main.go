package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"travelhub/config"
	"travelhub/cron"
	"travelhub/database"
	catalogRepo "travelhub/database/repository/catalog"
	notificationRepo "travelhub/database/repository/notification"
	reservationRepo "travelhub/database/repository/reservation"
	userRepoPkg "travelhub/database/repository/user"
	"travelhub/handlers"
	"travelhub/routes"
	"travelhub/services/notification"
	"travelhub/services/reservation"
	"travelhub/services/user"
	"travelhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database.InitDB()
	utils.InitCache()
	db := database.DB()

	// repositories.
	stores := reservationRepo.NewMongoRepositories(db, logger)
	catalog := catalogRepo.NewMongoCatalogRepo(db, logger)
	notifRepo := notificationRepo.NewMongoNotificationRepo(db, logger)
	userRepo := userRepoPkg.NewMongoUserRepo(db, logger)

	// notification dispatch.
	direct := notification.NewDirectNotifier(notifRepo, logger)
	var notifier notification.Notifier = direct
	var queueClient *asynq.Client
	var worker *asynq.Server
	if config.AppConfig.NotificationQueueEnabled {
		queueClient = asynq.NewClient(utils.QueueRedisOpt())
		notifier = notification.NewQueueNotifier(queueClient, direct, logger)
		worker = cron.InitNotificationWorker(ctx, direct, logger)
	}

	// services.
	userService, err := user.NewDefaultUserService(
		userRepo,
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.TokenTTLHours)*time.Hour,
		logger,
	)
	if err != nil {
		logger.Fatal("main: failed to initialize user service", zap.Error(err))
	}
	reservationService, err := reservation.NewDefaultReservationService(
		stores, catalog, userRepo, notifier, reservation.SettingsFromConfig(), logger,
	)
	if err != nil {
		logger.Fatal("main: failed to initialize reservation service", zap.Error(err))
	}
	notificationService, err := notification.NewDefaultNotificationService(notifRepo, logger)
	if err != nil {
		logger.Fatal("main: failed to initialize notification service", zap.Error(err))
	}

	handlerBundle := &handlers.HandlerBundle{
		Cache:         utils.GetCacheClient(),
		Auth:          handlers.NewAuthHandler(userService),
		Reservations:  handlers.NewReservationHandler(reservationService),
		Notifications: handlers.NewNotificationHandler(notificationService),
		Admin:         handlers.NewAdminHandler(userService, reservationService),
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	routes.RegisterRoutes(router, handlerBundle)

	go utils.StartHealthMonitor(ctx, []*redis.Client{utils.GetCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	<-ctx.Done()
	logger.Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if worker != nil {
		worker.Shutdown()
	}
	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			logger.Warn("main: failed to close queue client", zap.Error(err))
		}
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}
	if utils.CacheClient != nil {
		_ = utils.CacheClient.Close()
	}

	logger.Info("main: server stopped gracefully")
}
