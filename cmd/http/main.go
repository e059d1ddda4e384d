package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"trekora-service/internal/app/config"
	"trekora-service/internal/app/delivery/http/middlewares"
	"trekora-service/internal/app/delivery/http/routers"
	"trekora-service/internal/app/drivers/database"
	"trekora-service/internal/app/drivers/logger"
	"trekora-service/internal/app/drivers/messaging"
	miniodriver "trekora-service/internal/app/drivers/storage"
	"trekora-service/internal/app/services/core/auth"
	"trekora-service/internal/app/services/core/availability"
	"trekora-service/internal/app/services/core/guides"
	"trekora-service/internal/app/services/core/trails"
	"trekora-service/internal/app/services/core/users"
	"trekora-service/internal/app/services/shared/events"
	"trekora-service/internal/app/services/shared/locker"
	"trekora-service/internal/app/services/shared/redis"
	"trekora-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := miniodriver.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("server starting", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("waiting for pending requests to finish")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("error closing resources", zap.Error(err))
	}

	log.Info("server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	storageService := storage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig)
	eventPublisher, err := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		bootstrap.Logger.Fatal("failed to set up event publisher", zap.Error(err))
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	// User and auth
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	userUsecase := users.NewUserUsecase(userMongoRepository, bootstrap.Logger)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)

	authUsecase := auth.NewAuthUsecase(userMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Availability
	availabilityMongoRepository := availability.NewAvailabilityMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Guide
	guideMongoRepository := guides.NewGuideMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	guideUsecase := guides.NewGuideUsecase(guideMongoRepository, availabilityMongoRepository, storageService, eventPublisher, bootstrap.Logger)
	guideController := guides.NewGuideController(bootstrap.Logger, guideUsecase)

	availabilityUsecase := availability.NewAvailabilityUsecase(
		availabilityMongoRepository,
		guideMongoRepository,
		lockService,
		eventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	availabilityController := availability.NewAvailabilityController(bootstrap.Logger, availabilityUsecase)

	// Trail
	trailMongoRepository := trails.NewTrailMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	trailUsecase := trails.NewTrailUsecase(trailMongoRepository, guideMongoRepository, bootstrap.Logger)
	trailController := trails.NewTrailController(bootstrap.Logger, trailUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		userController,
		guideController,
		trailController,
		availabilityController,
	)
}
