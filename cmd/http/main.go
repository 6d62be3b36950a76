package main

import (
	"context"
	"fmt"
	"necessitous-service/internal/app/config"
	"necessitous-service/internal/app/contracts"
	"necessitous-service/internal/app/delivery/http/controllers"
	"necessitous-service/internal/app/delivery/http/middlewares"
	"necessitous-service/internal/app/delivery/http/routers"
	"necessitous-service/internal/app/drivers/database"
	"necessitous-service/internal/app/drivers/logger"
	"necessitous-service/internal/app/drivers/messaging"
	"necessitous-service/internal/app/drivers/storage"
	"necessitous-service/internal/app/services/core/drafts"
	supplyRequests "necessitous-service/internal/app/services/core/supply_requests"
	"necessitous-service/internal/app/services/shared/locker"
	"necessitous-service/internal/app/services/shared/redis"
	archiveStorage "necessitous-service/internal/app/services/shared/storage"
	"necessitous-service/internal/app/services/shared/transport"
	"necessitous-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	accessLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          database.NewRedisClient(driverConfig),
		Logger:         log,
		AccessLogger:   accessLog,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	if internalConfig.Transport.Driver == constvars.TransportDriverRabbitMQ {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}
	if internalConfig.Archive.Enabled {
		bootstrap.Minio = storage.NewMinio(driverConfig, internalConfig.Archive.BucketName)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		logrus.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		logrus.Printf("Server listening on %s", server.Addr)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Failed to close app dependencies: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Transport
	var (
		requestSender contracts.RequestSender
		err           error
	)
	switch internalConfig.Transport.Driver {
	case constvars.TransportDriverRabbitMQ:
		requestSender, err = transport.NewRabbitMQSender(bootstrap.RabbitMQ, internalConfig.Transport.Queue, bootstrap.Logger)
	case constvars.TransportDriverHTTP:
		httpClient := &http.Client{
			Timeout: time.Duration(internalConfig.Backend.HTTPTimeoutInSeconds) * time.Second,
		}
		requestSender, err = transport.NewHTTPSender(httpClient, internalConfig.Backend.ApiUrl, internalConfig.Backend.ParseResponse, bootstrap.Logger)
	default:
		err = fmt.Errorf("unknown transport driver %q", internalConfig.Transport.Driver)
	}
	if err != nil {
		return err
	}

	// Archive
	var archive contracts.SubmissionArchive
	if bootstrap.Minio != nil {
		archive = archiveStorage.NewMinioArchive(bootstrap.Minio, internalConfig.Archive.BucketName, bootstrap.Logger)
	}

	// Supply requests
	supplyRequestUsecase := supplyRequests.NewSupplyRequestUsecase(requestSender, archive, internalConfig.Transport.Driver, bootstrap.Logger)
	supplyRequestController := controllers.NewSupplyRequestController(bootstrap.Logger, supplyRequestUsecase)

	// Drafts
	draftTTL := time.Duration(internalConfig.Draft.TTLInMinutes) * time.Minute
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	draftUsecase := drafts.NewDraftUsecase(redisRepository, lockerService, supplyRequestUsecase, draftTTL, bootstrap.Logger)
	draftController := controllers.NewDraftController(bootstrap.Logger, draftUsecase)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, bootstrap.AccessLogger, middlewares, supplyRequestController, draftController)
	return nil
}
