package main

import (
	"context"
	"lablink-service/internal/app/config"
	"lablink-service/internal/app/contracts"
	"lablink-service/internal/app/delivery/http/middlewares"
	"lablink-service/internal/app/delivery/http/routers"
	"lablink-service/internal/app/drivers/database"
	"lablink-service/internal/app/drivers/logger"
	drivermailer "lablink-service/internal/app/drivers/mailer"
	"lablink-service/internal/app/drivers/messaging"
	"lablink-service/internal/app/drivers/push"
	driverstorage "lablink-service/internal/app/drivers/storage"
	"lablink-service/internal/app/services/core/appointments"
	"lablink-service/internal/app/services/core/dashboard"
	"lablink-service/internal/app/services/core/directory"
	"lablink-service/internal/app/services/core/notifications"
	"lablink-service/internal/app/services/core/transactions"
	"lablink-service/internal/app/services/shared/fanout"
	sharedmailer "lablink-service/internal/app/services/shared/mailer"
	sharedpush "lablink-service/internal/app/services/shared/push"
	sharedredis "lablink-service/internal/app/services/shared/redis"
	sharedstorage "lablink-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, log)
	minioClient := driverstorage.NewMinio(driverConfig, log)
	snsClient := push.NewSNSClient(driverConfig, log)
	smtpClient := drivermailer.NewSMTPClient(driverConfig)
	chiRouter := chi.NewRouter()

	fanoutService := bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}, snsClient)

	mailerWorker, err := sharedmailer.NewWorker(rabbitMQ, smtpClient, internalConfig.Mailer.Queue, zapLogger)
	if err != nil {
		log.Fatalf("Failed to create mailer worker: %v", err)
	}
	if err := mailerWorker.Start(); err != nil {
		log.Fatalf("Failed to start mailer worker: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Let in-flight notification dispatches finish before the process ends.
	fanoutService.Wait()

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, snsClient sharedpush.SNSAPI) contracts.FanoutService {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	storage := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	pushService := sharedpush.NewSNSPushService(snsClient)
	emailService, err := sharedmailer.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.Mailer.Queue)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to create mailer service: %v", err)
	}

	// Directory
	directoryRepository := directory.NewDirectoryMongoRepository(bootstrap.MongoDB, dbName)

	// Notifications + fan-out
	notificationRepository := notifications.NewNotificationMongoRepository(bootstrap.MongoDB, dbName)
	fanoutService := fanout.NewFanoutService(notificationRepository, emailService, pushService, bootstrap.ZapLogger)
	notificationUsecase := notifications.NewNotificationUsecase(notificationRepository, directoryRepository)
	notificationController := notifications.NewNotificationController(bootstrap.ZapLogger, notificationUsecase)

	// Transactions
	transactionRepository := transactions.NewTransactionMongoRepository(bootstrap.MongoDB, dbName)
	transactionUsecase := transactions.NewTransactionUsecase(transactionRepository, directoryRepository, fanoutService, bootstrap.ZapLogger)
	transactionController := transactions.NewTransactionController(bootstrap.ZapLogger, transactionUsecase)

	// Appointments
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		transactionRepository,
		directoryRepository,
		fanoutService,
		storage,
		bootstrap.ZapLogger,
	)
	appointmentController := appointments.NewAppointmentController(bootstrap.ZapLogger, appointmentUsecase)

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(appointmentRepository, transactionRepository, redisRepository, bootstrap.ZapLogger)
	dashboardController := dashboard.NewDashboardController(bootstrap.ZapLogger, dashboardUsecase)

	// Middlewares + routes
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, directoryRepository, bootstrap.InternalConfig)
	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		appointmentController,
		transactionController,
		notificationController,
		dashboardController,
	)

	return fanoutService
}
