package main

import (
	"context"
	"log"
	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/app/delivery/http/controllers"
	"medrecord-service/internal/app/delivery/http/middlewares"
	"medrecord-service/internal/app/delivery/http/routers"
	"medrecord-service/internal/app/drivers/database"
	"medrecord-service/internal/app/drivers/logger"
	"medrecord-service/internal/app/drivers/messaging"
	"medrecord-service/internal/app/drivers/storage"
	"medrecord-service/internal/app/services/core/appointments"
	"medrecord-service/internal/app/services/core/chat"
	"medrecord-service/internal/app/services/core/extraction"
	"medrecord-service/internal/app/services/core/patients"
	"medrecord-service/internal/app/services/core/questionnaires"
	"medrecord-service/internal/app/services/core/reports"
	eventsservice "medrecord-service/internal/app/services/shared/events"
	"medrecord-service/internal/app/services/shared/modelclient"
	"medrecord-service/internal/app/services/shared/sessionstore"
	storageservice "medrecord-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	bootstrap := bootstrapingTheApp(driverConfig, internalConfig)
	bootstrap.Logger = zapLogger

	mongoDatabase := bootstrap.MongoDB.Database(driverConfig.MongoDB.DbName)

	// Shared collaborators
	modelClient := modelclient.NewOpenAIModelClient(internalConfig.Model, zapLogger)
	objectStorage := storageservice.NewMinioObjectStorage(bootstrap.Minio, driverConfig.Minio.BucketName, zapLogger)

	var eventPublisher contracts.EventPublisher
	if internalConfig.Events.Enabled {
		eventPublisher = eventsservice.NewRecordEventPublisher(bootstrap.RabbitMQ, internalConfig.Events.Queue, zapLogger)
	}

	sessionTTL := time.Duration(internalConfig.Session.TTLInMinutes) * time.Minute
	sessionRepository := sessionstore.NewMemorySessionStore(internalConfig.Session.Capacity, sessionTTL)
	if internalConfig.Session.Backend == "redis" {
		sessionRepository = sessionstore.NewRedisSessionStore(bootstrap.Redis, sessionTTL)
	}

	// Repositories
	patientRepository := patients.NewPatientMongoRepository(mongoDatabase)
	reportRepository := reports.NewReportMongoRepository(mongoDatabase)
	appointmentRepository := appointments.NewAppointmentMongoRepository(mongoDatabase)

	// Usecases
	patientUsecase := patients.NewPatientUsecase(patientRepository, eventPublisher, zapLogger)
	reportUsecase := reports.NewReportUsecase(reportRepository, patientRepository, eventPublisher, zapLogger)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, eventPublisher, zapLogger)
	extractionUsecase := extraction.NewExtractionUsecase(modelClient, objectStorage, zapLogger)
	questionnaireUsecase := questionnaires.NewQuestionnaireUsecase(sessionRepository, modelClient, zapLogger)
	chatUsecase := chat.NewChatUsecase(modelClient, zapLogger)

	appMiddlewares := middlewares.NewMiddlewares(zapLogger, internalConfig)
	router := routers.SetupRouter(appMiddlewares, &routers.RouterDependencies{
		HealthController:        controllers.NewHealthController(),
		ExtractionController:    controllers.NewExtractionController(zapLogger, internalConfig, extractionUsecase),
		QuestionnaireController: controllers.NewQuestionnaireController(zapLogger, internalConfig, questionnaireUsecase),
		PatientController:       controllers.NewPatientController(zapLogger, internalConfig, patientUsecase),
		ReportController:        controllers.NewReportController(zapLogger, internalConfig, reportUsecase),
		AppointmentController:   controllers.NewAppointmentController(zapLogger, internalConfig, appointmentUsecase),
		ChatController:          controllers.NewChatController(zapLogger, internalConfig, chatUsecase),
	})
	bootstrap.Router = router

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: router,
	}

	go func() {
		logrus.Infof("Starting HTTP server on %s", internalConfig.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %s", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(internalConfig.App.ShutdownTimeoutInSeconds)*time.Second,
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("HTTP server shutdown failed: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Dependency shutdown failed: %v", err)
	}
	logrus.Info("Server exited cleanly")
}

func bootstrapingTheApp(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *config.Bootstrap {
	bootstrap := &config.Bootstrap{
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	bootstrap.Minio = storage.NewMinio(driverConfig)

	if internalConfig.Events.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}
	if internalConfig.Session.Backend == "redis" {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}

	return bootstrap
}
