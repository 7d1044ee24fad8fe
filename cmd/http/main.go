package main

import (
	"context"
	"mediportal-service/internal/app/config"
	"mediportal-service/internal/app/contracts"
	"mediportal-service/internal/app/delivery/http/middlewares"
	"mediportal-service/internal/app/delivery/http/routers"
	"mediportal-service/internal/app/drivers/database"
	"mediportal-service/internal/app/drivers/logger"
	"mediportal-service/internal/app/drivers/messaging"
	"mediportal-service/internal/app/services/core/articles"
	"mediportal-service/internal/app/services/core/doctors"
	"mediportal-service/internal/app/services/core/leads"
	"mediportal-service/internal/app/services/core/meta"
	"mediportal-service/internal/app/services/core/seo"
	"mediportal-service/internal/app/services/shared/leadqueue"
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

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: " + err.Error())
		}
	}()
	log.Info("Server listening on " + internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that were already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: " + err.Error())
	}

	if err := mongoDB.Disconnect(shutdownCtx); err != nil {
		log.Warn("Failed to disconnect mongo client: " + err.Error())
	}
	if rabbitMQ != nil {
		if err := rabbitMQ.Close(); err != nil {
			log.Warn("Failed to close rabbitMQ connection: " + err.Error())
		}
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Lead queue
	var leadNotifier contracts.LeadNotifier = leadqueue.NewNoopNotifier()
	if bootstrap.RabbitMQ != nil {
		queueService, err := leadqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger)
		if err != nil {
			bootstrap.Logger.Fatal("Failed to initialize lead queue service: " + err.Error())
		}
		leadNotifier = queueService
	}

	// Meta
	diagnosticsRepository := meta.NewDiagnosticsMongoRepository(bootstrap.MongoDB, dbName)
	metaUsecase := meta.NewMetaUsecase(diagnosticsRepository, bootstrap.DriverConfig, bootstrap.Logger)
	metaController := meta.NewMetaController(bootstrap.Logger, metaUsecase)

	// Article
	articleRepository := articles.NewArticleMongoRepository(bootstrap.MongoDB, dbName)
	articleUsecase := articles.NewArticleUsecase(articleRepository, bootstrap.Logger)
	articleController := articles.NewArticleController(bootstrap.Logger, articleUsecase)

	// Doctor
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, bootstrap.Logger)
	doctorController := doctors.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Lead
	leadRepository := leads.NewLeadMongoRepository(bootstrap.MongoDB, dbName)
	leadUsecase := leads.NewLeadUsecase(leadRepository, leadNotifier, bootstrap.Logger)
	leadController := leads.NewLeadController(bootstrap.Logger, leadUsecase)

	// SEO
	seoUsecase := seo.NewSeoUsecase(articleRepository, bootstrap.InternalConfig, bootstrap.Logger)
	seoController := seo.NewSeoController(bootstrap.Logger, seoUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		metaController,
		articleController,
		doctorController,
		leadController,
		seoController,
	)
}
