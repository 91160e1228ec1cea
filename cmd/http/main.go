package main

import (
	"careportal-service/internal/app/config"
	"careportal-service/internal/app/delivery/http/controllers"
	"careportal-service/internal/app/delivery/http/middlewares"
	"careportal-service/internal/app/delivery/http/routers"
	"careportal-service/internal/app/drivers/database"
	"careportal-service/internal/app/drivers/logger"
	"careportal-service/internal/app/services/backend"
	"careportal-service/internal/app/services/core/appointments"
	"careportal-service/internal/app/services/core/auth"
	"careportal-service/internal/app/services/core/dashboard"
	"careportal-service/internal/app/services/core/doctors"
	"careportal-service/internal/app/services/core/patients"
	"careportal-service/internal/app/services/core/predictions"
	"careportal-service/internal/app/services/shared/session"
	"careportal-service/internal/pkg/constvars"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	var redisClient *redis.Client
	if internalConfig.Session.Backend == constvars.SessionBackendRedis {
		redisClient = database.NewRedisClient(driverConfig, log)
	}

	sessionStore, err := session.NewSessionStore(internalConfig, redisClient)
	if err != nil {
		log.Fatal("Failed to build session store", zap.Error(err))
	}

	var sweeper *session.Sweeper
	if sweepable, ok := sessionStore.(session.Sweepable); ok {
		sweeper = session.NewSweeper(log, sweepable, internalConfig.Session.SweepCronSpec)
		sweeper.Start()
	}

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		SessionStore:   sessionStore,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started",
			zap.String("addr", internalConfig.App.Port),
			zap.String("backend", internalConfig.Backend.BaseUrl),
			zap.String("session_backend", internalConfig.Session.Backend),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if sweeper != nil {
		sweeper.Stop()
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Upstream backend
	backendClient := backend.NewBackendClient(bootstrap.InternalConfig.Backend.BaseUrl, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig, bootstrap.SessionStore)

	// Auth
	authUsecase := auth.NewAuthUsecase(backendClient, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Dashboard
	roleRouter := dashboard.NewRoleRouter(backendClient, bootstrap.Logger)
	dashboardController := controllers.NewDashboardController(bootstrap.Logger, roleRouter)

	// Appointments and predictions
	appointmentUsecase := appointments.NewAppointmentUsecase(backendClient, bootstrap.Logger)
	predictionUsecase := predictions.NewPredictionUsecase(backendClient, bootstrap.Logger)

	// Patient
	patientDashboardUsecase := patients.NewPatientDashboardUsecase(backendClient, appointmentUsecase, predictionUsecase, bootstrap.Logger)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientDashboardUsecase)

	// Doctor
	doctorDashboardUsecase := doctors.NewDoctorDashboardUsecase(backendClient, appointmentUsecase, bootstrap.Logger)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorDashboardUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		dashboardController,
		patientController,
		doctorController,
	)
}
