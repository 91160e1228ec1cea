package routers

import (
	"careportal-service/internal/app/config"
	"careportal-service/internal/app/delivery/http/controllers"
	"careportal-service/internal/app/delivery/http/middlewares"
	"careportal-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController,
	patientController *controllers.PatientController,
	doctorController *controllers.DoctorController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Location", "X-CSRF-Token", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RateLimit())
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.AttachSession)
	router.Use(middlewares.CSRF())

	attachAuthRoutes(router, middlewares, authController)

	router.With(middlewares.RequireSession).Get(constvars.PathDashboard, dashboardController.Dashboard)

	router.Route(constvars.PathPatient, func(r chi.Router) {
		attachPatientRoutes(r, middlewares, patientController)
	})

	router.Route(constvars.PathDoctor, func(r chi.Router) {
		attachDoctorRoutes(r, middlewares, doctorController)
	})
}
