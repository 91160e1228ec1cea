package routers

import (
	"careportal-service/internal/app/delivery/http/controllers"
	"careportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Use(middlewares.RequireSession)

	router.Get("/", patientController.Mount)
	router.Post("/survey", patientController.SubmitSurvey)
	router.Post("/edit", patientController.BeginEdit)
	router.Post("/edit/cancel", patientController.CancelEdit)
	router.Post("/booking", patientController.BeginBooking)
	router.Post("/booking/cancel", patientController.CancelBooking)
	router.Get("/booking/slots", patientController.BookingSlots)
	router.Post("/appointments", patientController.SubmitBooking)
	router.Post("/predictions", patientController.RunPrediction)
}
