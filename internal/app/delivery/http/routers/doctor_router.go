package routers

import (
	"careportal-service/internal/app/delivery/http/controllers"
	"careportal-service/internal/app/delivery/http/middlewares"
	"careportal-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Use(middlewares.RequireSession)

	router.Get("/", doctorController.Mount)
	router.Get("/notes", doctorController.LoadNotes)
	router.Post("/notes", doctorController.AddNote)
	router.Get("/patient-profile", doctorController.LoadPatientProfile)
	router.Get("/appointments", doctorController.FilterAppointments)
	router.Post(fmt.Sprintf("/appointments/{%s}/status", constvars.URLParamAppointmentID), doctorController.DecideAppointment)
}
