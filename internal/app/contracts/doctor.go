package contracts

import (
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"context"
)

type DoctorDashboardUsecase interface {
	Mount(ctx context.Context, session Session) (*responses.DoctorDashboard, error)
	LoadNotes(ctx context.Context, session Session, search *requests.DoctorSearch) (*responses.DoctorDashboard, error)
	AddNote(ctx context.Context, session Session, request *requests.AddNote) (*responses.DoctorDashboard, error)
	LoadPatientProfile(ctx context.Context, session Session, search *requests.DoctorSearch) (*responses.DoctorDashboard, error)
	FilterAppointments(ctx context.Context, session Session, statusFilter string) (*responses.DoctorDashboard, error)
	DecideAppointment(ctx context.Context, session Session, appointmentID string, request *requests.AppointmentDecision) (*responses.DoctorDashboard, error)
}
