package contracts

import (
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"context"
)

type PatientDashboardUsecase interface {
	Mount(ctx context.Context, session Session) (*responses.PatientDashboard, error)
	SubmitSurvey(ctx context.Context, session Session, form *requests.SurveyForm) (*responses.PatientDashboard, error)
	BeginEdit(ctx context.Context, session Session) (*responses.PatientDashboard, error)
	CancelEdit(ctx context.Context, session Session) (*responses.PatientDashboard, error)
	BeginBooking(ctx context.Context, session Session) (*responses.PatientDashboard, error)
	CancelBooking(ctx context.Context, session Session) (*responses.PatientDashboard, error)
	SubmitBooking(ctx context.Context, session Session, form *requests.BookingForm) (*responses.PatientDashboard, error)
	RunPrediction(ctx context.Context, session Session, overrides requests.PredictionOverrides) (*responses.PatientDashboard, error)
	BookingSlots() []responses.TimeSlot
}
