package contracts

import (
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentUsecase interface {
	Book(ctx context.Context, session Session, form *requests.BookingForm) error
	ListMine(ctx context.Context, session Session) ([]responses.Appointment, error)
	ListIncoming(ctx context.Context, session Session, statusFilter string) ([]responses.Appointment, error)
	Decide(ctx context.Context, session Session, appointmentID, status string) error
	TimeSlots() []responses.TimeSlot
}
