package appointments

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	Backend contracts.BackendClient
	Log     *zap.Logger
}

func NewAppointmentUsecase(backend contracts.BackendClient, logger *zap.Logger) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		Backend: backend,
		Log:     logger,
	}
}

func (uc *appointmentUsecase) Book(ctx context.Context, session contracts.Session, form *requests.BookingForm) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request, err := buildCreateAppointment(form)
	if err != nil {
		uc.Log.Info("appointmentUsecase.Book rejected input",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	created := new(responses.BackendAppointmentCreated)
	err = uc.Backend.Do(ctx, session, constvars.MethodPost, constvars.BackendAppointments, request, created)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Book error calling backend.Do",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.WithFallbackMessage(err, constvars.ErrClientCreateAppointmentFailed)
	}

	uc.Log.Info("appointmentUsecase.Book succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, created.AppointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) ListMine(ctx context.Context, session contracts.Session) ([]responses.Appointment, error) {
	return uc.list(ctx, session, constvars.BackendAppointmentsMine)
}

// ListIncoming issues exactly one request. The "all" filter sends no status
// parameter.
func (uc *appointmentUsecase) ListIncoming(ctx context.Context, session contracts.Session, statusFilter string) ([]responses.Appointment, error) {
	if !models.IsValidStatusFilter(statusFilter) {
		return nil, exceptions.ErrValidationMessage(constvars.ErrClientInvalidStatusFilter)
	}

	path := constvars.BackendAppointmentsIncoming
	if statusFilter != constvars.AppointmentStatusAll {
		query := url.Values{}
		query.Set(constvars.QueryParamStatus, statusFilter)
		path = path + "?" + query.Encode()
	}
	return uc.list(ctx, session, path)
}

func (uc *appointmentUsecase) Decide(ctx context.Context, session contracts.Session, appointmentID, status string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Decide called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusFilterKey, status),
	)

	if !models.IsValidDecision(status) {
		return exceptions.ErrValidationMessage(constvars.ErrClientInvalidDecision)
	}

	path := fmt.Sprintf(constvars.BackendAppointmentStatus, url.PathEscape(appointmentID))
	body := &requests.AppointmentDecision{Status: status}
	err := uc.Backend.Do(ctx, session, constvars.MethodPatch, path, body, nil)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Decide error calling backend.Do",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("appointmentUsecase.Decide succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

// TimeSlots lists the hourly booking slots from 9 AM to 5 PM.
func (uc *appointmentUsecase) TimeSlots() []responses.TimeSlot {
	slots := make([]responses.TimeSlot, 0, constvars.BookingLastSlotHour-constvars.BookingFirstSlotHour+1)
	for hour := constvars.BookingFirstSlotHour; hour <= constvars.BookingLastSlotHour; hour++ {
		slots = append(slots, responses.TimeSlot{
			Display: fmt.Sprintf("%s - %s", hourLabel(hour), hourLabel(hour+1)),
			Hour:    hour,
			Value:   strconv.Itoa(hour),
		})
	}
	return slots
}

func (uc *appointmentUsecase) list(ctx context.Context, session contracts.Session, path string) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	list := new(responses.AppointmentList)
	err := uc.Backend.Do(ctx, session, constvars.MethodGet, path, nil, list)
	if err != nil {
		uc.Log.Error("appointmentUsecase.list error calling backend.Do",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return []responses.Appointment{}, err
	}

	items := list.Items
	if items == nil {
		items = []responses.Appointment{}
	}
	for i := range items {
		items[i].Actions = models.AppointmentActions(items[i].Status)
	}
	return items, nil
}

// buildCreateAppointment validates the booking form in the order the fields
// appear and composes requested_time as <date>T<HH>:00:00Z.
func buildCreateAppointment(form *requests.BookingForm) (*requests.CreateAppointment, error) {
	utils.SanitizeBookingForm(form)

	if form.DoctorEmail == "" {
		return nil, exceptions.ErrValidationMessage(constvars.ErrClientEnterDoctorEmail)
	}
	if form.Date == "" {
		return nil, exceptions.ErrValidationMessage(constvars.ErrClientSelectDate)
	}
	if _, err := time.Parse(constvars.BookingDateLayout, form.Date); err != nil {
		return nil, exceptions.ErrValidationMessage(constvars.ErrClientSelectDate)
	}
	if form.Slot == "" {
		return nil, exceptions.ErrValidationMessage(constvars.ErrClientSelectTimeSlot)
	}
	hour, err := strconv.Atoi(form.Slot)
	if err != nil || hour < constvars.BookingFirstSlotHour || hour > constvars.BookingLastSlotHour {
		return nil, exceptions.ErrValidationMessage(constvars.ErrClientSelectTimeSlot)
	}

	request := &requests.CreateAppointment{
		DoctorEmail:   form.DoctorEmail,
		RequestedTime: fmt.Sprintf("%sT%02d:00:00Z", form.Date, hour),
		Reason:        form.Reason,
	}
	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return request, nil
}

func hourLabel(hour int) string {
	switch {
	case hour == 12:
		return "12 PM"
	case hour > 12:
		return fmt.Sprintf("%d PM", hour-12)
	}
	return fmt.Sprintf("%d AM", hour)
}
