package doctors

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

	"github.com/goccy/go-json"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

type doctorDashboardUsecase struct {
	Backend      contracts.BackendClient
	Appointments contracts.AppointmentUsecase
	Log          *zap.Logger
}

func NewDoctorDashboardUsecase(backend contracts.BackendClient, appointments contracts.AppointmentUsecase, logger *zap.Logger) contracts.DoctorDashboardUsecase {
	return &doctorDashboardUsecase{
		Backend:      backend,
		Appointments: appointments,
		Log:          logger,
	}
}

// Mount loads the greeting and the pending appointments. The search fields
// survive; the status filter starts over at pending.
func (uc *doctorDashboardUsecase) Mount(ctx context.Context, session contracts.Session) (*responses.DoctorDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorDashboardUsecase.Mount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID()),
	)

	view := uc.loadView(ctx, session)
	view.StatusFilter = constvars.AppointmentStatusPending

	greeting := new(responses.BackendMessage)
	var (
		appointments    []responses.Appointment
		greetingErr     error
		appointmentsErr error
	)
	var wg conc.WaitGroup
	wg.Go(func() {
		greetingErr = uc.Backend.Do(ctx, session, constvars.MethodGet, constvars.BackendDoctorWelcome, nil, greeting)
	})
	wg.Go(func() {
		appointments, appointmentsErr = uc.Appointments.ListIncoming(ctx, session, view.StatusFilter)
	})
	wg.Wait()

	if exceptions.IsUnauthorized(greetingErr) {
		return nil, greetingErr
	}
	if exceptions.IsUnauthorized(appointmentsErr) {
		return nil, appointmentsErr
	}

	err := uc.saveView(ctx, session, view)
	if err != nil {
		return nil, err
	}

	dashboard := newDashboard(view)
	dashboard.Appointments = appointments
	switch {
	case greetingErr != nil:
		dashboard.Error = exceptions.ClientMessage(greetingErr)
	case appointmentsErr != nil:
		dashboard.Error = exceptions.ClientMessage(appointmentsErr)
	}
	if greetingErr == nil {
		dashboard.Greeting = greeting.Message
	}

	uc.Log.Info("doctorDashboardUsecase.Mount succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(dashboard.Appointments)),
	)
	return dashboard, nil
}

// LoadNotes fetches notes for a patient, or for one prediction when a
// prediction id is given. Without an email nothing is fetched.
func (uc *doctorDashboardUsecase) LoadNotes(ctx context.Context, session contracts.Session, search *requests.DoctorSearch) (*responses.DoctorDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	utils.SanitizeDoctorSearch(search)
	uc.Log.Info("doctorDashboardUsecase.LoadNotes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientEmailKey, search.PatientEmail),
		zap.String(constvars.LoggingPredictionIDKey, search.PredictionID),
	)

	view := uc.loadView(ctx, session)
	view.PatientEmail = search.PatientEmail
	view.PredictionID = search.PredictionID
	err := uc.saveView(ctx, session, view)
	if err != nil {
		return nil, err
	}

	dashboard := newDashboard(view)
	notes, err := uc.fetchNotes(ctx, session, view)
	if exceptions.IsUnauthorized(err) {
		return nil, err
	}
	if err != nil {
		dashboard.Error = exceptions.ClientMessage(err)
	}
	dashboard.Notes = notes
	return dashboard, nil
}

func (uc *doctorDashboardUsecase) AddNote(ctx context.Context, session contracts.Session, request *requests.AddNote) (*responses.DoctorDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	utils.SanitizeAddNoteRequest(request)
	uc.Log.Info("doctorDashboardUsecase.AddNote called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientEmailKey, request.PatientEmail),
	)

	if request.PatientEmail == "" {
		return nil, exceptions.ErrValidationMessage(constvars.ErrClientEnterPatientEmail)
	}
	if request.Note == "" {
		return nil, exceptions.ErrValidationMessage(constvars.ErrClientEnterNoteText)
	}

	note := &requests.BackendNote{
		PatientEmail:     request.PatientEmail,
		Note:             request.Note,
		VisibleToPatient: true,
		PredictionID:     request.PredictionID,
	}
	err := uc.Backend.Do(ctx, session, constvars.MethodPost, constvars.BackendDoctorNotes, note, nil)
	if err != nil {
		uc.Log.Error("doctorDashboardUsecase.AddNote error calling backend.Do",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	dashboard, err := uc.LoadNotes(ctx, session, &requests.DoctorSearch{
		PatientEmail: request.PatientEmail,
		PredictionID: request.PredictionID,
	})
	if err != nil {
		return nil, err
	}
	dashboard.Message = constvars.NoteSavedMessage
	return dashboard, nil
}

func (uc *doctorDashboardUsecase) LoadPatientProfile(ctx context.Context, session contracts.Session, search *requests.DoctorSearch) (*responses.DoctorDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	utils.SanitizeDoctorSearch(search)
	uc.Log.Info("doctorDashboardUsecase.LoadPatientProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientEmailKey, search.PatientEmail),
	)

	view := uc.loadView(ctx, session)
	view.PatientEmail = search.PatientEmail
	err := uc.saveView(ctx, session, view)
	if err != nil {
		return nil, err
	}

	dashboard := newDashboard(view)
	if view.PatientEmail == "" {
		return dashboard, nil
	}

	query := url.Values{}
	query.Set(constvars.QueryParamEmail, view.PatientEmail)
	profile := new(responses.DoctorPatientProfile)
	err = uc.Backend.Do(ctx, session, constvars.MethodGet, constvars.BackendDoctorPatientProfile+"?"+query.Encode(), nil, profile)
	if exceptions.IsUnauthorized(err) {
		return nil, err
	}
	if err != nil {
		uc.Log.Error("doctorDashboardUsecase.LoadPatientProfile error calling backend.Do",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		dashboard.Error = exceptions.ClientMessage(err)
		return dashboard, nil
	}
	dashboard.PatientProfile = profile
	return dashboard, nil
}

// FilterAppointments replaces the list with exactly one filtered query and
// remembers the filter.
func (uc *doctorDashboardUsecase) FilterAppointments(ctx context.Context, session contracts.Session, statusFilter string) (*responses.DoctorDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorDashboardUsecase.FilterAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusFilterKey, statusFilter),
	)

	if !models.IsValidStatusFilter(statusFilter) {
		return nil, exceptions.ErrValidationMessage(constvars.ErrClientInvalidStatusFilter)
	}

	view := uc.loadView(ctx, session)
	view.StatusFilter = statusFilter
	err := uc.saveView(ctx, session, view)
	if err != nil {
		return nil, err
	}
	return uc.appointmentsDashboard(ctx, session, view)
}

// DecideAppointment accepts or rejects an appointment and then always shows
// the pending list, whatever filter was active before.
func (uc *doctorDashboardUsecase) DecideAppointment(ctx context.Context, session contracts.Session, appointmentID string, request *requests.AppointmentDecision) (*responses.DoctorDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorDashboardUsecase.DecideAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	err := uc.Appointments.Decide(ctx, session, appointmentID, request.Status)
	if err != nil {
		return nil, err
	}

	view := uc.loadView(ctx, session)
	view.StatusFilter = constvars.AppointmentStatusPending
	err = uc.saveView(ctx, session, view)
	if err != nil {
		return nil, err
	}

	dashboard, err := uc.appointmentsDashboard(ctx, session, view)
	if err != nil {
		return nil, err
	}
	dashboard.Message = fmt.Sprintf(constvars.AppointmentDecidedMessage, request.Status)
	return dashboard, nil
}

func (uc *doctorDashboardUsecase) appointmentsDashboard(ctx context.Context, session contracts.Session, view *models.DoctorView) (*responses.DoctorDashboard, error) {
	dashboard := newDashboard(view)
	appointments, err := uc.Appointments.ListIncoming(ctx, session, view.StatusFilter)
	if exceptions.IsUnauthorized(err) {
		return nil, err
	}
	if err != nil {
		dashboard.Error = exceptions.ClientMessage(err)
	}
	dashboard.Appointments = appointments
	return dashboard, nil
}

func (uc *doctorDashboardUsecase) fetchNotes(ctx context.Context, session contracts.Session, view *models.DoctorView) ([]responses.Note, error) {
	if view.PatientEmail == "" {
		return []responses.Note{}, nil
	}

	path := fmt.Sprintf(constvars.BackendDoctorPatientNotes, url.PathEscape(view.PatientEmail))
	if view.PredictionID != "" {
		path = fmt.Sprintf(constvars.BackendDoctorPredictionNotes, url.PathEscape(view.PredictionID))
	}

	list := new(responses.NoteList)
	err := uc.Backend.Do(ctx, session, constvars.MethodGet, path, nil, list)
	if err != nil {
		return []responses.Note{}, err
	}
	notes := list.Notes
	if notes == nil {
		notes = []responses.Note{}
	}
	for i := range notes {
		notes[i].NoteHTML = utils.RenderNoteHTML(notes[i].Note)
	}
	return notes, nil
}

// loadView reads the persisted search state. Missing or corrupt state
// starts over with the defaults.
func (uc *doctorDashboardUsecase) loadView(ctx context.Context, session contracts.Session) *models.DoctorView {
	value, found, err := session.Get(ctx, constvars.SessionKeyDoctorView)
	if err != nil || !found {
		return models.NewDoctorView()
	}
	view := models.NewDoctorView()
	if err := json.Unmarshal([]byte(value), view); err != nil {
		uc.Log.Info("doctorDashboardUsecase.loadView discarding unreadable view",
			zap.String(constvars.LoggingSessionIDKey, session.ID()),
			zap.Error(err),
		)
		return models.NewDoctorView()
	}
	if !models.IsValidStatusFilter(view.StatusFilter) {
		view.StatusFilter = constvars.AppointmentStatusPending
	}
	return view
}

func (uc *doctorDashboardUsecase) saveView(ctx context.Context, session contracts.Session, view *models.DoctorView) error {
	value, err := json.Marshal(view)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	err = session.Set(ctx, constvars.SessionKeyDoctorView, string(value))
	if err != nil {
		uc.Log.Error("doctorDashboardUsecase.saveView error writing session",
			zap.String(constvars.LoggingSessionIDKey, session.ID()),
			zap.Error(err),
		)
	}
	return err
}

func newDashboard(view *models.DoctorView) *responses.DoctorDashboard {
	return &responses.DoctorDashboard{
		PatientEmail: view.PatientEmail,
		PredictionID: view.PredictionID,
		StatusFilter: view.StatusFilter,
		Notes:        []responses.Note{},
		Appointments: []responses.Appointment{},
	}
}
