package patients

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"context"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

type patientDashboardUsecase struct {
	Backend      contracts.BackendClient
	Appointments contracts.AppointmentUsecase
	Predictions  contracts.PredictionUsecase
	Log          *zap.Logger
}

func NewPatientDashboardUsecase(
	backend contracts.BackendClient,
	appointments contracts.AppointmentUsecase,
	predictions contracts.PredictionUsecase,
	logger *zap.Logger,
) contracts.PatientDashboardUsecase {
	return &patientDashboardUsecase{
		Backend:      backend,
		Appointments: appointments,
		Predictions:  predictions,
		Log:          logger,
	}
}

// Mount loads every section concurrently and decides the mode once the
// profile outcome is known. Notes, predictions and appointments fail soft.
func (uc *patientDashboardUsecase) Mount(ctx context.Context, session contracts.Session) (*responses.PatientDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientDashboardUsecase.Mount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID()),
	)

	welcome := new(responses.BackendMessage)
	profile := new(responses.Profile)
	notes := new(responses.NoteList)
	var (
		predictions     []responses.Prediction
		appointments    []responses.Appointment
		welcomeErr      error
		profileErr      error
		notesErr        error
		predictionsErr  error
		appointmentsErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		welcomeErr = uc.Backend.Do(ctx, session, constvars.MethodGet, constvars.BackendPatientWelcome, nil, welcome)
	})
	wg.Go(func() {
		profileErr = uc.Backend.Do(ctx, session, constvars.MethodGet, constvars.BackendPatientProfile, nil, profile)
	})
	wg.Go(func() {
		notesErr = uc.Backend.Do(ctx, session, constvars.MethodGet, constvars.BackendPatientNotes, nil, notes)
	})
	wg.Go(func() {
		predictions, predictionsErr = uc.Predictions.List(ctx, session)
	})
	wg.Go(func() {
		appointments, appointmentsErr = uc.Appointments.ListMine(ctx, session)
	})
	wg.Wait()

	for _, err := range []error{welcomeErr, profileErr, notesErr, predictionsErr, appointmentsErr} {
		if exceptions.IsUnauthorized(err) {
			uc.Log.Info("patientDashboardUsecase.Mount session rejected upstream",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return nil, err
		}
	}

	dashboard := &responses.PatientDashboard{
		Notes:        []responses.Note{},
		Predictions:  predictions,
		Appointments: appointments,
	}
	if welcomeErr != nil {
		dashboard.WelcomeError = exceptions.ClientMessage(welcomeErr)
	} else {
		dashboard.Welcome = welcome.Message
	}
	if notesErr != nil {
		dashboard.NotesError = exceptions.ClientMessage(notesErr)
	} else if notes.Notes != nil {
		dashboard.Notes = renderNotes(notes.Notes)
	}
	if predictionsErr != nil {
		dashboard.PredictionsError = exceptions.ClientMessage(predictionsErr)
	}
	if appointmentsErr != nil {
		dashboard.AppointmentsError = exceptions.ClientMessage(appointmentsErr)
	}

	event := profileEvent(profile, profileErr)
	switch event {
	case models.EventProfileFailed:
		dashboard.Error = exceptions.ClientMessage(exceptions.WithFallbackMessage(profileErr, constvars.ErrClientLoadProfileFailed))
	case models.EventProfileIncomplete, models.EventProfileComplete:
		dashboard.Profile = profile
	}

	mode, err := models.ModeLoading.Transition(event)
	if err != nil {
		return nil, err
	}
	if event == models.EventProfileComplete {
		persisted, ok := uc.persistedMode(ctx, session)
		if ok && persisted.UserInitiated() {
			mode = persisted
		}
	}

	err = uc.persistMode(ctx, session, mode)
	if err != nil {
		return nil, err
	}

	dashboard.Mode = string(mode)
	switch mode {
	case models.ModeSurvey:
		dashboard.SurveyForm = new(requests.SurveyForm)
	case models.ModeProfileEdit:
		dashboard.SurveyForm = utils.SurveyFormFromProfile(dashboard.Profile)
	}

	uc.Log.Info("patientDashboardUsecase.Mount succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingModeKey, dashboard.Mode),
		zap.String(constvars.LoggingEventKey, string(event)),
	)
	return dashboard, nil
}

// SubmitSurvey saves the survey and reloads the whole dashboard from the
// server rather than trusting the submitted values.
func (uc *patientDashboardUsecase) SubmitSurvey(ctx context.Context, session contracts.Session, form *requests.SurveyForm) (*responses.PatientDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientDashboardUsecase.SubmitSurvey called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeSurveyForm(form)
	payload, err := utils.BuildSurveyPayload(form)
	if err != nil {
		return nil, err
	}

	current, _ := uc.persistedMode(ctx, session)
	next, err := current.Transition(models.EventSurveySubmitted)
	if err != nil {
		uc.Log.Info("patientDashboardUsecase.SubmitSurvey rejected transition",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingModeKey, string(current)),
		)
		return nil, err
	}

	saved := new(responses.BackendMessage)
	err = uc.Backend.Do(ctx, session, constvars.MethodPut, constvars.BackendPatientProfile, payload, saved)
	if err != nil {
		uc.Log.Error("patientDashboardUsecase.SubmitSurvey error calling backend.Do",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.persistMode(ctx, session, next)
	if err != nil {
		return nil, err
	}

	dashboard, err := uc.Mount(ctx, session)
	if err != nil {
		return nil, err
	}
	dashboard.Message = constvars.SurveySavedMessage
	if saved.Message != "" {
		dashboard.Message = saved.Message
	}
	return dashboard, nil
}

func (uc *patientDashboardUsecase) BeginEdit(ctx context.Context, session contracts.Session) (*responses.PatientDashboard, error) {
	return uc.applyEvent(ctx, session, models.EventEditRequested)
}

func (uc *patientDashboardUsecase) CancelEdit(ctx context.Context, session contracts.Session) (*responses.PatientDashboard, error) {
	return uc.applyEvent(ctx, session, models.EventEditCancelled)
}

func (uc *patientDashboardUsecase) BeginBooking(ctx context.Context, session contracts.Session) (*responses.PatientDashboard, error) {
	return uc.applyEvent(ctx, session, models.EventBookingRequested)
}

func (uc *patientDashboardUsecase) CancelBooking(ctx context.Context, session contracts.Session) (*responses.PatientDashboard, error) {
	return uc.applyEvent(ctx, session, models.EventBookingCancelled)
}

// SubmitBooking is only valid while booking. On success the dashboard
// returns to the profile view with a fresh appointment list.
func (uc *patientDashboardUsecase) SubmitBooking(ctx context.Context, session contracts.Session, form *requests.BookingForm) (*responses.PatientDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientDashboardUsecase.SubmitBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	current, _ := uc.persistedMode(ctx, session)
	next, err := current.Transition(models.EventBookingSucceeded)
	if err != nil {
		return nil, err
	}

	err = uc.Appointments.Book(ctx, session, form)
	if err != nil {
		return nil, err
	}

	err = uc.persistMode(ctx, session, next)
	if err != nil {
		return nil, err
	}

	dashboard, err := uc.Mount(ctx, session)
	if err != nil {
		return nil, err
	}
	dashboard.Message = constvars.AppointmentRequestedMessage
	return dashboard, nil
}

// RunPrediction reports a failed prediction on the dashboard instead of
// failing the request, except when the session was rejected.
func (uc *patientDashboardUsecase) RunPrediction(ctx context.Context, session contracts.Session, overrides requests.PredictionOverrides) (*responses.PatientDashboard, error) {
	view, predictionErr := uc.Predictions.Run(ctx, session, overrides)
	if exceptions.IsUnauthorized(predictionErr) {
		return nil, predictionErr
	}

	dashboard, err := uc.Mount(ctx, session)
	if err != nil {
		return nil, err
	}
	if predictionErr != nil {
		dashboard.PredictionError = exceptions.ClientMessage(predictionErr)
		return dashboard, nil
	}
	dashboard.LastPrediction = view
	return dashboard, nil
}

func (uc *patientDashboardUsecase) BookingSlots() []responses.TimeSlot {
	return uc.Appointments.TimeSlots()
}

func (uc *patientDashboardUsecase) applyEvent(ctx context.Context, session contracts.Session, event models.DashboardEvent) (*responses.PatientDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	current, _ := uc.persistedMode(ctx, session)
	next, err := current.Transition(event)
	if err != nil {
		uc.Log.Info("patientDashboardUsecase.applyEvent rejected transition",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingModeKey, string(current)),
			zap.String(constvars.LoggingEventKey, string(event)),
		)
		return nil, err
	}

	err = uc.persistMode(ctx, session, next)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("patientDashboardUsecase.applyEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingModeKey, string(next)),
		zap.String(constvars.LoggingEventKey, string(event)),
	)
	return uc.Mount(ctx, session)
}

// persistedMode returns the stored mode, or loading when none is stored.
func (uc *patientDashboardUsecase) persistedMode(ctx context.Context, session contracts.Session) (models.DashboardMode, bool) {
	value, found, err := session.Get(ctx, constvars.SessionKeyPatientView)
	if err != nil || !found {
		return models.ModeLoading, false
	}
	mode, ok := models.ParseDashboardMode(value)
	if !ok {
		return models.ModeLoading, false
	}
	return mode, true
}

func (uc *patientDashboardUsecase) persistMode(ctx context.Context, session contracts.Session, mode models.DashboardMode) error {
	err := session.Set(ctx, constvars.SessionKeyPatientView, string(mode))
	if err != nil {
		uc.Log.Error("patientDashboardUsecase.persistMode error writing session",
			zap.String(constvars.LoggingSessionIDKey, session.ID()),
			zap.Error(err),
		)
	}
	return err
}

// profileEvent maps the profile fetch outcome to a dashboard event. Not
// found is the only outcome that forces the survey.
func profileEvent(profile *responses.Profile, err error) models.DashboardEvent {
	switch {
	case exceptions.IsNotFound(err):
		return models.EventProfileMissing
	case err != nil:
		return models.EventProfileFailed
	case !profile.SurveyCompleted:
		return models.EventProfileIncomplete
	}
	return models.EventProfileComplete
}

func renderNotes(notes []responses.Note) []responses.Note {
	for i := range notes {
		notes[i].NoteHTML = utils.RenderNoteHTML(notes[i].Note)
	}
	return notes
}
