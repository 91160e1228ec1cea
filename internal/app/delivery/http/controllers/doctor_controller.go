package controllers

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log                    *zap.Logger
	DoctorDashboardUsecase contracts.DoctorDashboardUsecase
}

func NewDoctorController(logger *zap.Logger, doctorDashboardUsecase contracts.DoctorDashboardUsecase) *DoctorController {
	return &DoctorController{
		Log:                    logger,
		DoctorDashboardUsecase: doctorDashboardUsecase,
	}
}

type doctorOperation func(ctx context.Context, session contracts.Session) (*responses.DoctorDashboard, error)

func (ctrl *DoctorController) Mount(w http.ResponseWriter, r *http.Request) {
	ctrl.run(w, r, "mount", ctrl.DoctorDashboardUsecase.Mount)
}

func (ctrl *DoctorController) LoadNotes(w http.ResponseWriter, r *http.Request) {
	search := searchFromQuery(r)
	ctrl.run(w, r, "load_notes", func(ctx context.Context, session contracts.Session) (*responses.DoctorDashboard, error) {
		return ctrl.DoctorDashboardUsecase.LoadNotes(ctx, session, search)
	})
}

func (ctrl *DoctorController) AddNote(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AddNote)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}

	ctrl.run(w, r, "add_note", func(ctx context.Context, session contracts.Session) (*responses.DoctorDashboard, error) {
		return ctrl.DoctorDashboardUsecase.AddNote(ctx, session, request)
	})
}

func (ctrl *DoctorController) LoadPatientProfile(w http.ResponseWriter, r *http.Request) {
	search := searchFromQuery(r)
	ctrl.run(w, r, "load_patient_profile", func(ctx context.Context, session contracts.Session) (*responses.DoctorDashboard, error) {
		return ctrl.DoctorDashboardUsecase.LoadPatientProfile(ctx, session, search)
	})
}

func (ctrl *DoctorController) FilterAppointments(w http.ResponseWriter, r *http.Request) {
	statusFilter := r.URL.Query().Get(constvars.QueryParamStatus)
	ctrl.run(w, r, "filter_appointments", func(ctx context.Context, session contracts.Session) (*responses.DoctorDashboard, error) {
		return ctrl.DoctorDashboardUsecase.FilterAppointments(ctx, session, statusFilter)
	})
}

func (ctrl *DoctorController) DecideAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	request := new(requests.AppointmentDecision)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.run(w, r, "decide_appointment", func(ctx context.Context, session contracts.Session) (*responses.DoctorDashboard, error) {
		return ctrl.DoctorDashboardUsecase.DecideAppointment(ctx, session, appointmentID, request)
	})
}

func (ctrl *DoctorController) run(w http.ResponseWriter, r *http.Request, operation string, op doctorOperation) {
	start := time.Now()
	requestID := requestIDFrom(r)

	sess, err := requestSession(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}

	dashboard, err := op(r.Context(), sess)
	if err != nil {
		ctrl.Log.Error("Doctor dashboard operation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, operation),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}

	ctrl.Log.Debug("Doctor dashboard operation completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, operation),
		zap.String(constvars.LoggingStatusFilterKey, dashboard.StatusFilter),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	message := dashboard.Message
	if message == "" {
		message = constvars.DashboardLoadedMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, dashboard)
}

func searchFromQuery(r *http.Request) *requests.DoctorSearch {
	query := r.URL.Query()
	return &requests.DoctorSearch{
		PatientEmail: query.Get(constvars.QueryParamEmail),
		PredictionID: query.Get(constvars.QueryParamPredictionID),
	}
}
