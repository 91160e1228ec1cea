package controllers

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type PatientController struct {
	Log                     *zap.Logger
	PatientDashboardUsecase contracts.PatientDashboardUsecase
}

func NewPatientController(logger *zap.Logger, patientDashboardUsecase contracts.PatientDashboardUsecase) *PatientController {
	return &PatientController{
		Log:                     logger,
		PatientDashboardUsecase: patientDashboardUsecase,
	}
}

type patientOperation func(ctx context.Context, session contracts.Session) (*responses.PatientDashboard, error)

func (ctrl *PatientController) Mount(w http.ResponseWriter, r *http.Request) {
	ctrl.run(w, r, "mount", ctrl.PatientDashboardUsecase.Mount)
}

func (ctrl *PatientController) BeginEdit(w http.ResponseWriter, r *http.Request) {
	ctrl.run(w, r, "begin_edit", ctrl.PatientDashboardUsecase.BeginEdit)
}

func (ctrl *PatientController) CancelEdit(w http.ResponseWriter, r *http.Request) {
	ctrl.run(w, r, "cancel_edit", ctrl.PatientDashboardUsecase.CancelEdit)
}

func (ctrl *PatientController) BeginBooking(w http.ResponseWriter, r *http.Request) {
	ctrl.run(w, r, "begin_booking", ctrl.PatientDashboardUsecase.BeginBooking)
}

func (ctrl *PatientController) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctrl.run(w, r, "cancel_booking", ctrl.PatientDashboardUsecase.CancelBooking)
}

func (ctrl *PatientController) SubmitSurvey(w http.ResponseWriter, r *http.Request) {
	form := new(requests.SurveyForm)
	err := utils.DecodeJSONBody(r, form)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}

	ctrl.run(w, r, "submit_survey", func(ctx context.Context, session contracts.Session) (*responses.PatientDashboard, error) {
		return ctrl.PatientDashboardUsecase.SubmitSurvey(ctx, session, form)
	})
}

func (ctrl *PatientController) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	form := new(requests.BookingForm)
	err := utils.DecodeJSONBody(r, form)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}

	ctrl.run(w, r, "submit_booking", func(ctx context.Context, session contracts.Session) (*responses.PatientDashboard, error) {
		return ctrl.PatientDashboardUsecase.SubmitBooking(ctx, session, form)
	})
}

func (ctrl *PatientController) RunPrediction(w http.ResponseWriter, r *http.Request) {
	overrides := requests.PredictionOverrides{}
	err := utils.DecodeJSONBody(r, &overrides)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}

	ctrl.run(w, r, "run_prediction", func(ctx context.Context, session contracts.Session) (*responses.PatientDashboard, error) {
		return ctrl.PatientDashboardUsecase.RunPrediction(ctx, session, overrides)
	})
}

func (ctrl *PatientController) BookingSlots(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, "", ctrl.PatientDashboardUsecase.BookingSlots())
}

func (ctrl *PatientController) run(w http.ResponseWriter, r *http.Request, operation string, op patientOperation) {
	start := time.Now()
	requestID := requestIDFrom(r)

	sess, err := requestSession(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}

	dashboard, err := op(r.Context(), sess)
	if err != nil {
		ctrl.Log.Error("Patient dashboard operation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, operation),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}

	ctrl.Log.Debug("Patient dashboard operation completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, operation),
		zap.String(constvars.LoggingModeKey, dashboard.Mode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	message := dashboard.Message
	if message == "" {
		message = constvars.DashboardLoadedMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, dashboard)
}
