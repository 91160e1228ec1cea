package models

import "careportal-service/internal/pkg/exceptions"

// DashboardMode is the single source of truth for what the patient dashboard
// shows. Exactly one mode is active at a time.
type DashboardMode string

const (
	ModeLoading     DashboardMode = "loading"
	ModeSurvey      DashboardMode = "survey"
	ModeProfileView DashboardMode = "profile_view"
	ModeProfileEdit DashboardMode = "profile_edit"
	ModeBooking     DashboardMode = "booking"
)

type DashboardEvent string

const (
	EventProfileMissing    DashboardEvent = "profile_missing"
	EventProfileIncomplete DashboardEvent = "profile_incomplete"
	EventProfileComplete   DashboardEvent = "profile_complete"
	EventProfileFailed     DashboardEvent = "profile_failed"
	EventSurveySubmitted   DashboardEvent = "survey_submitted"
	EventEditRequested     DashboardEvent = "edit_requested"
	EventEditCancelled     DashboardEvent = "edit_cancelled"
	EventBookingRequested  DashboardEvent = "booking_requested"
	EventBookingCancelled  DashboardEvent = "booking_cancelled"
	EventBookingSucceeded  DashboardEvent = "booking_succeeded"
)

var dashboardTransitions = map[DashboardMode]map[DashboardEvent]DashboardMode{
	ModeLoading: {
		EventProfileMissing:    ModeSurvey,
		EventProfileIncomplete: ModeSurvey,
		EventProfileComplete:   ModeProfileView,
		EventProfileFailed:     ModeProfileView,
	},
	ModeSurvey: {
		EventSurveySubmitted: ModeProfileView,
	},
	ModeProfileView: {
		EventEditRequested:    ModeProfileEdit,
		EventBookingRequested: ModeBooking,
	},
	ModeProfileEdit: {
		EventEditCancelled:    ModeProfileView,
		EventSurveySubmitted:  ModeProfileView,
		EventBookingRequested: ModeBooking,
	},
	ModeBooking: {
		EventBookingCancelled: ModeProfileView,
		EventBookingSucceeded: ModeProfileView,
		EventEditRequested:    ModeProfileEdit,
	},
}

// Transition returns the mode reached by applying event, or a conflict error
// when the event is not valid in the current mode.
func (m DashboardMode) Transition(event DashboardEvent) (DashboardMode, error) {
	next, ok := dashboardTransitions[m][event]
	if !ok {
		return m, exceptions.ErrInvalidTransition(string(event), string(m))
	}
	return next, nil
}

// ParseDashboardMode reads a persisted mode. Unknown values report false.
func ParseDashboardMode(value string) (DashboardMode, bool) {
	switch mode := DashboardMode(value); mode {
	case ModeLoading, ModeSurvey, ModeProfileView, ModeProfileEdit, ModeBooking:
		return mode, true
	}
	return "", false
}

// UserInitiated reports whether the mode was entered by an explicit user
// action and should survive a reload of the dashboard data.
func (m DashboardMode) UserInitiated() bool {
	return m == ModeProfileEdit || m == ModeBooking
}
