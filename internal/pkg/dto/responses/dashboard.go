package responses

import "careportal-service/internal/pkg/dto/requests"

type PatientDashboard struct {
	Mode              string               `json:"mode"`
	Welcome           string               `json:"welcome"`
	WelcomeError      string               `json:"welcome_error,omitempty"`
	Profile           *Profile             `json:"profile"`
	SurveyForm        *requests.SurveyForm `json:"survey_form,omitempty"`
	Error             string               `json:"error,omitempty"`
	Notes             []Note               `json:"notes"`
	NotesError        string               `json:"notes_error,omitempty"`
	Predictions       []Prediction         `json:"predictions"`
	PredictionsError  string               `json:"predictions_error,omitempty"`
	Appointments      []Appointment        `json:"appointments"`
	AppointmentsError string               `json:"appointments_error,omitempty"`
	LastPrediction    *PredictionView      `json:"last_prediction,omitempty"`
	PredictionError   string               `json:"prediction_error,omitempty"`
	Message           string               `json:"message,omitempty"`
}

type DoctorPatientProfile struct {
	User    map[string]interface{} `json:"user"`
	Profile map[string]interface{} `json:"profile"`
}

type DoctorDashboard struct {
	Greeting       string                `json:"greeting"`
	PatientEmail   string                `json:"patient_email"`
	PredictionID   string                `json:"prediction_id"`
	StatusFilter   string                `json:"status_filter"`
	Notes          []Note                `json:"notes"`
	PatientProfile *DoctorPatientProfile `json:"patient_profile"`
	Appointments   []Appointment         `json:"appointments"`
	Error          string                `json:"error,omitempty"`
	Message        string                `json:"message,omitempty"`
}
