package requests

type DoctorSearch struct {
	PatientEmail string `json:"patient_email"`
	PredictionID string `json:"prediction_id"`
}

type AddNote struct {
	PatientEmail string `json:"patient_email"`
	Note         string `json:"note"`
	PredictionID string `json:"prediction_id"`
}

type BackendNote struct {
	PatientEmail     string `json:"patient_email"`
	Note             string `json:"note"`
	VisibleToPatient bool   `json:"visible_to_patient"`
	PredictionID     string `json:"prediction_id,omitempty"`
}

type AppointmentDecision struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}
