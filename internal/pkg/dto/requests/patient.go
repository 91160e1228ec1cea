package requests

// SurveyForm mirrors the survey radio/text inputs; every field is a raw string
// and an empty string means the user left it unset.
type SurveyForm struct {
	Gender              string `json:"gender" validate:"omitempty,oneof=male female other"`
	Age                 string `json:"age" validate:"omitempty,numeric"`
	Fever               string `json:"fever" validate:"omitempty,yes_no"`
	Cough               string `json:"cough" validate:"omitempty,yes_no"`
	Fatigue             string `json:"fatigue" validate:"omitempty,yes_no"`
	DifficultyBreathing string `json:"difficulty_breathing" validate:"omitempty,yes_no"`
	BloodPressure       string `json:"blood_pressure" validate:"omitempty,oneof=low normal high"`
	CholesterolLevel    string `json:"cholesterol_level" validate:"omitempty,oneof=low normal high"`
}

// SurveyPayload is the PUT /patients/profile body. Nil fields are omitted.
type SurveyPayload struct {
	Gender              *string `json:"gender,omitempty"`
	Age                 *int    `json:"age,omitempty"`
	Fever               *bool   `json:"fever,omitempty"`
	Cough               *bool   `json:"cough,omitempty"`
	Fatigue             *bool   `json:"fatigue,omitempty"`
	DifficultyBreathing *bool   `json:"difficulty_breathing,omitempty"`
	BloodPressure       *string `json:"blood_pressure,omitempty"`
	CholesterolLevel    *string `json:"cholesterol_level,omitempty"`
	SurveyCompleted     bool    `json:"survey_completed"`
}

type BookingForm struct {
	DoctorEmail string `json:"doctor_email"`
	Date        string `json:"date"`
	Slot        string `json:"slot"`
	Reason      string `json:"reason"`
}

type CreateAppointment struct {
	DoctorEmail   string `json:"doctor_email" validate:"required,email"`
	RequestedTime string `json:"requested_time" validate:"required"`
	Reason        string `json:"reason"`
}

// PredictionOverrides holds ad-hoc "what-if" values; blank entries fall back
// to the stored profile on the backend.
type PredictionOverrides map[string]interface{}
