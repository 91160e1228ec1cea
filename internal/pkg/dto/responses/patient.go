package responses

type Profile struct {
	Email               string `json:"email,omitempty"`
	Age                 *int   `json:"age,omitempty"`
	Gender              string `json:"gender,omitempty"`
	BloodPressure       string `json:"blood_pressure,omitempty"`
	CholesterolLevel    string `json:"cholesterol_level,omitempty"`
	Fever               *bool  `json:"fever,omitempty"`
	Cough               *bool  `json:"cough,omitempty"`
	Fatigue             *bool  `json:"fatigue,omitempty"`
	DifficultyBreathing *bool  `json:"difficulty_breathing,omitempty"`
	SurveyCompleted     bool   `json:"survey_completed"`
}

type Note struct {
	ID           string `json:"_id"`
	Note         string `json:"note"`
	NoteHTML     string `json:"note_html,omitempty"`
	DoctorEmail  string `json:"doctor_email"`
	PatientEmail string `json:"patient_email,omitempty"`
	PredictionID string `json:"prediction_id,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

type NoteList struct {
	Notes []Note `json:"notes"`
}

type PredictionResult struct {
	Label       int     `json:"label"`
	Probability float64 `json:"probability"`
}

type Prediction struct {
	ID        string           `json:"_id,omitempty"`
	Result    PredictionResult `json:"result"`
	CreatedAt string           `json:"created_at,omitempty"`
}

type PredictionList struct {
	Predictions []Prediction `json:"predictions"`
}

type BackendPredict struct {
	Result       PredictionResult       `json:"result"`
	PredictionID string                 `json:"prediction_id"`
	InputUsed    map[string]interface{} `json:"input_used,omitempty"`
}

// PredictionView is the rendered outcome of the prediction panel.
type PredictionView struct {
	Label              string  `json:"label"`
	Positive           bool    `json:"positive"`
	Probability        float64 `json:"probability"`
	ProbabilityPercent int     `json:"probability_percent"`
	PredictionID       string  `json:"prediction_id"`
}

type TimeSlot struct {
	Display string `json:"display"`
	Hour    int    `json:"hour"`
	Value   string `json:"value"`
}
