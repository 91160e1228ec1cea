package utils

import (
	"careportal-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeLoginRequest(request *requests.Login) {
	request.Email = strings.TrimSpace(request.Email)
}

func SanitizeSignupRequest(request *requests.Signup) {
	request.Email = strings.TrimSpace(request.Email)
	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)
	request.Role = strings.TrimSpace(request.Role)
}

func SanitizeSurveyForm(request *requests.SurveyForm) {
	request.Gender = strings.ToLower(strings.TrimSpace(request.Gender))
	request.Age = strings.TrimSpace(request.Age)
	request.Fever = strings.ToLower(strings.TrimSpace(request.Fever))
	request.Cough = strings.ToLower(strings.TrimSpace(request.Cough))
	request.Fatigue = strings.ToLower(strings.TrimSpace(request.Fatigue))
	request.DifficultyBreathing = strings.ToLower(strings.TrimSpace(request.DifficultyBreathing))
	request.BloodPressure = strings.ToLower(strings.TrimSpace(request.BloodPressure))
	request.CholesterolLevel = strings.ToLower(strings.TrimSpace(request.CholesterolLevel))
}

func SanitizeBookingForm(request *requests.BookingForm) {
	request.DoctorEmail = strings.ToLower(strings.TrimSpace(request.DoctorEmail))
	request.Date = strings.TrimSpace(request.Date)
	request.Slot = strings.TrimSpace(request.Slot)
	request.Reason = strings.TrimSpace(request.Reason)
}

func SanitizeDoctorSearch(request *requests.DoctorSearch) {
	request.PatientEmail = strings.TrimSpace(request.PatientEmail)
	request.PredictionID = strings.TrimSpace(request.PredictionID)
}

func SanitizeAddNoteRequest(request *requests.AddNote) {
	request.PatientEmail = strings.TrimSpace(request.PatientEmail)
	request.Note = strings.TrimSpace(request.Note)
	request.PredictionID = strings.TrimSpace(request.PredictionID)
}

// CleanPredictionOverrides drops blank entries so the backend falls back to
// the stored profile for them.
func CleanPredictionOverrides(overrides requests.PredictionOverrides) requests.PredictionOverrides {
	cleaned := requests.PredictionOverrides{}
	for key, value := range overrides {
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		cleaned[key] = value
	}
	return cleaned
}
