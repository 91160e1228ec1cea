package utils

import (
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"strconv"
)

// BuildSurveyPayload coerces the raw survey form into the profile payload.
// Only fields the user actually set are included; survey_completed is always true.
func BuildSurveyPayload(form *requests.SurveyForm) (*requests.SurveyPayload, error) {
	err := ValidateStruct(form)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	payload := &requests.SurveyPayload{SurveyCompleted: true}
	if form.Gender != "" {
		payload.Gender = stringPtr(form.Gender)
	}
	if form.Age != "" {
		age, err := strconv.Atoi(form.Age)
		if err != nil || age < 0 {
			return nil, exceptions.ErrValidationMessage("age must be a whole number")
		}
		payload.Age = &age
	}
	if form.BloodPressure != "" {
		payload.BloodPressure = stringPtr(form.BloodPressure)
	}
	if form.CholesterolLevel != "" {
		payload.CholesterolLevel = stringPtr(form.CholesterolLevel)
	}
	payload.Fever = yesNoToBool(form.Fever)
	payload.Cough = yesNoToBool(form.Cough)
	payload.Fatigue = yesNoToBool(form.Fatigue)
	payload.DifficultyBreathing = yesNoToBool(form.DifficultyBreathing)
	return payload, nil
}

// SurveyFormFromProfile pre-fills the survey form for edit mode.
func SurveyFormFromProfile(profile *responses.Profile) *requests.SurveyForm {
	form := new(requests.SurveyForm)
	if profile == nil {
		return form
	}
	form.Gender = profile.Gender
	if profile.Age != nil {
		form.Age = strconv.Itoa(*profile.Age)
	}
	form.BloodPressure = profile.BloodPressure
	form.CholesterolLevel = profile.CholesterolLevel
	form.Fever = boolToYesNo(profile.Fever)
	form.Cough = boolToYesNo(profile.Cough)
	form.Fatigue = boolToYesNo(profile.Fatigue)
	form.DifficultyBreathing = boolToYesNo(profile.DifficultyBreathing)
	return form
}

func yesNoToBool(value string) *bool {
	switch value {
	case "yes":
		b := true
		return &b
	case "no":
		b := false
		return &b
	}
	return nil
}

func boolToYesNo(value *bool) string {
	if value == nil {
		return ""
	}
	if *value {
		return "yes"
	}
	return "no"
}

func stringPtr(s string) *string {
	return &s
}
