package utils

import (
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSurveyPayload(t *testing.T) {
	t.Run("Only set fields are sent", func(t *testing.T) {
		payload, err := BuildSurveyPayload(&requests.SurveyForm{
			Gender: "female",
			Age:    "34",
			Fever:  "no",
			Cough:  "yes",
		})
		require.NoError(t, err)

		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		assert.JSONEq(t, `{"gender":"female","age":34,"fever":false,"cough":true,"survey_completed":true}`, string(encoded))
	})

	t.Run("Empty form still completes the survey", func(t *testing.T) {
		payload, err := BuildSurveyPayload(&requests.SurveyForm{})
		require.NoError(t, err)

		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		assert.JSONEq(t, `{"survey_completed":true}`, string(encoded))
	})

	invalid := []struct {
		name string
		form *requests.SurveyForm
	}{
		{"Unknown gender", &requests.SurveyForm{Gender: "unknown"}},
		{"Non numeric age", &requests.SurveyForm{Age: "thirty"}},
		{"Bad yes/no", &requests.SurveyForm{Fever: "maybe"}},
		{"Bad level", &requests.SurveyForm{BloodPressure: "extreme"}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := BuildSurveyPayload(tt.form)
			assert.Nil(t, payload)

			var customErr *exceptions.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, exceptions.KindValidation, customErr.Kind)
		})
	}
}

func TestSurveyFormFromProfile(t *testing.T) {
	age := 51
	fever := true
	cough := false
	form := SurveyFormFromProfile(&responses.Profile{
		Gender:        "male",
		Age:           &age,
		Fever:         &fever,
		Cough:         &cough,
		BloodPressure: "high",
	})

	assert.Equal(t, &requests.SurveyForm{
		Gender:        "male",
		Age:           "51",
		Fever:         "yes",
		Cough:         "no",
		BloodPressure: "high",
	}, form)
	assert.Equal(t, &requests.SurveyForm{}, SurveyFormFromProfile(nil))
}
