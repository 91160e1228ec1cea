package predictions

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/utils"
	"context"
	"math"

	"go.uber.org/zap"
)

type predictionUsecase struct {
	Backend contracts.BackendClient
	Log     *zap.Logger
}

func NewPredictionUsecase(backend contracts.BackendClient, logger *zap.Logger) contracts.PredictionUsecase {
	return &predictionUsecase{
		Backend: backend,
		Log:     logger,
	}
}

// Run asks the model for a prediction. Blank overrides are dropped so the
// backend uses the stored profile for those fields.
func (uc *predictionUsecase) Run(ctx context.Context, session contracts.Session, overrides requests.PredictionOverrides) (*responses.PredictionView, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("predictionUsecase.Run called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result := new(responses.BackendPredict)
	err := uc.Backend.Do(ctx, session, constvars.MethodPost, constvars.BackendPredict, utils.CleanPredictionOverrides(overrides), result)
	if err != nil {
		uc.Log.Error("predictionUsecase.Run error calling backend.Do",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	view := BuildPredictionView(result.Result, result.PredictionID)
	uc.Log.Info("predictionUsecase.Run succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPredictionIDKey, view.PredictionID),
	)
	return view, nil
}

func (uc *predictionUsecase) List(ctx context.Context, session contracts.Session) ([]responses.Prediction, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	list := new(responses.PredictionList)
	err := uc.Backend.Do(ctx, session, constvars.MethodGet, constvars.BackendPatientPredictions, nil, list)
	if err != nil {
		uc.Log.Error("predictionUsecase.List error calling backend.Do",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return []responses.Prediction{}, err
	}
	if list.Predictions == nil {
		return []responses.Prediction{}, nil
	}
	return list.Predictions, nil
}

func BuildPredictionView(result responses.PredictionResult, predictionID string) *responses.PredictionView {
	view := &responses.PredictionView{
		Label:              constvars.ResponsePredictionNegative,
		Positive:           result.Label == 1,
		Probability:        result.Probability,
		ProbabilityPercent: int(math.Round(result.Probability * 100)),
		PredictionID:       predictionID,
	}
	if view.Positive {
		view.Label = constvars.ResponsePredictionPositive
	}
	return view
}
