package contracts

import (
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"context"
)

type PredictionUsecase interface {
	Run(ctx context.Context, session Session, overrides requests.PredictionOverrides) (*responses.PredictionView, error)
	List(ctx context.Context, session Session) ([]responses.Prediction, error)
}
