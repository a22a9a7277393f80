package scoring

import (
	"context"

	"localization-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	ScoreContent(ctx context.Context, input ScoreInput) (model.ComplexityMetrics, error)
	PredictQuality(ctx context.Context, input QualityInput) (model.QualityPrediction, error)
	AssessRisk(ctx context.Context, input RiskInput) (model.RiskAssessment, error)
	// MarketReadiness scores every market independently and keys the results by market.
	MarketReadiness(ctx context.Context, input ReadinessInput) (map[string]model.MarketReadiness, error)
}
