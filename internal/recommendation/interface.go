package recommendation

import (
	"context"

	"localization-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Aggregate(ctx context.Context, input AggregateInput) (model.Recommendations, error)
}
