package intelligence

import (
	"context"

	"localization-srv/internal/model"
)

// UseCase gathers brand, regulatory and cultural signals for a document.
// None of its operations fail: collaborator errors degrade to defaults and are logged.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Brand(ctx context.Context, brandID string, text string) model.BrandIntelligence
	Regulatory(ctx context.Context, query RegulatoryQuery) model.RegulatoryIntelligence
	Cultural(ctx context.Context, query CulturalQuery) model.CulturalIntelligence
}
