package embedding

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate embeds one segment as a search query.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
	// GenerateMany embeds translation units as documents. Only cache misses reach Voyage and
	// vectors come back in input order.
	GenerateMany(ctx context.Context, input GenerateManyInput) (GenerateManyOutput, error)
}
