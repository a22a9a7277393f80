package segmentation

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Segment never fails. Empty or whitespace-only text yields no segments.
	Segment(ctx context.Context, input SegmentInput) SegmentOutput
}
