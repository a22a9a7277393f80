package tm

import (
	"context"

	"localization-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// MatchSegment never fails. A source error or timeout yields an empty list.
	MatchSegment(ctx context.Context, segment model.Segment, lctx model.LocalizationContext) []model.Match
	// MatchSegments fans MatchSegment out concurrently and keys the results by segment id.
	MatchSegments(ctx context.Context, segments []model.Segment, lctx model.LocalizationContext) map[string][]model.Match
	Upsert(ctx context.Context, sc model.Scope, input UpsertInput) (UpsertOutput, error)
	Import(ctx context.Context, sc model.Scope, input ImportInput) (ImportOutput, error)
}
