package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"localization-srv/internal/model"
	"localization-srv/internal/tm"
	"localization-srv/internal/tm/repository"
	"localization-srv/pkg/log"
	"localization-srv/pkg/util"
)

func (uc *implUseCase) Upsert(ctx context.Context, sc model.Scope, input tm.UpsertInput) (tm.UpsertOutput, error) {
	ctx = log.WithFields(ctx, log.Fields{"user_id": sc.UserID, "workspace_id": sc.WorkspaceID})
	if len(input.Units) == 0 {
		return tm.UpsertOutput{}, tm.ErrNoUnits
	}

	now := time.Now().UTC()
	units := make([]model.TMUnit, len(input.Units))
	ids := make([]string, len(input.Units))
	for i, u := range input.Units {
		normalized, err := normalizeUnit(u, now)
		if err != nil {
			uc.l.Warnf(ctx, "tm.usecase.Upsert: unit %d rejected: %v", i, err)
			return tm.UpsertOutput{}, fmt.Errorf("unit %d: %w", i, err)
		}
		units[i] = normalized
		ids[i] = normalized.ID
	}

	if err := uc.store.Index(ctx, repository.IndexOptions{Units: units}); err != nil {
		uc.l.Errorf(ctx, "tm.usecase.Upsert: index %d units failed: %v", len(units), err)
		return tm.UpsertOutput{}, fmt.Errorf("%w: %v", tm.ErrIndexFailed, err)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			uc.l.Warnf(ctx, "tm.usecase.Upsert: cache invalidation failed, stale matches may be served until TTL: %v", err)
		}
	}

	uc.l.Infof(ctx, "tm.usecase.Upsert: indexed %d units into %s", len(units), uc.store.Name())
	return tm.UpsertOutput{IDs: ids}, nil
}

// normalizeUnit validates u and fills its id, status and timestamps.
func normalizeUnit(u model.TMUnit, now time.Time) (model.TMUnit, error) {
	u.SourceText = strings.TrimSpace(u.SourceText)
	u.TargetText = strings.TrimSpace(u.TargetText)
	u.SourceLanguage = strings.TrimSpace(u.SourceLanguage)
	u.TargetLanguage = strings.TrimSpace(u.TargetLanguage)

	switch {
	case u.SourceText == "":
		return u, fmt.Errorf("%w: source_text is required", tm.ErrInvalidUnit)
	case u.TargetText == "":
		return u, fmt.Errorf("%w: target_text is required", tm.ErrInvalidUnit)
	case u.SourceLanguage == "" || u.TargetLanguage == "":
		return u, fmt.Errorf("%w: source_language and target_language are required", tm.ErrInvalidUnit)
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	} else if _, err := uuid.Parse(u.ID); err != nil {
		return u, fmt.Errorf("%w: id must be a uuid", tm.ErrInvalidUnit)
	}

	if u.RegulatoryStatus == "" {
		u.RegulatoryStatus = model.RegulatoryStatusPending
	}
	if !u.RegulatoryStatus.Valid() {
		return u, fmt.Errorf("%w: unknown regulatory_status %q", tm.ErrInvalidUnit, u.RegulatoryStatus)
	}

	u.BrandConsistencyScore = util.ClampScore(u.BrandConsistencyScore)
	u.Confidence = util.ClampScore(u.Confidence)
	if u.CulturalAppropriateness != nil {
		v := util.ClampScore(*u.CulturalAppropriateness)
		u.CulturalAppropriateness = &v
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	return u, nil
}
