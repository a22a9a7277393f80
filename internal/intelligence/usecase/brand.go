package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"localization-srv/internal/intelligence"
	"localization-srv/internal/intelligence/repository"
	"localization-srv/internal/model"
	"localization-srv/pkg/util"
)

func (uc *implUseCase) Brand(ctx context.Context, brandID string, text string) model.BrandIntelligence {
	profile, isDefault := uc.profile(ctx, brandID)

	lower := strings.ToLower(text)
	violations := []string{}
	for _, term := range profile.AvoidedTerms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t != "" && strings.Contains(lower, t) {
			violations = append(violations, fmt.Sprintf("Avoided term used: %q", term))
		}
	}
	score := 100 - uc.cfg.AvoidedTermPenalty*len(violations)

	if len(profile.MessagingPillars) > 0 && !mentionsAny(lower, profile.MessagingPillars) {
		violations = append(violations, "No messaging pillar is mentioned")
		score -= uc.cfg.MissingPillarPenalty
	}

	tone := profile.Tone
	if tone == nil {
		tone = []string{}
	}
	return model.BrandIntelligence{
		BrandID:          brandID,
		ConsistencyScore: util.ClampScore(score),
		DefaultProfile:   isDefault,
		Tone:             tone,
		Violations:       violations,
	}
}

func (uc *implUseCase) profile(ctx context.Context, brandID string) (model.BrandProfile, bool) {
	if brandID == "" {
		return intelligence.DefaultBrandProfile(brandID), true
	}
	p, err := uc.repo.GetBrandProfile(ctx, brandID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			uc.l.Warnf(ctx, "intelligence.usecase.Brand: profile lookup for %s failed: %v", brandID, err)
		}
		return intelligence.DefaultBrandProfile(brandID), true
	}
	return p, false
}

func mentionsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" && strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
