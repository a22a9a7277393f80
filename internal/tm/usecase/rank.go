package usecase

import (
	"sort"

	"localization-srv/internal/model"
	"localization-srv/internal/tm/repository"
	"localization-srv/pkg/util"
)

func (uc *implUseCase) enrich(segment model.Segment, raw repository.RawMatch) model.Match {
	m := model.Match{
		TMUnitID:              raw.TMUnitID,
		SegmentID:             segment.ID,
		SourceText:            raw.SourceText,
		TargetText:            raw.TargetText,
		MatchPercentage:       util.ClampScore(raw.MatchPercentage),
		BrandConsistencyScore: util.ClampScore(raw.BrandConsistencyScore),
		RegulatoryStatus:      raw.RegulatoryStatus,
		CulturalContext:       raw.CulturalContext,
		Confidence:            util.ClampScore(raw.Confidence),
		ContentType:           segment.Type,
		UsageCount:            raw.UsageCount,
		LastUsed:              raw.LastUsed,
		Origin:                raw.Origin,
	}
	if m.Confidence <= 0 {
		m.Confidence = uc.confidence(m)
	}
	m.ValidationFlags = model.ValidationFlags{
		BrandTerminology:     m.BrandConsistencyScore >= uc.cfg.BrandTerminologyMin,
		RegulatoryCompliance: m.RegulatoryStatus == model.RegulatoryStatusApproved,
		CulturalSensitivity:  m.CulturalContext != nil && m.CulturalContext.Appropriateness >= uc.cfg.CulturalSensitivityMin,
	}
	return m
}

func (uc *implUseCase) confidence(m model.Match) int {
	return util.ClampScore(util.Round(
		uc.cfg.ConfidenceMatchWeight*float64(m.MatchPercentage) +
			uc.cfg.ConfidenceBrandWeight*float64(m.BrandConsistencyScore) +
			uc.cfg.ConfidenceRegulatoryWeight*float64(regulatoryScore(m.RegulatoryStatus)),
	))
}

func regulatoryScore(s model.RegulatoryStatus) int {
	switch s {
	case model.RegulatoryStatusApproved:
		return 100
	case model.RegulatoryStatusPending:
		return 50
	default:
		return 0
	}
}

// rank orders matches in place. Regulated segments put compliant matches first.
func (uc *implUseCase) rank(segmentType model.SegmentType, matches []model.Match) {
	if segmentType.IsRegulated() {
		sort.SliceStable(matches, func(i, j int) bool {
			a, b := matches[i], matches[j]
			if a.ValidationFlags.RegulatoryCompliance != b.ValidationFlags.RegulatoryCompliance {
				return a.ValidationFlags.RegulatoryCompliance
			}
			return a.MatchPercentage > b.MatchPercentage
		})
		return
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return uc.blend(matches[i]) > uc.blend(matches[j])
	})
}

func (uc *implUseCase) blend(m model.Match) float64 {
	return uc.cfg.MatchWeight*float64(m.MatchPercentage) + uc.cfg.BrandWeight*float64(m.BrandConsistencyScore)
}
