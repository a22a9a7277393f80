package http

import (
	"localization-srv/internal/model"
	"localization-srv/internal/scoring"
)

type complexityReq struct {
	DocumentID      string        `json:"document_id"`
	Content         model.Content `json:"content"`
	TargetMarkets   []string      `json:"target_markets"`
	TargetLanguages []string      `json:"target_languages"`
	AssetType       string        `json:"asset_type"`
	Channels        []string      `json:"channels"`
	ImageCount      int           `json:"image_count" binding:"min=0"`
	HasInfographic  bool          `json:"has_infographic"`
}

func (r complexityReq) toInput() scoring.ScoreInput {
	return scoring.ScoreInput{
		DocumentID:      r.DocumentID,
		Content:         r.Content,
		TargetMarkets:   r.TargetMarkets,
		TargetLanguages: r.TargetLanguages,
		AssetType:       r.AssetType,
		Channels:        r.Channels,
		ImageCount:      r.ImageCount,
		HasInfographic:  r.HasInfographic,
	}
}

type readinessReq struct {
	complexityReq
	BrandConsistency        *int           `json:"brand_consistency" binding:"omitempty,min=0,max=100"`
	CulturalAppropriateness map[string]int `json:"cultural_appropriateness"`
}

type readinessResp struct {
	Complexity model.ComplexityMetrics          `json:"complexity"`
	Markets    map[string]model.MarketReadiness `json:"markets"`
}
