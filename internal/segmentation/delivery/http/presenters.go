package http

import (
	"localization-srv/internal/model"
	"localization-srv/internal/segmentation"
)

type segmentReq struct {
	Content model.Content     `json:"content"`
	Context segmentContextReq `json:"context"`
}

type segmentContextReq struct {
	AssetType              string   `json:"asset_type"`
	TargetAudience         string   `json:"target_audience"`
	TherapeuticArea        string   `json:"therapeutic_area"`
	RegulatoryRequirements []string `json:"regulatory_requirements"`
}

func (r segmentReq) toInput() segmentation.SegmentInput {
	return segmentation.SegmentInput{
		Text: r.Content.ExtractText(),
		Context: model.SegmentContext{
			AssetType:              r.Context.AssetType,
			TargetAudience:         r.Context.TargetAudience,
			TherapeuticArea:        r.Context.TherapeuticArea,
			RegulatoryRequirements: r.Context.RegulatoryRequirements,
		},
	}
}

type segmentResp struct {
	Segments          []segmentItemResp      `json:"segments"`
	PreservationRules []preservationRuleResp `json:"preservation_rules"`
}

type segmentItemResp struct {
	ID              string `json:"id"`
	Text            string `json:"text"`
	Type            string `json:"type"`
	Importance      string `json:"importance"`
	Editability     string `json:"editability"`
	RegulatoryLevel string `json:"regulatory_level"`
	Start           int    `json:"start"`
}

type preservationRuleResp struct {
	SegmentID string `json:"segment_id"`
	Text      string `json:"text"`
	Reason    string `json:"reason"`
}

func (h *handler) newSegmentResp(output segmentation.SegmentOutput) segmentResp {
	resp := segmentResp{
		Segments:          make([]segmentItemResp, len(output.Segments)),
		PreservationRules: make([]preservationRuleResp, len(output.PreservationRules)),
	}
	for i, s := range output.Segments {
		resp.Segments[i] = segmentItemResp{
			ID:              s.ID,
			Text:            s.Text,
			Type:            string(s.Type),
			Importance:      string(s.Importance),
			Editability:     string(s.Editability),
			RegulatoryLevel: string(s.RegulatoryLevel),
			Start:           s.Start,
		}
	}
	for i, r := range output.PreservationRules {
		resp.PreservationRules[i] = preservationRuleResp{SegmentID: r.SegmentID, Text: r.Text, Reason: r.Reason}
	}
	return resp
}
