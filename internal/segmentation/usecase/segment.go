package usecase

import (
	"context"
	"fmt"
	"strings"

	"localization-srv/internal/model"
	"localization-srv/internal/segmentation"
)

func (uc *implUseCase) Segment(ctx context.Context, input segmentation.SegmentInput) segmentation.SegmentOutput {
	if strings.TrimSpace(input.Text) == "" {
		return segmentation.SegmentOutput{Segments: []model.Segment{}, PreservationRules: []model.PreservationRule{}}
	}

	s := newScan(input.Text)
	for _, p := range uc.patterns {
		switch p.Mode {
		case segmentation.ModeLeading:
			s.leading(p)
		case segmentation.ModeClaim:
			s.claim(p)
		case segmentation.ModePhrase:
			s.phrase(p)
		case segmentation.ModeRemainder:
			if len(input.Context.RegulatoryRequirements) > 0 {
				p.Tag.RegulatoryLevel = model.RegulatoryLevelStandard
			}
			s.remainder(p)
		}
	}

	drafts := s.kept()
	if len(drafts) == 0 {
		drafts = uc.fallbackDrafts(input.Text)
		uc.l.Debugf(ctx, "segmentation.usecase.Segment: no pattern matched, fallback produced %d segments", len(drafts))
	}

	return build(drafts)
}

func (uc *implUseCase) fallbackDrafts(text string) []*draft {
	var drafts []*draft
	for _, loc := range uc.fallback.Terminators.FindAllStringIndex(text, -1) {
		if len(drafts) == uc.fallback.MaxSentences {
			break
		}
		raw := text[loc[0]:loc[1]]
		sentence := strings.TrimSpace(raw)
		if sentence == "" {
			continue
		}
		drafts = append(drafts, &draft{
			text:  sentence,
			start: loc[0] + strings.Index(raw, sentence),
			tag:   uc.fallback.Rest,
		})
	}
	if len(drafts) == 0 {
		trimmed := strings.TrimSpace(text)
		drafts = append(drafts, &draft{text: trimmed, start: strings.Index(text, trimmed)})
	}
	drafts[0].tag = uc.fallback.First
	return drafts
}

func build(drafts []*draft) segmentation.SegmentOutput {
	out := segmentation.SegmentOutput{
		Segments:          make([]model.Segment, 0, len(drafts)),
		PreservationRules: []model.PreservationRule{},
	}
	for i, d := range drafts {
		seg := model.Segment{
			ID:              fmt.Sprintf("seg-%d", i+1),
			Text:            d.text,
			Type:            d.tag.Type,
			Importance:      d.tag.Importance,
			Editability:     d.tag.Editability,
			RegulatoryLevel: d.tag.RegulatoryLevel,
			Start:           d.start,
		}
		out.Segments = append(out.Segments, seg)
		if seg.Editability == model.EditabilityLocked {
			out.PreservationRules = append(out.PreservationRules, model.PreservationRule{
				SegmentID: seg.ID,
				Text:      seg.Text,
				Reason:    segmentation.PreservationReason,
			})
		}
	}
	return out
}
