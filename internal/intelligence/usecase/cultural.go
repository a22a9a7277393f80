package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"localization-srv/internal/intelligence"
	"localization-srv/internal/lexicon"
	"localization-srv/internal/model"
	"localization-srv/pkg/util"
)

func (uc *implUseCase) Cultural(ctx context.Context, query intelligence.CulturalQuery) model.CulturalIntelligence {
	refs := lexicon.CulturalRefs(query.Text)
	sensitive := lexicon.Sensitive(query.Text)
	base := 100 - uc.cfg.CulturalReferencePenalty*len(refs) - uc.cfg.SensitiveTopicPenalty*len(sensitive)

	out := model.CulturalIntelligence{
		PerMarket:          map[string]int{},
		CulturalReferences: nonNil(refs),
		SensitiveTopics:    nonNil(sensitive),
		Issues:             []string{},
		Suggestions:        []string{},
	}

	notes := lexicon.DefaultMarketNotes()
	overall := util.ClampScore(base)
	for i, market := range util.Dedupe(query.Markets) {
		score := base
		if note, ok := notes[lexicon.ResolveRegion(market)]; ok {
			score -= uc.cfg.MarketNotePenalty
			out.Issues = append(out.Issues, fmt.Sprintf("%s: %s", market, note))
		}
		score = util.ClampScore(score)
		out.PerMarket[market] = score
		if i == 0 || score < overall {
			overall = score
		}
	}

	for _, ref := range refs {
		out.Suggestions = append(out.Suggestions, fmt.Sprintf("Adapt or remove the cultural reference %q", ref))
	}
	for _, topic := range sensitive {
		out.Suggestions = append(out.Suggestions, fmt.Sprintf("Review the sensitive topic %q with local reviewers", topic))
	}
	out.Appropriateness = overall

	if uc.cfg.LLMEnabled && strings.TrimSpace(query.Text) != "" {
		uc.enrich(ctx, query, &out)
	}
	return out
}

// enrich averages in an LLM cultural review. Any failure leaves out untouched.
func (uc *implUseCase) enrich(ctx context.Context, query intelligence.CulturalQuery, out *model.CulturalIntelligence) {
	raw, err := uc.llm.GenerateJSON(ctx, reviewPrompt(query), uc.schema)
	if err != nil {
		uc.l.Warnf(ctx, "intelligence.usecase.Cultural: llm review failed: %v", err)
		return
	}
	var review intelligence.CulturalReview
	if err := json.Unmarshal([]byte(raw), &review); err != nil {
		uc.l.Warnf(ctx, "intelligence.usecase.Cultural: %v: %v", intelligence.ErrInvalidReview, err)
		return
	}
	if review.Appropriateness < 0 || review.Appropriateness > 100 {
		uc.l.Warnf(ctx, "intelligence.usecase.Cultural: %v: appropriateness %d", intelligence.ErrInvalidReview, review.Appropriateness)
		return
	}

	out.Appropriateness = util.Round(float64(out.Appropriateness+review.Appropriateness) / 2)
	out.Issues = util.Dedupe(append(out.Issues, review.Issues...))
	out.Suggestions = util.Dedupe(append(out.Suggestions, review.Suggestions...))
	out.LLMEnriched = true
}

func reviewPrompt(query intelligence.CulturalQuery) string {
	var b strings.Builder
	b.WriteString("You review pharmaceutical marketing copy for cultural appropriateness before localization.\n")
	if len(query.Markets) > 0 {
		fmt.Fprintf(&b, "Target markets: %s.\n", strings.Join(query.Markets, ", "))
	}
	if query.TherapeuticArea != "" {
		fmt.Fprintf(&b, "Therapeutic area: %s.\n", query.TherapeuticArea)
	}
	b.WriteString("Score appropriateness from 0 to 100, list concrete issues and suggested adaptations.\n\nText:\n")
	b.WriteString(query.Text)
	return b.String()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
