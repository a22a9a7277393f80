package usecase

import (
	"math"
	"regexp"
	"strings"

	"localization-srv/internal/lexicon"
	"localization-srv/internal/scoring"
	"localization-srv/pkg/util"
)

var sentenceBreak = regexp.MustCompile(`[.!?]+`)

type textStats struct {
	sentences   int
	words       int
	avgWords    float64
	readability float64
	technical   []string
	medical     []string
}

func analyzeText(cfg scoring.Config, text string) textStats {
	var s textStats
	for _, part := range sentenceBreak.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			s.sentences++
		}
	}
	s.words = len(strings.Fields(text))
	if s.sentences == 0 && s.words > 0 {
		s.sentences = 1
	}
	if s.sentences > 0 {
		s.avgWords = float64(s.words) / float64(s.sentences)
	}
	s.readability = math.Max(0, cfg.ReadabilityBase-cfg.ReadabilityPerWord*s.avgWords)
	s.technical = nonNil(lexicon.TechnicalTerms(text))
	s.medical = nonNil(lexicon.MedicalTerms(text))
	return s
}

func textScore(cfg scoring.Config, s textStats) int {
	score := above(s.avgWords, cfg.WordsPerSentenceAbove) +
		above(float64(len(s.technical)), cfg.TechnicalTermsAbove) +
		above(float64(len(s.medical)), cfg.MedicalTermsAbove) +
		below(s.readability, cfg.ReadabilityBelow)
	return util.ClampScore(score)
}

// above returns the points of the first step whose threshold v exceeds.
func above(v float64, steps []scoring.Step) int {
	for _, s := range steps {
		if v > s.Threshold {
			return s.Points
		}
	}
	return 0
}

// below returns the points of the first step whose threshold v is under.
func below(v float64, steps []scoring.Step) int {
	for _, s := range steps {
		if v < s.Threshold {
			return s.Points
		}
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// assetMetadata fills empty metadata from structured content keys.
func assetMetadata(input scoring.ScoreInput) scoring.ScoreInput {
	c := input.Content
	if input.AssetType == "" {
		if v, ok := c.Field("asset_type"); ok {
			input.AssetType, _ = v.(string)
		}
	}
	if len(input.Channels) == 0 {
		if v, ok := c.Field("channels"); ok {
			input.Channels = toStrings(v)
		}
	}
	if input.ImageCount == 0 {
		if v, ok := c.Field("image_count"); ok {
			if n, ok := v.(float64); ok {
				input.ImageCount = int(n)
			}
		}
	}
	if !input.HasInfographic {
		if v, ok := c.Field("has_infographic"); ok {
			input.HasInfographic, _ = v.(bool)
		}
	}
	if len(input.TargetMarkets) == 0 {
		if v, ok := c.Field("target_markets"); ok {
			input.TargetMarkets = toStrings(v)
		}
	}
	return input
}

func toStrings(v any) []string {
	switch val := v.(type) {
	case string:
		return []string{val}
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

