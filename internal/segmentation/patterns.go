package segmentation

import (
	"regexp"

	"localization-srv/internal/model"
)

// Mode decides how a pattern's matches become segments.
type Mode int

const (
	// ModeLeading takes the first capture group of a single match. The segment is dropped
	// when a later claim overlaps it.
	ModeLeading Mode = iota
	// ModeClaim keeps every match and masks it from all later claim passes.
	ModeClaim
	// ModePhrase keeps every match not already contained in a captured segment.
	ModePhrase
	// ModeRemainder splits what is left after removing captured text into sentence chunks.
	ModeRemainder
)

type Kind string

const (
	KindHeadline    Kind = "headline"
	KindSafety      Kind = "safety"
	KindDisclaimer  Kind = "disclaimer"
	KindCTA         Kind = "cta"
	KindKeyPhrase   Kind = "key_phrase"
	KindMedicalTerm Kind = "medical_term"
	KindBody        Kind = "body"
)

// Tag is the template applied to every segment a pattern produces.
type Tag struct {
	Type            model.SegmentType
	Importance      model.Importance
	Editability     model.Editability
	RegulatoryLevel model.RegulatoryLevel
}

type Pattern struct {
	Kind   Kind
	Mode   Mode
	Regexp *regexp.Regexp
	// MinLength is the minimum trimmed rune length of a kept match.
	MinLength int
	Tag       Tag
}

// Fallback configures the sentence split used when no pattern produced a segment.
type Fallback struct {
	Terminators  *regexp.Regexp
	MaxSentences int
	First        Tag
	Rest         Tag
}

// PreservationReason is recorded for every locked segment.
const PreservationReason = "regulated safety language must be reproduced verbatim"

// DefaultPatterns returns the pattern table in pass order. Output segments follow this order.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{
			Kind:   KindHeadline,
			Mode:   ModeLeading,
			Regexp: regexp.MustCompile(`^\s*([^\n.!?]{10,150}(?:[.!?]|\n|$))`),
			Tag:    Tag{model.SegmentTypeHeadline, model.ImportanceHigh, model.EditabilityEditable, model.RegulatoryLevelNone},
		},
		{
			Kind: KindSafety,
			Mode: ModeClaim,
			Regexp: regexp.MustCompile(`(?i)\b(?:do not|don't|consult your (?:doctor|physician|healthcare provider)|` +
				`side effects (?:may )?include|may cause|warning|stop taking|tell your (?:doctor|physician)|` +
				`seek (?:immediate )?medical (?:help|attention)|serious (?:allergic )?reactions?)\b[^.!?\n]*[.!?]?`),
			Tag: Tag{model.SegmentTypeSafety, model.ImportanceHigh, model.EditabilityLocked, model.RegulatoryLevelCritical},
		},
		{
			Kind: KindDisclaimer,
			Mode: ModeClaim,
			Regexp: regexp.MustCompile(`(?i)\b(?:important safety information|contraindications?|` +
				`indications? and usage|(?:see )?full prescribing information|boxed warning|` +
				`for (?:us |u\.s\. )?(?:healthcare professionals|residents) only|results may vary|` +
				`this (?:information|material) is not intended|individual results)\b[^.!?\n]*[.!?]?`),
			Tag: Tag{model.SegmentTypeDisclaimer, model.ImportanceHigh, model.EditabilityRestricted, model.RegulatoryLevelStandard},
		},
		{
			Kind: KindCTA,
			Mode: ModeClaim,
			Regexp: regexp.MustCompile(`(?i)\b(?:learn more|find out more|contact|visit|call|ask your doctor|` +
				`talk to your (?:doctor|physician)|sign up|register|download|click here|subscribe|request a sample)\b[^.!?\n]*[.!?]?`),
			Tag: Tag{model.SegmentTypeCTA, model.ImportanceMedium, model.EditabilityEditable, model.RegulatoryLevelNone},
		},
		{
			Kind:   KindKeyPhrase,
			Mode:   ModePhrase,
			Regexp: regexp.MustCompile(`\b[A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+)+\b`),
			Tag:    Tag{model.SegmentTypeGeneral, model.ImportanceHigh, model.EditabilityRestricted, model.RegulatoryLevelNone},
		},
		{
			Kind: KindMedicalTerm,
			Mode: ModePhrase,
			Regexp: regexp.MustCompile(`(?i)\b(?:clinically (?:proven|studied|tested)|FDA[- ]approved|` +
				`placebo[- ]controlled|double[- ]blind|randomi[sz]ed(?: controlled)? trials?|` +
				`adverse (?:events?|reactions?)|mechanism of action|(?:once|twice)[- ]daily|` +
				`\d+(?:\.\d+)? ?mg(?:/kg)?|indicated for(?: the treatment of)? [a-z]+(?: [a-z]+)?)\b`),
			Tag: Tag{model.SegmentTypeGeneral, model.ImportanceHigh, model.EditabilityEditable, model.RegulatoryLevelCritical},
		},
		{
			Kind:      KindBody,
			Mode:      ModeRemainder,
			Regexp:    regexp.MustCompile(`[^.!?\n]+[.!?]`),
			MinLength: 15,
			Tag:       Tag{model.SegmentTypeBody, model.ImportanceMedium, model.EditabilityEditable, model.RegulatoryLevelNone},
		},
	}
}

// DefaultFallback splits on sentence terminators and keeps at most 8 sentences.
func DefaultFallback() Fallback {
	return Fallback{
		Terminators:  regexp.MustCompile(`[^.!?]+[.!?]*`),
		MaxSentences: 8,
		First:        Tag{model.SegmentTypeHeadline, model.ImportanceHigh, model.EditabilityEditable, model.RegulatoryLevelNone},
		Rest:         Tag{model.SegmentTypeGeneral, model.ImportanceMedium, model.EditabilityEditable, model.RegulatoryLevelNone},
	}
}
