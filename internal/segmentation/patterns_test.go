package segmentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPatternsOrder(t *testing.T) {
	var kinds []Kind
	for _, p := range DefaultPatterns() {
		kinds = append(kinds, p.Kind)
	}
	assert.Equal(t, []Kind{
		KindHeadline, KindSafety, KindDisclaimer, KindCTA, KindKeyPhrase, KindMedicalTerm, KindBody,
	}, kinds)
}

func TestPatternMatches(t *testing.T) {
	byKind := map[Kind]Pattern{}
	for _, p := range DefaultPatterns() {
		byKind[p.Kind] = p
	}

	tests := []struct {
		kind  Kind
		text  string
		match string
	}{
		{KindSafety, "Please consult your doctor before use. Next", "consult your doctor before use."},
		{KindSafety, "Side effects may include dizziness.", "Side effects may include dizziness."},
		{KindDisclaimer, "See Full Prescribing Information for details.", "See Full Prescribing Information for details."},
		{KindCTA, "Visit example.com", "Visit example."},
		{KindKeyPhrase, "try Zyntra Plus now", "Zyntra Plus"},
		{KindMedicalTerm, "FDA-approved therapy", "FDA-approved"},
	}
	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			assert.Equal(t, tc.match, byKind[tc.kind].Regexp.FindString(tc.text))
		})
	}

	assert.Empty(t, byKind[KindCTA].Regexp.FindString("the so-called remedy"))
}
