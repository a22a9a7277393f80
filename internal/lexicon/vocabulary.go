package lexicon

import (
	"regexp"
	"sort"
	"strings"
)

// MedicalVocabulary is the fixed list of terms counted as medical language.
var MedicalVocabulary = []string{
	"treatment", "therapy", "clinical", "trial", "efficacy", "adverse", "FDA", "EMA",
	"dosage", "dose", "indication", "contraindication", "contraindications", "prescription",
	"prescribing", "diagnosis", "symptom", "symptoms", "placebo", "randomized", "endpoint",
	"pharmacokinetic", "side effect", "side effects", "tolerability", "patient", "patients",
	"physician", "hypersensitivity", "overdose", "mg",
}

// CulturalReferences are idioms, holidays and pastimes that rarely survive literal translation.
var CulturalReferences = []string{
	"christmas", "thanksgiving", "easter", "halloween", "fourth of july", "black friday",
	"super bowl", "baseball", "american football", "home run", "slam dunk", "touchdown",
	"piece of cake", "break a leg", "ballpark", "hit it out of the park", "ramadan", "diwali",
	"lunar new year", "hanukkah", "st. patrick", "happy hour", "barbecue", "cowboy",
}

// SensitiveTopics are subjects that need market-specific review before reuse.
var SensitiveTopics = []string{
	"death", "dying", "alcohol", "pork", "gambling", "religion", "religious", "god",
	"sexual", "sex", "pregnancy", "pregnant", "abortion", "contraception", "weight loss",
	"obesity", "mental illness", "suicide", "depression", "gender", "body image", "nudity",
}

var (
	medicalPattern   = wordListPattern(MedicalVocabulary)
	culturalPattern  = wordListPattern(CulturalReferences)
	sensitivePattern = wordListPattern(SensitiveTopics)
	// Acronyms, -ology/-metric/-analysis words.
	technicalPattern = regexp.MustCompile(`\b(?:[A-Z]{2,}[0-9]*|[A-Za-z]+(?:ology|metric|metrics|analysis))\b`)
)

// wordListPattern compiles a case-insensitive whole-word alternation. Longer terms are tried first.
func wordListPattern(terms []string) *regexp.Regexp {
	sorted := make([]string, len(terms))
	copy(sorted, terms)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	quoted := make([]string, len(sorted))
	for i, t := range sorted {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// distinct returns the lowercased distinct matches of re in text, in first-seen order.
func distinct(re *regexp.Regexp, text string, lower bool) []string {
	found := re.FindAllString(text, -1)
	seen := make(map[string]struct{}, len(found))
	out := make([]string, 0, len(found))
	for _, f := range found {
		key := f
		if lower {
			key = strings.ToLower(f)
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

// MedicalTerms returns the distinct medical vocabulary terms found in text.
func MedicalTerms(text string) []string {
	return distinct(medicalPattern, text, true)
}

// TechnicalTerms returns the distinct acronyms and technical words found in text.
func TechnicalTerms(text string) []string {
	return distinct(technicalPattern, text, false)
}

// CulturalRefs returns the distinct cultural references found in text.
func CulturalRefs(text string) []string {
	return distinct(culturalPattern, text, true)
}

// Sensitive returns the distinct sensitive topics found in text.
func Sensitive(text string) []string {
	return distinct(sensitivePattern, text, true)
}
