package usecase

import (
	"fmt"
	"sort"
	"strings"

	"localization-srv/internal/lexicon"
	"localization-srv/internal/scoring"
	"localization-srv/pkg/util"
)

var channelNotes = map[string]string{
	"email":               "Email: subject line and preheader limits across mail clients",
	"social":              "Social: platform character limits and hashtag localization",
	"web":                 "Web: responsive layout and localized SEO metadata",
	"mobile":              "Mobile: truncation on small screens",
	"print":               "Print: fixed page geometry with no room for expansion",
	"video":               "Video: voice-over and on-screen text timing",
	"banner":              "Banner: fixed ad sizes with tight copy limits",
	"rep-triggered email": "Rep-triggered email: locked approved template blocks",
}

var assetFormatNotes = []struct {
	keyword string
	note    string
}{
	{"pdf", "PDF: font embedding and reflow after translation"},
	{"print", "Print: press-ready files with bleed and proofs"},
	{"video", "Video: subtitle timing and burned-in text"},
}

func marketNotes(cfg scoring.Config, markets []string, regions []lexicon.Region) []string {
	notes := []string{}
	for _, r := range regions {
		if note, ok := cfg.MarketNotes[r]; ok {
			notes = append(notes, note)
		}
	}
	if len(notes) == 0 && len(util.Dedupe(markets)) > cfg.GenericMarketNoteAbove {
		notes = append(notes, cfg.GenericMarketNote)
	}
	return notes
}

func formatRequirements(assetType string, regions []lexicon.Region) []string {
	notes := []string{}
	for _, r := range regions {
		if lexicon.RightToLeft(r) {
			notes = append(notes, fmt.Sprintf("Right-to-left script support (%s)", r))
		}
		if lexicon.DoubleByte(r) {
			notes = append(notes, fmt.Sprintf("Double-byte fonts and encoding (%s)", r))
		}
		if lexicon.TextExpansion(r) {
			notes = append(notes, fmt.Sprintf("Text expansion allowance (%s)", r))
		}
	}
	asset := strings.ToLower(assetType)
	for _, f := range assetFormatNotes {
		if strings.Contains(asset, f.keyword) {
			notes = append(notes, f.note)
		}
	}
	return notes
}

func channelComplexity(channels []string) []string {
	notes := []string{}
	seen := map[string]struct{}{}
	for _, ch := range channels {
		key := util.NormalizeKey(ch)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if note, ok := channelNotes[key]; ok {
			notes = append(notes, note)
		}
	}
	sort.Strings(notes)
	return notes
}

func layoutComplexity(cfg scoring.Config, imageCount int, infographic bool, regions []lexicon.Region) []string {
	notes := []string{}
	if imageCount > 0 {
		notes = append(notes, fmt.Sprintf("%d images need text-in-image review", imageCount))
	}
	if imageCount > cfg.ManyImagesAbove {
		notes = append(notes, "High image count increases layout rework")
	}
	if infographic {
		notes = append(notes, "Infographic text must be re-typeset per market")
	}
	rtl, cjk := false, false
	for _, r := range regions {
		rtl = rtl || lexicon.RightToLeft(r)
		cjk = cjk || lexicon.DoubleByte(r)
	}
	if rtl {
		notes = append(notes, "Mirrored layout for right-to-left markets")
	}
	if cjk {
		notes = append(notes, "Line breaking rules for double-byte scripts")
	}
	return notes
}

// assetBase sums the base points of every asset keyword present in assetType, in sorted keyword order.
func assetBase(cfg scoring.Config, assetType string) (int, []string) {
	asset := strings.ToLower(assetType)
	keys := make([]string, 0, len(cfg.AssetTypeBase))
	for k := range cfg.AssetTypeBase {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	total := 0
	var hits []string
	for _, k := range keys {
		if strings.Contains(asset, k) {
			total += cfg.AssetTypeBase[k]
			hits = append(hits, k)
		}
	}
	return total, hits
}
