package lexicon

import (
	"sort"
	"strings"
)

// Region groups markets that share localization constraints.
type Region string

const (
	RegionChina              Region = "china"
	RegionTraditionalChinese Region = "traditional_chinese"
	RegionJapan              Region = "japan"
	RegionKorea              Region = "korea"
	RegionMiddleEast         Region = "middle_east"
	RegionIndia              Region = "india"
	RegionEU                 Region = "eu"
	RegionUS                 Region = "us"
	RegionLatAm              Region = "latam"
	RegionOther              Region = "other"
)

var marketNames = map[string]Region{
	"china": RegionChina, "mainland china": RegionChina, "prc": RegionChina,

	"taiwan": RegionTraditionalChinese, "hong kong": RegionTraditionalChinese, "macau": RegionTraditionalChinese,

	"japan": RegionJapan,

	"korea": RegionKorea, "south korea": RegionKorea,

	"middle east": RegionMiddleEast, "mena": RegionMiddleEast, "saudi arabia": RegionMiddleEast, "uae": RegionMiddleEast,
	"united arab emirates": RegionMiddleEast, "egypt": RegionMiddleEast, "qatar": RegionMiddleEast,
	"kuwait": RegionMiddleEast, "bahrain": RegionMiddleEast, "oman": RegionMiddleEast,
	"jordan": RegionMiddleEast, "lebanon": RegionMiddleEast, "israel": RegionMiddleEast,

	"india": RegionIndia,

	"eu": RegionEU, "europe": RegionEU, "germany": RegionEU, "france": RegionEU, "spain": RegionEU,
	"italy": RegionEU, "netherlands": RegionEU, "poland": RegionEU, "portugal": RegionEU,
	"belgium": RegionEU, "austria": RegionEU, "ireland": RegionEU, "sweden": RegionEU,
	"denmark": RegionEU, "finland": RegionEU, "greece": RegionEU, "switzerland": RegionEU,
	"uk": RegionEU, "united kingdom": RegionEU, "great britain": RegionEU,

	"us": RegionUS, "usa": RegionUS, "united states": RegionUS,

	"latam": RegionLatAm, "latin america": RegionLatAm, "brazil": RegionLatAm, "mexico": RegionLatAm,
	"argentina": RegionLatAm, "colombia": RegionLatAm, "chile": RegionLatAm, "peru": RegionLatAm,
}

// countryCodes holds ISO 3166-1 alpha-2 codes. They win over language codes.
var countryCodes = map[string]Region{
	"cn": RegionChina,
	"tw": RegionTraditionalChinese, "hk": RegionTraditionalChinese, "mo": RegionTraditionalChinese,
	"jp": RegionJapan,
	"kr": RegionKorea,
	"sa": RegionMiddleEast, "ae": RegionMiddleEast, "eg": RegionMiddleEast, "qa": RegionMiddleEast,
	"kw": RegionMiddleEast, "bh": RegionMiddleEast, "om": RegionMiddleEast, "jo": RegionMiddleEast,
	"lb": RegionMiddleEast, "il": RegionMiddleEast,
	"in": RegionIndia,
	"de": RegionEU, "fr": RegionEU, "es": RegionEU, "it": RegionEU, "nl": RegionEU, "pl": RegionEU,
	"pt": RegionEU, "be": RegionEU, "at": RegionEU, "ie": RegionEU, "se": RegionEU, "dk": RegionEU,
	"fi": RegionEU, "gr": RegionEU, "ch": RegionEU, "gb": RegionEU,
	"us": RegionUS,
	"br": RegionLatAm, "mx": RegionLatAm, "ar": RegionLatAm, "co": RegionLatAm, "cl": RegionLatAm,
	"pe": RegionLatAm,
}

// languageCodes holds ISO 639-1 codes that are not also country codes.
var languageCodes = map[string]Region{
	"zh": RegionChina,
	"ja": RegionJapan,
	"ko": RegionKorea,
	"he": RegionMiddleEast,
	"hi": RegionIndia,
}

// ResolveRegion maps a market to its region. Names are tried first, then
// country codes, then locale tags such as "zh-TW" or "pt_BR" by their country
// part, then bare language codes.
func ResolveRegion(market string) Region {
	key := strings.Join(strings.Fields(strings.ToLower(market)), " ")
	if r, ok := marketNames[strings.ReplaceAll(key, "_", " ")]; ok {
		return r
	}
	if r, ok := countryCodes[key]; ok {
		return r
	}
	lang, country, ok := strings.Cut(strings.NewReplacer("_", "-", " ", "-").Replace(key), "-")
	if ok {
		if r, found := countryCodes[country]; found {
			return r
		}
		key = lang
	}
	if r, ok := languageCodes[key]; ok {
		return r
	}
	return RegionOther
}

// DefaultMarketNotes are the market complexity notes for regions that need one.
func DefaultMarketNotes() map[Region]string {
	return map[Region]string{
		RegionChina:              "China: NMPA review and simplified character adaptation required",
		RegionTraditionalChinese: "Taiwan and Hong Kong: TFDA or DH review and traditional character adaptation required",
		RegionJapan:              "Japan: PMDA guidance and honorific register for patient communication",
		RegionMiddleEast:         "Middle East: right-to-left layout and conservative imagery norms",
		RegionIndia:              "India: multilingual adaptation across regional languages",
	}
}

// DefaultRegulatoryComplexity scores how demanding each region's regulator is.
func DefaultRegulatoryComplexity() map[Region]int {
	return map[Region]int{
		RegionChina:              85,
		RegionJapan:              80,
		RegionTraditionalChinese: 75,
		RegionMiddleEast:         75,
		RegionIndia:              70,
		RegionEU:                 65,
		RegionUS:                 60,
	}
}

// RightToLeft reports whether the region reads right to left.
func RightToLeft(r Region) bool {
	return r == RegionMiddleEast
}

// DoubleByte reports whether the region uses a CJK script.
func DoubleByte(r Region) bool {
	return r == RegionChina || r == RegionTraditionalChinese || r == RegionJapan || r == RegionKorea
}

// TextExpansion reports whether translations into the region typically run longer than English.
func TextExpansion(r Region) bool {
	return r == RegionEU || r == RegionLatAm
}

// Regions resolves markets and returns the distinct regions in sorted order.
func Regions(markets []string) []Region {
	seen := make(map[Region]struct{}, len(markets))
	out := make([]Region, 0, len(markets))
	for _, m := range markets {
		r := ResolveRegion(m)
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
