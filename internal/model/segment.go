package model

type SegmentType string

const (
	SegmentTypeHeadline   SegmentType = "headline"
	SegmentTypeBody       SegmentType = "body"
	SegmentTypeCTA        SegmentType = "cta"
	SegmentTypeDisclaimer SegmentType = "disclaimer"
	SegmentTypeSafety     SegmentType = "safety"
	SegmentTypeGeneral    SegmentType = "general"
	SegmentTypeListItem   SegmentType = "list_item"
	SegmentTypeParagraph  SegmentType = "paragraph"
	SegmentTypeHeading    SegmentType = "heading"
)

// IsRegulated reports whether matches for this type rank compliant candidates first.
func (t SegmentType) IsRegulated() bool {
	return t == SegmentTypeSafety || t == SegmentTypeDisclaimer
}

type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

type Editability string

const (
	EditabilityEditable   Editability = "editable"
	EditabilityRestricted Editability = "restricted"
	// EditabilityLocked text must never be rewritten by any later stage.
	EditabilityLocked Editability = "locked"
)

type RegulatoryLevel string

const (
	RegulatoryLevelNone     RegulatoryLevel = "none"
	RegulatoryLevelStandard RegulatoryLevel = "standard"
	RegulatoryLevelCritical RegulatoryLevel = "critical"
)

// Segment is a classified span of source text.
type Segment struct {
	ID              string          `json:"id"`
	Text            string          `json:"text"`
	Type            SegmentType     `json:"type"`
	Importance      Importance      `json:"importance"`
	Editability     Editability     `json:"editability"`
	RegulatoryLevel RegulatoryLevel `json:"regulatory_level"`
	// Start is the byte offset in the source text, or -1 when unknown.
	Start int `json:"start"`
}

// SegmentContext describes the asset being segmented.
type SegmentContext struct {
	AssetType              string   `json:"asset_type"`
	TargetAudience         string   `json:"target_audience"`
	TherapeuticArea        string   `json:"therapeutic_area"`
	RegulatoryRequirements []string `json:"regulatory_requirements"`
}

// PreservationRule pins a locked segment's text verbatim.
type PreservationRule struct {
	SegmentID string `json:"segment_id"`
	Text      string `json:"text"`
	Reason    string `json:"reason"`
}
