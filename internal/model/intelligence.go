package model

// BrandProfile holds a brand's voice characteristics.
type BrandProfile struct {
	BrandID          string            `json:"brand_id"`
	Name             string            `json:"name"`
	Tone             []string          `json:"tone"`
	AvoidedTerms     []string          `json:"avoided_terms"`
	MessagingPillars []string          `json:"messaging_pillars"`
	VisualIdentity   map[string]string `json:"visual_identity,omitempty"`
}

type BrandIntelligence struct {
	BrandID          string   `json:"brand_id"`
	ConsistencyScore int      `json:"consistency_score"`
	DefaultProfile   bool     `json:"default_profile"`
	Tone             []string `json:"tone"`
	Violations       []string `json:"violations"`
}

type RiskCategory string

const (
	RiskCategoryHigh   RiskCategory = "high"
	RiskCategoryMedium RiskCategory = "medium"
	RiskCategoryLow    RiskCategory = "low"
)

// RegulatoryRule is a per-market compliance check. Empty BrandID or TherapeuticArea apply to all.
type RegulatoryRule struct {
	ID                string       `json:"id"`
	BrandID           string       `json:"brand_id,omitempty"`
	Market            string       `json:"market"`
	TherapeuticArea   string       `json:"therapeutic_area,omitempty"`
	RuleName          string       `json:"rule_name"`
	CompliancePattern string       `json:"compliance_pattern"`
	RiskLevel         RiskCategory `json:"risk_level"`
	Description       string       `json:"description,omitempty"`
}

type ComplianceStatus string

const (
	ComplianceStatusCompliant    ComplianceStatus = "compliant"
	ComplianceStatusNeedsReview  ComplianceStatus = "needs_review"
	ComplianceStatusNonCompliant ComplianceStatus = "non_compliant"
)

type RegulatoryFinding struct {
	RuleID    string       `json:"rule_id"`
	RuleName  string       `json:"rule_name"`
	Market    string       `json:"market"`
	RiskLevel RiskCategory `json:"risk_level"`
	Matched   string       `json:"matched"`
}

type RegulatoryIntelligence struct {
	Status         ComplianceStatus    `json:"status"`
	Findings       []RegulatoryFinding `json:"findings"`
	MarketsChecked []string            `json:"markets_checked"`
	RulesEvaluated int                 `json:"rules_evaluated"`
}

type CulturalIntelligence struct {
	Appropriateness    int            `json:"appropriateness"`
	PerMarket          map[string]int `json:"per_market"`
	CulturalReferences []string       `json:"cultural_references"`
	SensitiveTopics    []string       `json:"sensitive_topics"`
	Issues             []string       `json:"issues"`
	Suggestions        []string       `json:"suggestions"`
	LLMEnriched        bool           `json:"llm_enriched"`
}
