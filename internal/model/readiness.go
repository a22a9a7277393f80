package model

// QualityFactors are the 0-100 inputs shared by quality prediction and risk assessment.
type QualityFactors struct {
	ContentComplexity     int `json:"content_complexity"`
	CulturalSensitivity   int `json:"cultural_sensitivity"`
	RegulatoryComplexity  int `json:"regulatory_complexity"`
	TranslationComplexity int `json:"translation_complexity"`
	BrandConsistency      int `json:"brand_consistency"`
}

type QualityPrediction struct {
	Market       string         `json:"market"`
	OverallScore int            `json:"overall_score"`
	Factors      QualityFactors `json:"factors"`
	RiskFactors  []string       `json:"risk_factors"`
	Mitigations  []string       `json:"mitigations"`
}

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

type RiskAssessment struct {
	Market      string         `json:"market"`
	OverallRisk int            `json:"overall_risk"`
	RiskLevel   RiskLevel      `json:"risk_level"`
	Factors     QualityFactors `json:"factors"`
	RiskFactors []string       `json:"risk_factors"`
	Mitigations []string       `json:"mitigations"`
}

type MarketReadiness struct {
	Market  string            `json:"market"`
	Quality QualityPrediction `json:"quality"`
	Risk    RiskAssessment    `json:"risk"`
	Ready   bool              `json:"ready"`
}
