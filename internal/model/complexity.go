package model

// ComplexityMetrics is the adaptation effort estimate for one content unit across target markets.
type ComplexityMetrics struct {
	TextComplexityScore      int                 `json:"text_complexity_score"`
	CulturalComplexityScore  int                 `json:"cultural_complexity_score"`
	TechnicalComplexityScore int                 `json:"technical_complexity_score"`
	VisualComplexityScore    int                 `json:"visual_complexity_score"`
	OverallComplexityScore   int                 `json:"overall_complexity_score"`
	EffortMultiplier         float64             `json:"effort_multiplier"`
	TimelineImpactDays       int                 `json:"timeline_impact_days"`
	CostImpactPercentage     int                 `json:"cost_impact_percentage"`
	ComplexityBreakdown      ComplexityBreakdown `json:"complexity_breakdown"`
	Factors                  ComplexityFactors   `json:"factors"`
}

type ComplexityBreakdown struct {
	PrimaryDrivers       []string `json:"primary_drivers"`
	SecondaryFactors     []string `json:"secondary_factors"`
	MitigationStrategies []string `json:"mitigation_strategies"`
}

// ComplexityFactors are the observations the sub-scores were derived from.
type ComplexityFactors struct {
	SentenceCount          int      `json:"sentence_count"`
	WordCount              int      `json:"word_count"`
	AvgWordsPerSentence    float64  `json:"avg_words_per_sentence"`
	ReadabilityScore       float64  `json:"readability_score"`
	TechnicalTerms         []string `json:"technical_terms"`
	MedicalTerms           []string `json:"medical_terms"`
	CulturalReferences     []string `json:"cultural_references"`
	SensitiveContent       []string `json:"sensitive_content"`
	MarketComplexityNotes  []string `json:"market_complexity_notes"`
	FormatRequirements     []string `json:"format_requirements"`
	ChannelComplexityNotes []string `json:"channel_complexity_notes"`
	LayoutComplexityNotes  []string `json:"layout_complexity_notes"`
}
