package scoring

import "localization-srv/internal/lexicon"

// Step awards Points when a value crosses Threshold. Direction depends on the table using it.
type Step struct {
	Threshold float64
	Points    int
}

type EffortStep struct {
	Above      int
	Multiplier float64
}

// Weights blend the four complexity sub-scores.
type Weights struct {
	Text      float64
	Cultural  float64
	Technical float64
	Visual    float64
}

// FactorWeights blend quality factors.
type FactorWeights struct {
	Content     float64
	Cultural    float64
	Regulatory  float64
	Translation float64
	// Brand weighs the brand gap, 100 minus brand consistency.
	Brand float64
}

// Config holds every scoring weight and threshold.
type Config struct {
	// Text. Above tables are ordered from the highest threshold down.
	WordsPerSentenceAbove []Step
	TechnicalTermsAbove   []Step
	MedicalTermsAbove     []Step
	// ReadabilityBelow is ordered from the lowest threshold up.
	ReadabilityBelow   []Step
	ReadabilityBase    float64
	ReadabilityPerWord float64

	// Cultural.
	CulturalReferenceWeight int
	SensitiveContentWeight  int
	MarketNoteWeight        int
	MarketNotes             map[lexicon.Region]string
	GenericMarketNote       string
	// GenericMarketNoteAbove is the market count above which the generic note applies.
	GenericMarketNoteAbove int

	// Technical.
	AssetTypeBase           map[string]int
	FormatRequirementWeight int
	ChannelNoteWeight       int

	// Visual.
	LayoutNoteWeight int
	ManyImagesAbove  int

	// Aggregate and impact.
	Weights                  Weights
	EffortSteps              []EffortStep
	DefaultEffortMultiplier  float64
	TimelineDivisor          float64
	LanguagesPerTimelineUnit float64
	CostFactor               float64
	PrimaryDriverMin         int

	// Quality and risk.
	QualityWeights          FactorWeights
	QualityDifficultyFactor float64
	RiskWeights             FactorWeights
	ScoreFloor              int
	ScoreCeiling            int
	RiskHighMin             int
	RiskMediumMin           int
	ReadyQualityMin         int
	RiskFactorMin           int
	BrandConsistencyMin     int

	RegulatoryComplexity        map[lexicon.Region]int
	DefaultRegulatoryComplexity int
	DefaultBrandConsistency     int
}

func DefaultConfig() Config {
	return Config{
		WordsPerSentenceAbove: []Step{{25, 30}, {18, 20}, {12, 10}},
		TechnicalTermsAbove:   []Step{{15, 25}, {8, 15}, {3, 8}},
		MedicalTermsAbove:     []Step{{10, 20}, {5, 12}, {2, 6}},
		ReadabilityBelow:      []Step{{30, 20}, {50, 12}, {70, 5}},
		ReadabilityBase:       100,
		ReadabilityPerWord:    2,

		CulturalReferenceWeight: 10,
		SensitiveContentWeight:  15,
		MarketNoteWeight:        5,
		MarketNotes:             lexicon.DefaultMarketNotes(),
		GenericMarketNote:       "Multiple market complexity: coordinate review across many markets",
		GenericMarketNoteAbove:  5,

		AssetTypeBase: map[string]int{
			"interactive": 30,
			"video":       25,
			"animation":   35,
		},
		FormatRequirementWeight: 8,
		ChannelNoteWeight:       6,

		LayoutNoteWeight: 12,
		ManyImagesAbove:  5,

		Weights: Weights{Text: 0.30, Cultural: 0.25, Technical: 0.25, Visual: 0.20},
		EffortSteps: []EffortStep{
			{Above: 80, Multiplier: 2.5},
			{Above: 60, Multiplier: 2.0},
			{Above: 40, Multiplier: 1.5},
			{Above: 20, Multiplier: 1.2},
		},
		DefaultEffortMultiplier:  1.0,
		TimelineDivisor:          10,
		LanguagesPerTimelineUnit: 3,
		CostFactor:               0.8,
		PrimaryDriverMin:         50,

		QualityWeights:          FactorWeights{Content: 0.25, Cultural: 0.20, Regulatory: 0.20, Translation: 0.20, Brand: 0.15},
		QualityDifficultyFactor: 0.8,
		RiskWeights:             FactorWeights{Content: 0.20, Cultural: 0.25, Regulatory: 0.30, Translation: 0.15, Brand: 0.10},
		ScoreFloor:              20,
		ScoreCeiling:            100,
		RiskHighMin:             70,
		RiskMediumMin:           45,
		ReadyQualityMin:         70,
		RiskFactorMin:           60,
		BrandConsistencyMin:     80,

		RegulatoryComplexity:        lexicon.DefaultRegulatoryComplexity(),
		DefaultRegulatoryComplexity: 50,
		DefaultBrandConsistency:     80,
	}
}
