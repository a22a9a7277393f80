package tm

import (
	"io"
	"time"

	"localization-srv/internal/model"
)

// Config holds the matcher thresholds and limits.
type Config struct {
	BrandTerminologyMin    int
	CulturalSensitivityMin int
	// Ranking blend for non regulated segments.
	MatchWeight float64
	BrandWeight float64
	// Confidence blend used when a source did not supply one.
	ConfidenceMatchWeight      float64
	ConfidenceBrandWeight      float64
	ConfidenceRegulatoryWeight float64

	MatchTimeout time.Duration
	// MatchLimit bounds the candidates each source returns per query. Ranking keeps them all.
	MatchLimit   int
	Concurrency  int
	CacheTTL     time.Duration
}

func DefaultConfig() Config {
	return Config{
		BrandTerminologyMin:        80,
		CulturalSensitivityMin:     70,
		MatchWeight:                0.6,
		BrandWeight:                0.4,
		ConfidenceMatchWeight:      0.5,
		ConfidenceBrandWeight:      0.3,
		ConfidenceRegulatoryWeight: 0.2,
		MatchTimeout:               3 * time.Second,
		MatchLimit:                 10,
		Concurrency:                8,
		CacheTTL:                   10 * time.Minute,
	}
}

type UpsertInput struct {
	Units []model.TMUnit
}

type UpsertOutput struct {
	IDs []string
}

type ImportInput struct {
	Reader io.Reader
	// Defaults applied to rows that leave the column empty.
	DefaultBrandID        string
	DefaultSourceLanguage string
	DefaultTargetLanguage string
}

type ImportOutput struct {
	Imported int
	Skipped  int
	IDs      []string
}
