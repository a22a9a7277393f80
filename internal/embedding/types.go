package embedding

import "time"

// Purpose tells Voyage how a text will be used. Vectors of different purposes are cached apart.
type Purpose string

const (
	PurposeQuery    Purpose = "query"
	PurposeDocument Purpose = "document"
)

type Config struct {
	// Namespace scopes cache keys, usually the embedding model name.
	Namespace string
	CacheTTL  time.Duration
}

func DefaultConfig() Config {
	return Config{
		Namespace: "voyage",
		CacheTTL:  7 * 24 * time.Hour,
	}
}

// GenerateInput is a segment about to be looked up in translation memory.
type GenerateInput struct {
	Text string
}

type GenerateOutput struct {
	Vector []float32
}

// GenerateManyInput holds translation unit source texts about to be indexed.
type GenerateManyInput struct {
	Texts []string
}

type GenerateManyOutput struct {
	Vectors [][]float32
}
