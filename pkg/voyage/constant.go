package voyage

import (
	"errors"
	"time"
)

const (
	Endpoint = "https://api.voyageai.com/v1/embeddings"
	// Model produces 1024 dimensional vectors.
	Model      = "voyage-3"
	Dimensions = 1024

	InputTypeDocument = "document"
	InputTypeQuery    = "query"

	defaultTimeout   = 30 * time.Second
	defaultRetries   = 3
	defaultRetryWait = time.Second
)

var (
	ErrAPIKeyRequired = errors.New("voyage: API key is required")
	ErrEmptyInput     = errors.New("voyage: no texts to embed")
)
