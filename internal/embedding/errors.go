package embedding

import "errors"

var (
	ErrEmptyText           = errors.New("embedding: text to embed is empty")
	ErrEmptyTexts          = errors.New("embedding: no texts to embed")
	ErrNoVectorReturned    = errors.New("embedding: voyage returned no vector")
	ErrMismatchVectorCount = errors.New("embedding: voyage returned a different number of vectors")
)
