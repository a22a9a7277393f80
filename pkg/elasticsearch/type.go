package elasticsearch

import (
	"encoding/json"

	es "github.com/elastic/go-elasticsearch/v8"
)

// ElasticsearchConfig configures the client.
type ElasticsearchConfig struct {
	Addresses []string
	Username  string
	Password  string
}

// Document is one document to index.
type Document struct {
	ID   string
	Body any
}

// Hit is one search hit with its raw source.
type Hit struct {
	ID     string          `json:"_id"`
	Score  float64         `json:"_score"`
	Source json.RawMessage `json:"_source"`
}

type searchResponse struct {
	Hits struct {
		Hits []Hit `json:"hits"`
	} `json:"hits"`
}

type bulkResponse struct {
	Errors bool `json:"errors"`
	Items  []map[string]struct {
		ID     string `json:"_id"`
		Status int    `json:"status"`
		Error  *struct {
			Type   string `json:"type"`
			Reason string `json:"reason"`
		} `json:"error,omitempty"`
	} `json:"items"`
}

type esImpl struct {
	client *es.Client
}
