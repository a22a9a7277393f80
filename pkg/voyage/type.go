package voyage

import pkgHttp "localization-srv/pkg/http"

// VoyageConfig configures the Voyage client. Endpoint and Model fall back to the package defaults.
type VoyageConfig struct {
	APIKey   string
	Model    string
	Endpoint string
}

type voyageImpl struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient pkgHttp.IClient
}

type Request struct {
	Input     []string `json:"input"`
	Model     string   `json:"model"`
	InputType string   `json:"input_type,omitempty"`
}

type Response struct {
	Object string      `json:"object"`
	Data   []Embedding `json:"data"`
	Model  string      `json:"model"`
	Usage  Usage       `json:"usage"`
}

type Embedding struct {
	Object    string    `json:"object"`
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}

type Usage struct {
	TotalTokens int `json:"total_tokens"`
}
