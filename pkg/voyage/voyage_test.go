package voyage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedOrdersByIndex(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, InputTypeDocument, req.InputType)
		_ = json.NewEncoder(w).Encode(Response{Data: []Embedding{
			{Index: 1, Embedding: []float32{2}},
			{Index: 0, Embedding: []float32{1}},
		}})
	}))
	defer srv.Close()

	v, err := NewVoyage(VoyageConfig{APIKey: "key", Endpoint: srv.URL})
	require.NoError(t, err)

	got, err := v.Embed(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1}, {2}}, got)
}

func TestEmbedErrors(t *testing.T) {
	_, err := NewVoyage(VoyageConfig{})
	assert.ErrorIs(t, err, ErrAPIKeyRequired)

	v, err := NewVoyage(VoyageConfig{APIKey: "key", Endpoint: "http://127.0.0.1:0"})
	require.NoError(t, err)
	_, err = v.Embed(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}
