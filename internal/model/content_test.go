package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextPlain(t *testing.T) {
	assert.Equal(t, "Our drug reduces symptoms.", PlainText("Our drug reduces symptoms.").ExtractText())
	assert.True(t, PlainText("   \n").IsEmpty())
}

func TestExtractTextStructuredOrder(t *testing.T) {
	c := Structured(map[string]any{
		"zeta":       "Trailing note.",
		"body":       "Body copy.",
		"headline":   "Headline here",
		"asset_type": "email",
		"sections": []any{
			map[string]any{"heading": "Dosing", "body": "Take once daily."},
			"Loose section.",
		},
		"alpha":       "Leading extra.",
		"image_count": 3,
		"cta":         []string{"Learn more", ""},
	})

	want := "Headline here\nBody copy.\nTake once daily.\nDosing\nLoose section.\nLearn more\nLeading extra.\nTrailing note."
	assert.Equal(t, want, c.ExtractText())
	// deterministic across calls
	assert.Equal(t, c.ExtractText(), c.ExtractText())
}

func TestContentJSON(t *testing.T) {
	var c Content
	require.NoError(t, json.Unmarshal([]byte(`"hello"`), &c))
	assert.Equal(t, ContentKindPlainText, c.Kind)
	assert.Equal(t, "hello", c.Text)

	require.NoError(t, json.Unmarshal([]byte(`{"headline":"Hi","image_count":2}`), &c))
	assert.Equal(t, ContentKindStructured, c.Kind)
	v, ok := c.Field("image_count")
	assert.True(t, ok)
	assert.Equal(t, float64(2), v)

	assert.Error(t, json.Unmarshal([]byte(`42`), &c))

	out, err := json.Marshal(PlainText("x"))
	require.NoError(t, err)
	assert.JSONEq(t, `"x"`, string(out))
}
