package postgre

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIdentity(t *testing.T) {
	got, err := decodeIdentity(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = decodeIdentity([]byte(`{"primary_color":"#0055A4"}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"primary_color": "#0055A4"}, got)

	_, err = decodeIdentity([]byte(`[1,2]`))
	assert.Error(t, err)
}
