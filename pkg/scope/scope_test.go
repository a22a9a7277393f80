package scope

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localization-srv/internal/model"
)

func TestScopeHeaderRoundTrip(t *testing.T) {
	in := model.Scope{UserID: "u-1", WorkspaceID: "ws-9"}
	header, err := CreateScopeHeader(in)
	require.NoError(t, err)

	out, err := ParseScopeHeader(header)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParseScopeHeader(t *testing.T) {
	sc, err := ParseScopeHeader("")
	require.NoError(t, err)
	assert.True(t, sc.IsAnonymous())

	_, err = ParseScopeHeader("%%%")
	assert.Error(t, err)

	// {"workspace_id":"ws"}
	sc, err = ParseScopeHeader("eyJ3b3Jrc3BhY2VfaWQiOiJ3cyJ9")
	require.NoError(t, err)
	assert.Equal(t, model.AnonymousUserID, sc.UserID)
	assert.Equal(t, "ws", sc.WorkspaceID)
}

func TestGetScopeFromContext(t *testing.T) {
	assert.Equal(t, Anonymous(), GetScopeFromContext(context.Background()))

	ctx := SetScopeToContext(context.Background(), model.Scope{UserID: "u-2"})
	assert.Equal(t, "u-2", GetScopeFromContext(ctx).UserID)
}
