package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localization-srv/pkg/log"
)

func TestNewRequiresWebhook(t *testing.T) {
	_, err := New(log.NewNop(), &DiscordWebhook{ID: "1"})
	assert.ErrorIs(t, err, errWebhookRequired)

	d, err := New(log.NewNop(), &DiscordWebhook{ID: "1", Token: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "https://discord.com/api/webhooks/1/abc", d.GetWebhookURL())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdef", 2))
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, colorError, colorFor(MessageTypeError))
	assert.Equal(t, colorInfo, colorFor("other"))
}
