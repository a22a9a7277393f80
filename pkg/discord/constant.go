package discord

import (
	"errors"
	"time"
)

const (
	webhookURLFormat = "https://discord.com/api/webhooks/%s/%s"

	// Discord rejects descriptions longer than 4096 characters.
	maxDescriptionLength = 4000
	maxContentLength     = 1900

	colorInfo    = 0x3498DB
	colorSuccess = 0x2ECC71
	colorWarning = 0xF1C40F
	colorError   = 0xE74C3C
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// DefaultConfig returns the default delivery settings.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		RetryCount:      2,
		RetryDelay:      time.Second,
		DefaultUsername: "localization-srv",
	}
}
