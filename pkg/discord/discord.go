package discord

import (
	"context"
	"fmt"
	"net/http"
	"time"

	pkgHttp "localization-srv/pkg/http"
)

func newHTTPClient(cfg Config) pkgHttp.IClient {
	return pkgHttp.NewClient(pkgHttp.ClientConfig{
		Timeout:   cfg.Timeout,
		Retries:   cfg.RetryCount,
		RetryWait: cfg.RetryDelay,
	})
}

func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf(webhookURLFormat, d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  truncate(content, maxContentLength),
		Username: d.config.DefaultUsername,
	})
}

func (d *discordImpl) SendEmbed(ctx context.Context, opts MessageOptions) error {
	return d.send(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds: []Embed{{
			Title:       opts.Title,
			Description: truncate(opts.Description, maxDescriptionLength),
			Color:       colorFor(opts.Type),
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			Fields:      opts.Fields,
			Footer:      &EmbedFooter{Text: d.config.DefaultUsername},
		}},
	})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	opts := MessageOptions{Type: MessageTypeError, Title: title, Description: description}
	if err != nil {
		opts.Fields = []EmbedField{{Name: "error", Value: truncate(err.Error(), 1000)}}
	}
	return d.SendEmbed(ctx, opts)
}

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       "Bug report",
		Description: fmt.Sprintf("```%s```", message),
	})
}

func (d *discordImpl) Close() error {
	return nil
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	body, status, err := d.client.Post(ctx, d.GetWebhookURL(), payload, nil)
	if err != nil {
		d.l.Warnf(ctx, "discord.send: %v", err)
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		d.l.Warnf(ctx, "discord.send: status %d: %s", status, string(body))
		return fmt.Errorf("discord: webhook returned status %d", status)
	}
	return nil
}

func colorFor(t MessageType) int {
	switch t {
	case MessageTypeSuccess:
		return colorSuccess
	case MessageTypeWarning:
		return colorWarning
	case MessageTypeError:
		return colorError
	default:
		return colorInfo
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
