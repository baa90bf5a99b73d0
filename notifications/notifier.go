package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/i3T4AN/Syspulse/report"
)

// Digest is the daily summary handed to a notification channel.
type Digest struct {
	Timestamp    time.Time      `json:"timestamp"`
	Period       string         `json:"period"`
	TotalRecords int            `json:"total_records"`
	Summary      report.Summary `json:"summary"`
}

// Notifier delivers a digest over one configured channel. A send failure is
// a recoverable error for the caller, never a crash.
type Notifier interface {
	SendDigest(ctx context.Context, digest Digest) error
}

type ChannelType string

const (
	ChannelEmail   ChannelType = "email"
	ChannelWebhook ChannelType = "webhook"
)

// Config selects one notification channel. Only the section matching Type is
// consulted; it is validated when the notifier is built, so a misconfigured
// channel fails at startup rather than at the first digest.
type Config struct {
	Enabled bool          `mapstructure:"enabled"`
	Type    ChannelType   `mapstructure:"type"`
	SMTP    SMTPConfig    `mapstructure:"smtp"`
	Webhook WebhookConfig `mapstructure:"webhook"`
}

// NewNotifier builds the channel selected by the config. Returns nil if
// notifications are disabled.
func NewNotifier(config Config) (Notifier, error) {
	if !config.Enabled {
		return nil, nil
	}

	switch config.Type {
	case ChannelEmail:
		return NewMailer(config.SMTP)
	case ChannelWebhook:
		return NewWebhookNotifier(config.Webhook)
	}
	return nil, fmt.Errorf("unknown notification type: %q", config.Type)
}
