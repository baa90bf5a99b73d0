package daemon

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i3T4AN/Syspulse/notifications"
	"github.com/i3T4AN/Syspulse/share/logger"
)

func TestParseAndValidateDefaults(t *testing.T) {
	cfg := Config{Database: DatabaseConfig{Path: "data/syspulse.db"}}

	require.NoError(t, cfg.ParseAndValidate())
	assert.Equal(t, DefaultInterval, cfg.Monitoring.Interval)
	assert.Equal(t, DefaultDiskPath, cfg.Monitoring.DiskPath)
	assert.Equal(t, DefaultProbeHost, cfg.Monitoring.ProbeHost)
	assert.Equal(t, DefaultProbePort, cfg.Monitoring.ProbePort)
	assert.Equal(t, DefaultProbeTimeout, cfg.Monitoring.ProbeTimeout)
	assert.Equal(t, DefaultDigestPeriod, cfg.Monitoring.DigestPeriod)
}

func TestParseAndValidateErrors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{
			name:   "missing database path",
			mutate: func(c *Config) { c.Database.Path = "" },
		},
		{
			name:   "interval below minimum",
			mutate: func(c *Config) { c.Monitoring.Interval = 500 * time.Millisecond },
		},
		{
			name:   "probe timeout above ceiling",
			mutate: func(c *Config) { c.Monitoring.ProbeTimeout = time.Minute },
		},
		{
			name:   "negative retention",
			mutate: func(c *Config) { c.Monitoring.RetentionDays = -1 },
		},
		{
			name: "unknown notification type",
			mutate: func(c *Config) {
				c.Notifications = notifications.Config{Enabled: true, Type: "carrier-pigeon"}
			},
		},
		{
			name: "email channel without recipient",
			mutate: func(c *Config) {
				c.Notifications = notifications.Config{
					Enabled: true,
					Type:    notifications.ChannelEmail,
					SMTP:    notifications.SMTPConfig{Host: "localhost", From: "syspulse@example.com"},
				}
			},
		},
		{
			name: "webhook channel without url",
			mutate: func(c *Config) {
				c.Notifications = notifications.Config{Enabled: true, Type: notifications.ChannelWebhook}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{Database: DatabaseConfig{Path: "data/syspulse.db"}}
			tc.mutate(&cfg)
			require.Error(t, cfg.ParseAndValidate())
		})
	}
}

func TestDecodeViperConfig(t *testing.T) {
	content := `
[logging]
log_level = "debug"

[database]
path = "/var/lib/syspulse/syspulse.db"

[monitoring]
interval = "30s"
disk_path = "/home"
retention_days = 14

[notifications]
enabled = true
type = "webhook"

[notifications.webhook]
url = "https://example.com/hook"
timeout = "3s"
`
	path := filepath.Join(t.TempDir(), "syspulse.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)

	cfg := &Config{}
	require.NoError(t, DecodeViperConfig(v, cfg))
	require.NoError(t, cfg.ParseAndValidate())

	assert.Equal(t, logger.LogLevelDebug, cfg.Logging.LogLevel)
	assert.Equal(t, "/var/lib/syspulse/syspulse.db", cfg.Database.Path)
	assert.Equal(t, 30*time.Second, cfg.Monitoring.Interval)
	assert.Equal(t, "/home", cfg.Monitoring.DiskPath)
	assert.EqualValues(t, 14, cfg.Monitoring.RetentionDays)
	assert.Equal(t, notifications.ChannelWebhook, cfg.Notifications.Type)
	assert.Equal(t, "https://example.com/hook", cfg.Notifications.Webhook.URL)
	assert.Equal(t, 3*time.Second, cfg.Notifications.Webhook.Timeout)
}
