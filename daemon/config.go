package daemon

import (
	"fmt"
	"time"

	"github.com/i3T4AN/Syspulse/notifications"
	"github.com/i3T4AN/Syspulse/share/logger"
)

const (
	DefaultInterval      = 60 * time.Second
	DefaultDigestPeriod  = 24 * time.Hour
	DefaultDiskPath      = "/"
	DefaultProbeHost     = "8.8.8.8"
	DefaultProbePort     = "53"
	DefaultProbeTimeout  = 5 * time.Second
	DefaultRetentionDays = 0 // retention sweep disabled
)

type LogConfig struct {
	LogOutput logger.LogOutput `mapstructure:"log_file"`
	LogLevel  logger.LogLevel  `mapstructure:"log_level"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type MonitoringConfig struct {
	Interval      time.Duration `mapstructure:"interval"`
	DiskPath      string        `mapstructure:"disk_path"`
	ProbeHost     string        `mapstructure:"probe_host"`
	ProbePort     string        `mapstructure:"probe_port"`
	ProbeTimeout  time.Duration `mapstructure:"probe_timeout"`
	RetentionDays int64         `mapstructure:"retention_days"`
	DigestPeriod  time.Duration `mapstructure:"digest_period"`
}

type Config struct {
	Logging       LogConfig            `mapstructure:"logging"`
	Database      DatabaseConfig       `mapstructure:"database"`
	Monitoring    MonitoringConfig     `mapstructure:"monitoring"`
	Notifications notifications.Config `mapstructure:"notifications"`
}

// ParseAndValidate fills defaults and rejects values the daemon cannot run
// with. A config error here is fatal at startup; nothing re-validates mid-run.
func (c *Config) ParseAndValidate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}

	if c.Monitoring.Interval == 0 {
		c.Monitoring.Interval = DefaultInterval
	}
	if c.Monitoring.Interval < time.Second {
		return fmt.Errorf("monitoring interval %s is below the 1s minimum", c.Monitoring.Interval)
	}
	if c.Monitoring.DiskPath == "" {
		c.Monitoring.DiskPath = DefaultDiskPath
	}
	if c.Monitoring.ProbeHost == "" {
		c.Monitoring.ProbeHost = DefaultProbeHost
	}
	if c.Monitoring.ProbePort == "" {
		c.Monitoring.ProbePort = DefaultProbePort
	}
	if c.Monitoring.ProbeTimeout == 0 {
		c.Monitoring.ProbeTimeout = DefaultProbeTimeout
	}
	if c.Monitoring.ProbeTimeout > DefaultProbeTimeout {
		return fmt.Errorf("probe timeout %s exceeds the %s ceiling", c.Monitoring.ProbeTimeout, DefaultProbeTimeout)
	}
	if c.Monitoring.RetentionDays < 0 {
		return fmt.Errorf("retention_days must not be negative")
	}
	if c.Monitoring.DigestPeriod == 0 {
		c.Monitoring.DigestPeriod = DefaultDigestPeriod
	}
	if c.Monitoring.DigestPeriod < time.Minute {
		return fmt.Errorf("digest period %s is below the 1m minimum", c.Monitoring.DigestPeriod)
	}

	if c.Notifications.Enabled {
		// surface channel misconfiguration at startup, not at the first digest
		if _, err := notifications.NewNotifier(c.Notifications); err != nil {
			return err
		}
	}

	return nil
}
