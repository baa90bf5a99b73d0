package notifications

import (
	"context"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/i3T4AN/Syspulse/report"
	"github.com/i3T4AN/Syspulse/share/email"
)

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	From     string `mapstructure:"from"`
	To       string `mapstructure:"to"`
	TLS      bool   `mapstructure:"tls"`
	AuthUser string `mapstructure:"auth_user"`
	AuthPass string `mapstructure:"auth_pass"`
	NoNoop   bool   `mapstructure:"no_noop"`
}

func (c SMTPConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("smtp host is required")
	}
	if err := email.Validate(c.From); err != nil {
		return fmt.Errorf("smtp from address: %v", err)
	}
	if err := email.Validate(c.To); err != nil {
		return fmt.Errorf("smtp to address: %v", err)
	}
	return nil
}

type mailer struct {
	config SMTPConfig
}

// NewMailer gives you something that is thread safe and can send digest mail.
func NewMailer(config SMTPConfig) (Notifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &mailer{config: config}, nil
}

func (m *mailer) SendDigest(ctx context.Context, digest Digest) error {
	msg := mail.NewMsg()
	if err := msg.From(m.config.From); err != nil {
		return fmt.Errorf("failed to set From address: %s", err)
	}
	if err := msg.To(m.config.To); err != nil {
		return fmt.Errorf("failed to set To address: %s", err)
	}

	msg.Subject(fmt.Sprintf("SysPulse Daily Digest - %s", digest.Timestamp.Format("2006-01-02")))
	msg.SetBodyString(mail.TypeTextPlain, digestBody(digest))

	client, err := m.buildClient()
	if err != nil {
		return fmt.Errorf("failed to create mail client: %s", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail: %s", err)
	}

	return nil
}

func (m *mailer) buildClient() (*mail.Client, error) {
	options := []mail.Option{}

	if m.config.TLS {
		options = append(options, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		options = append(options, mail.WithTLSPolicy(mail.NoTLS))
	}

	if m.config.NoNoop {
		options = append(options, mail.WithoutNoop())
	}

	if m.config.Port > 0 { // if we have Port, don't let library guess but enforce Port
		options = append(options, mail.WithPort(m.config.Port))
	}

	if m.config.AuthUser != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.config.AuthUser),
			mail.WithPassword(m.config.AuthPass),
		)
	}

	return mail.NewClient(m.config.Host, options...)
}

func digestBody(digest Digest) string {
	summary := digest.Summary.Rounded()
	divider := strings.Repeat("=", 50)

	lines := []string{
		"SysPulse Daily Digest",
		divider,
		fmt.Sprintf("Date: %s", digest.Timestamp.Format("2006-01-02")),
		fmt.Sprintf("Period: %s", digest.Period),
		fmt.Sprintf("Records: %d", digest.TotalRecords),
		"",
		"System Statistics Summary:",
		strings.Repeat("-", 50),
	}
	lines = append(lines, metricLines("CPU Usage", summary.CPU, "%")...)
	lines = append(lines, metricLines("Memory Usage", summary.Memory, "%")...)
	lines = append(lines, metricLines("Disk Usage", summary.Disk, "%")...)
	if summary.Network != nil {
		lines = append(lines, metricLines("Network Latency", *summary.Network, "ms")...)
	}
	lines = append(lines, divider, "Generated by SysPulse")

	return strings.Join(lines, "\n")
}

func metricLines(title string, m report.MetricSummary, unit string) []string {
	return []string{
		fmt.Sprintf("%s:", title),
		fmt.Sprintf("  Average: %v%s", m.Avg, unit),
		fmt.Sprintf("  Minimum: %v%s", m.Min, unit),
		fmt.Sprintf("  Maximum: %v%s", m.Max, unit),
		"",
	}
}
