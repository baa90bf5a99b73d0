package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/i3T4AN/Syspulse/daemon"
	"github.com/i3T4AN/Syspulse/monitor"
	"github.com/i3T4AN/Syspulse/monitoring"
	"github.com/i3T4AN/Syspulse/notifications"
	"github.com/i3T4AN/Syspulse/report"
	"github.com/i3T4AN/Syspulse/share/logger"
	"github.com/i3T4AN/Syspulse/share/models"
)

var (
	RootCmd = &cobra.Command{
		Use:           "syspulse",
		Short:         "SysPulse - system monitoring and reporting daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Usage()
			return fmt.Errorf("a subcommand is required")
		},
	}

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the monitoring daemon",
		RunE:  runStart,
	}

	collectCmd = &cobra.Command{
		Use:   "collect",
		Short: "Collect one measurement and store it",
		RunE:  runCollect,
	}

	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Generate a report from stored measurements",
		RunE:  runReport,
	}

	cfgPath      string
	reportFormat string
	reportHours  int
	reportOutput string

	viperCfg *viper.Viper
	cfg      = &daemon.Config{}
)

func init() {
	RootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file path")
	startCmd.Flags().Int("interval", 0, "collection interval in seconds (default: 60)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "text", "report format: json|csv|text")
	reportCmd.Flags().IntVar(&reportHours, "hours", 0, "report for last N hours (default: all data)")
	reportCmd.Flags().StringVar(&reportOutput, "output", "", "output file (default: stdout)")

	RootCmd.AddCommand(startCmd, collectCmd, reportCmd)

	viperCfg = viper.New()
	viperCfg.SetConfigType("toml")

	viperCfg.SetDefault("logging.log_level", "info")
	viperCfg.SetDefault("database.path", "data/syspulse.db")

	_ = viperCfg.BindPFlag("monitoring.interval_seconds", startCmd.Flags().Lookup("interval"))
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func tryDecodeConfig() error {
	if cfgPath != "" {
		viperCfg.SetConfigFile(cfgPath)
	} else {
		viperCfg.AddConfigPath(".")
		viperCfg.SetConfigName("syspulse.conf")
	}

	if err := daemon.DecodeViperConfig(viperCfg, cfg); err != nil {
		return err
	}

	// --interval is given in plain seconds, matching the original CLI surface
	if secs := viperCfg.GetInt("monitoring.interval_seconds"); secs > 0 {
		cfg.Monitoring.Interval = time.Duration(secs) * time.Second
	}

	return cfg.ParseAndValidate()
}

type app struct {
	log      *logger.Logger
	provider monitoring.DBProvider
	service  monitoring.Service
}

func bootstrap() (*app, error) {
	if err := tryDecodeConfig(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.LogOutput.Start(); err != nil {
		return nil, err
	}

	log := logger.NewLogger("syspulse", cfg.Logging.LogOutput, cfg.Logging.LogLevel)

	provider, err := monitoring.NewSqliteProvider(cfg.Database.Path, log.Fork("monitoring"))
	if err != nil {
		return nil, err
	}

	return &app{
		log:      log,
		provider: provider,
		service:  monitoring.NewService(provider),
	}, nil
}

func (a *app) shutdown() {
	_ = a.provider.Close()
	cfg.Logging.LogOutput.Shutdown()
}

func newMonitor(a *app) *monitor.Monitor {
	prober := monitor.NewTCPProber(cfg.Monitoring.ProbeHost, cfg.Monitoring.ProbePort, cfg.Monitoring.ProbeTimeout)
	return monitor.NewMonitor(a.log.Fork("monitor"), monitor.Config{
		DiskPath:     cfg.Monitoring.DiskPath,
		ProbeHost:    cfg.Monitoring.ProbeHost,
		ProbePort:    cfg.Monitoring.ProbePort,
		ProbeTimeout: cfg.Monitoring.ProbeTimeout,
	}, monitor.NewSystemInfo(), prober)
}

func runStart(*cobra.Command, []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.shutdown()

	notifier, err := notifications.NewNotifier(cfg.Notifications)
	if err != nil {
		return err
	}

	d := daemon.New(a.log.Fork("daemon"), cfg.Monitoring, newMonitor(a), a.service, notifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	d.Start(ctx)
	return nil
}

func runCollect(*cobra.Command, []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.shutdown()

	ctx := context.Background()
	measurement := newMonitor(a).CreateMeasurement(ctx)
	if err := a.service.SaveMeasurement(ctx, measurement); err != nil {
		return err
	}

	fmt.Printf("CPU: %.2f%%\n", measurement.CPUPercent)
	fmt.Printf("Memory: %.2f%%\n", measurement.MemoryPercent)
	fmt.Printf("Disk: %.2f%%\n", measurement.DiskPercent)
	if measurement.NetworkLatencyMS != nil {
		fmt.Printf("Network Latency: %.2fms\n", *measurement.NetworkLatencyMS)
	} else {
		fmt.Println("Network Latency: N/A")
	}
	return nil
}

func runReport(*cobra.Command, []string) error {
	format, err := report.ParseFormat(reportFormat)
	if err != nil {
		return err
	}

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.shutdown()

	ctx := context.Background()
	var measurements []models.Measurement
	if reportHours > 0 {
		measurements, err = a.service.MeasurementsSince(ctx, time.Duration(reportHours)*time.Hour)
	} else {
		measurements, err = a.service.AllMeasurements(ctx)
	}
	if err != nil {
		return err
	}

	rendered, err := report.Render(measurements, format, time.Now())
	if err != nil {
		return err
	}

	if reportOutput != "" {
		if err := os.WriteFile(reportOutput, []byte(rendered), 0644); err != nil {
			return err
		}
		fmt.Printf("Report saved to %s\n", reportOutput)
		return nil
	}
	fmt.Println(rendered)
	return nil
}
