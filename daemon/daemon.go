package daemon

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/i3T4AN/Syspulse/monitoring"
	"github.com/i3T4AN/Syspulse/notifications"
	"github.com/i3T4AN/Syspulse/report"
	"github.com/i3T4AN/Syspulse/scheduler"
	"github.com/i3T4AN/Syspulse/share/logger"
	"github.com/i3T4AN/Syspulse/share/models"
)

type State string

const (
	StateIdle       State = "idle"
	StateCollecting State = "collecting"
	StateStored     State = "stored"
	StateDigesting  State = "digesting"
	StateStopped    State = "stopped"
)

// Collector produces one measurement per call. Probe failures are folded
// into the measurement (nil latency, zero values), never returned as errors.
type Collector interface {
	CreateMeasurement(ctx context.Context) *models.Measurement
}

// Daemon is the collection loop: one tick collects a measurement, stores it,
// and when due, sends the digest and runs the retention sweep. All state is
// written by the loop goroutine only.
type Daemon struct {
	log          *logger.Logger
	collector    Collector
	service      monitoring.Service
	notifier     notifications.Notifier
	cleanup      *monitoring.CleanupTask
	digestPeriod time.Duration
	interval     time.Duration
	now          func() time.Time

	state       State
	lastDigest  time.Time
	lastCleanup time.Time
}

func New(log *logger.Logger, cfg MonitoringConfig, collector Collector, service monitoring.Service, notifier notifications.Notifier) *Daemon {
	d := &Daemon{
		log:          log,
		collector:    collector,
		service:      service,
		notifier:     notifier,
		digestPeriod: cfg.DigestPeriod,
		interval:     cfg.Interval,
		now:          time.Now,
		state:        StateIdle,
	}
	if cfg.RetentionDays > 0 {
		d.cleanup = monitoring.NewCleanupTask(log.Fork("cleanup"), service, cfg.RetentionDays)
	}
	d.lastDigest = d.now()
	d.lastCleanup = d.now()
	return d
}

// Start blocks until ctx is cancelled, ticking at the configured interval.
// Cancellation is checked between ticks only; an in-flight tick always runs
// to completion, so storage writes are never torn.
func (d *Daemon) Start(ctx context.Context) {
	d.log.Infof("daemon started (interval: %s)", d.interval)
	scheduler.Run(ctx, d.log.Fork("scheduler"), d, d.interval)
	d.state = StateStopped
	d.log.Infof("daemon stopped")
}

// Run executes a single tick. Any error is reported to the scheduler, which
// logs it and keeps ticking: a single bad sample must not kill the daemon.
func (d *Daemon) Run(ctx context.Context) error {
	defer func() {
		if d.state != StateStopped {
			d.state = StateIdle
		}
	}()

	d.state = StateCollecting
	measurement := d.collector.CreateMeasurement(ctx)

	if err := d.service.SaveMeasurement(ctx, measurement); err != nil {
		return errors.WithMessage(err, "failed to store measurement")
	}
	d.state = StateStored
	d.log.Debugf("measurement %d stored", measurement.ID)

	if d.notifier != nil && d.now().Sub(d.lastDigest) >= d.digestPeriod {
		d.state = StateDigesting
		if err := d.sendDigest(ctx); err != nil {
			// keep lastDigest so the digest is retried next tick instead of
			// silently skipping a whole period
			d.log.Errorf("failed to send digest: %v", err)
		} else {
			d.lastDigest = d.now()
		}
	}

	if d.cleanup != nil && d.now().Sub(d.lastCleanup) >= d.digestPeriod {
		if err := d.cleanup.Run(ctx); err != nil {
			d.log.Errorf("%v", err)
		} else {
			d.lastCleanup = d.now()
		}
	}

	return nil
}

func (d *Daemon) sendDigest(ctx context.Context) error {
	measurements, err := d.service.MeasurementsSince(ctx, d.digestPeriod)
	if err != nil {
		return errors.WithMessage(err, "failed to query digest period")
	}

	digest := notifications.Digest{
		Timestamp:    d.now(),
		Period:       fmt.Sprintf("last_%dh", int(d.digestPeriod.Hours())),
		TotalRecords: len(measurements),
		Summary:      report.Summarize(measurements),
	}
	if err := d.notifier.SendDigest(ctx, digest); err != nil {
		return err
	}

	d.log.Infof("digest sent (%d records)", digest.TotalRecords)
	return nil
}

func (d *Daemon) State() State {
	return d.state
}
