package monitoring

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/i3T4AN/Syspulse/share/models"
)

// ErrInvalidMeasurement marks a measurement rejected by schema-shape
// validation before it reaches the store.
var ErrInvalidMeasurement = errors.New("invalid measurement")

type Service interface {
	SaveMeasurement(ctx context.Context, measurement *models.Measurement) error
	AllMeasurements(ctx context.Context) ([]models.Measurement, error)
	MeasurementsSince(ctx context.Context, period time.Duration) ([]models.Measurement, error)
	DeleteMeasurementsOlderThanDays(ctx context.Context, days int64) (int64, error)
	CountMeasurements(ctx context.Context) (int64, error)
}

type monitoringService struct {
	DBProvider DBProvider
}

func NewService(dbProvider DBProvider) Service {
	return &monitoringService{DBProvider: dbProvider}
}

func (s *monitoringService) SaveMeasurement(ctx context.Context, measurement *models.Measurement) error {
	if err := Validate(measurement); err != nil {
		return err
	}
	return s.DBProvider.CreateMeasurement(ctx, measurement)
}

func (s *monitoringService) AllMeasurements(ctx context.Context) ([]models.Measurement, error) {
	return s.DBProvider.ListAll(ctx)
}

func (s *monitoringService) MeasurementsSince(ctx context.Context, period time.Duration) ([]models.Measurement, error) {
	since := time.Now().Add(-period).Unix()
	return s.DBProvider.ListSince(ctx, since)
}

func (s *monitoringService) DeleteMeasurementsOlderThanDays(ctx context.Context, days int64) (int64, error) {
	cutoff := time.Now().Unix() - (days * 24 * 3600)
	return s.DBProvider.DeleteOlderThan(ctx, cutoff)
}

func (s *monitoringService) CountMeasurements(ctx context.Context) (int64, error) {
	return s.DBProvider.Count(ctx)
}

// Validate guards the schema shape of a measurement. Semantic plausibility
// (e.g. whether a reading makes sense for the host) is the collector's job.
func Validate(m *models.Measurement) error {
	if m == nil {
		return errors.Wrap(ErrInvalidMeasurement, "measurement is nil")
	}
	if m.Timestamp <= 0 {
		return errors.Wrap(ErrInvalidMeasurement, "timestamp is required")
	}
	if m.CPUPercent < 0 || m.CPUPercent > 100 {
		return errors.Wrapf(ErrInvalidMeasurement, "cpu_percent %v out of range", m.CPUPercent)
	}
	if m.MemoryPercent < 0 || m.MemoryPercent > 100 {
		return errors.Wrapf(ErrInvalidMeasurement, "memory_percent %v out of range", m.MemoryPercent)
	}
	if m.DiskPercent < 0 || m.DiskPercent > 100 {
		return errors.Wrapf(ErrInvalidMeasurement, "disk_percent %v out of range", m.DiskPercent)
	}
	if m.MemoryUsedBytes > m.MemoryTotalBytes {
		return errors.Wrap(ErrInvalidMeasurement, "memory_used_bytes exceeds memory_total_bytes")
	}
	if m.DiskUsedBytes > m.DiskTotalBytes {
		return errors.Wrap(ErrInvalidMeasurement, "disk_used_bytes exceeds disk_total_bytes")
	}
	if m.NetworkLatencyMS != nil && *m.NetworkLatencyMS < 0 {
		return errors.Wrapf(ErrInvalidMeasurement, "network_latency_ms %v is negative", *m.NetworkLatencyMS)
	}
	return nil
}
