package monitoring

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/i3T4AN/Syspulse/share/models"
	"github.com/i3T4AN/Syspulse/share/ptr"
)

func validMeasurement() *models.Measurement {
	return testMeasurement(measurementStart, 45.5, ptr.Float64(15.5))
}

func TestSaveMeasurementValidation(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(m *models.Measurement)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(m *models.Measurement) {},
		},
		{
			name:   "valid without latency",
			mutate: func(m *models.Measurement) { m.NetworkLatencyMS = nil },
		},
		{
			name:    "missing timestamp",
			mutate:  func(m *models.Measurement) { m.Timestamp = 0 },
			wantErr: true,
		},
		{
			name:    "cpu percent above range",
			mutate:  func(m *models.Measurement) { m.CPUPercent = 100.5 },
			wantErr: true,
		},
		{
			name:    "negative memory percent",
			mutate:  func(m *models.Measurement) { m.MemoryPercent = -1 },
			wantErr: true,
		},
		{
			name:    "disk percent above range",
			mutate:  func(m *models.Measurement) { m.DiskPercent = 101 },
			wantErr: true,
		},
		{
			name:    "memory used exceeds total",
			mutate:  func(m *models.Measurement) { m.MemoryUsedBytes = m.MemoryTotalBytes + 1 },
			wantErr: true,
		},
		{
			name:    "disk used exceeds total",
			mutate:  func(m *models.Measurement) { m.DiskUsedBytes = m.DiskTotalBytes + 1 },
			wantErr: true,
		},
		{
			name:    "negative latency",
			mutate:  func(m *models.Measurement) { m.NetworkLatencyMS = ptr.Float64(-0.5) },
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dbProvider := &DBProviderMock{}
			service := NewService(dbProvider)

			m := validMeasurement()
			tc.mutate(m)

			err := service.SaveMeasurement(context.Background(), m)
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrInvalidMeasurement))
				require.Nil(t, dbProvider.CreatedMeasurement, "invalid measurement must be rejected before the write")
			} else {
				require.NoError(t, err)
				require.Equal(t, m, dbProvider.CreatedMeasurement)
			}
		})
	}
}

func TestMeasurementsSinceCutoff(t *testing.T) {
	dbProvider := &DBProviderMock{}
	service := NewService(dbProvider)

	before := time.Now().Add(-24 * time.Hour).Unix()
	_, err := service.MeasurementsSince(context.Background(), 24*time.Hour)
	after := time.Now().Add(-24 * time.Hour).Unix()

	require.NoError(t, err)
	require.GreaterOrEqual(t, dbProvider.SinceRequested, before)
	require.LessOrEqual(t, dbProvider.SinceRequested, after)
}

func TestDeleteMeasurementsOlderThanDaysCutoff(t *testing.T) {
	dbProvider := &DBProviderMock{DeletedPayload: 7}
	service := NewService(dbProvider)

	deleted, err := service.DeleteMeasurementsOlderThanDays(context.Background(), 30)
	require.NoError(t, err)
	require.EqualValues(t, 7, deleted)

	wantCutoff := time.Now().Unix() - 30*24*3600
	require.InDelta(t, wantCutoff, dbProvider.CutoffRequested, 5)
}

func TestCleanupTask(t *testing.T) {
	dbProvider := &DBProviderMock{DeletedPayload: 3}
	service := NewService(dbProvider)

	task := NewCleanupTask(testLog.Fork("cleanup"), service, 30)
	require.NoError(t, task.Run(context.Background()))
	require.NotZero(t, dbProvider.CutoffRequested)
}
