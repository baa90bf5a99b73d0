package monitoring

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/i3T4AN/Syspulse/share/models"
)

type DBProviderMock struct {
	MeasurementsPayload []models.Measurement
	CreatedMeasurement  *models.Measurement
	SinceRequested      int64
	CutoffRequested     int64
	DeletedPayload      int64
	ErrorPayload        error
}

func (p *DBProviderMock) CreateMeasurement(ctx context.Context, measurement *models.Measurement) error {
	p.CreatedMeasurement = measurement
	return p.ErrorPayload
}

func (p *DBProviderMock) ListAll(ctx context.Context) ([]models.Measurement, error) {
	return p.MeasurementsPayload, p.ErrorPayload
}

func (p *DBProviderMock) ListSince(ctx context.Context, since int64) ([]models.Measurement, error) {
	p.SinceRequested = since
	return p.MeasurementsPayload, p.ErrorPayload
}

func (p *DBProviderMock) DeleteOlderThan(ctx context.Context, cutoff int64) (int64, error) {
	p.CutoffRequested = cutoff
	return p.DeletedPayload, p.ErrorPayload
}

func (p *DBProviderMock) Count(ctx context.Context) (int64, error) {
	return int64(len(p.MeasurementsPayload)), p.ErrorPayload
}

func (p *DBProviderMock) Close() error {
	return nil
}

func (p *DBProviderMock) DB() *sqlx.DB {
	return nil
}
