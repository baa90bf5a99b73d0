package monitoring

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	"github.com/i3T4AN/Syspulse/db/migration/measurements"
	"github.com/i3T4AN/Syspulse/db/sqlite"
	"github.com/i3T4AN/Syspulse/share/logger"
	"github.com/i3T4AN/Syspulse/share/models"
)

type DBProvider interface {
	CreateMeasurement(ctx context.Context, measurement *models.Measurement) error
	ListAll(ctx context.Context) ([]models.Measurement, error)
	ListSince(ctx context.Context, since int64) ([]models.Measurement, error)
	DeleteOlderThan(ctx context.Context, cutoff int64) (int64, error)
	Count(ctx context.Context) (int64, error)
	Close() error
	DB() *sqlx.DB
}

type SqliteProvider struct {
	db     *sqlx.DB
	logger *logger.Logger
}

func NewSqliteProvider(dbPath string, log *logger.Logger) (DBProvider, error) {
	if dbPath != ":memory:" {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %v", dir, err)
			}
		}
	}

	db, err := sqlite.New(dbPath, measurements.AssetNames(), measurements.Asset, sqlite.DataSourceOptions{WALEnabled: dbPath != ":memory:"})
	if err != nil {
		return nil, fmt.Errorf("failed to create measurements DB instance: %v", err)
	}

	log.Infof("initialized database at %s", dbPath)

	return &SqliteProvider{db: db, logger: log}, nil
}

func (p *SqliteProvider) CreateMeasurement(ctx context.Context, measurement *models.Measurement) error {
	result, err := p.db.NamedExecContext(
		ctx,
		"INSERT INTO measurements (timestamp, cpu_percent, memory_percent, memory_used_bytes, memory_total_bytes, "+
			"disk_percent, disk_used_bytes, disk_total_bytes, uptime_seconds, network_latency_ms) "+
			"VALUES (:timestamp, :cpu_percent, :memory_percent, :memory_used_bytes, :memory_total_bytes, "+
			":disk_percent, :disk_used_bytes, :disk_total_bytes, :uptime_seconds, :network_latency_ms)",
		measurement,
	)
	if err != nil {
		return err
	}
	measurement.ID, err = result.LastInsertId()
	return err
}

func (p *SqliteProvider) ListAll(ctx context.Context) ([]models.Measurement, error) {
	val := []models.Measurement{}
	err := p.db.SelectContext(ctx, &val, "SELECT * FROM measurements ORDER BY timestamp DESC")
	return val, err
}

func (p *SqliteProvider) ListSince(ctx context.Context, since int64) ([]models.Measurement, error) {
	val := []models.Measurement{}
	err := p.db.SelectContext(ctx, &val, "SELECT * FROM measurements WHERE timestamp >= ? ORDER BY timestamp DESC", since)
	return val, err
}

func (p *SqliteProvider) DeleteOlderThan(ctx context.Context, cutoff int64) (int64, error) {
	result, err := p.db.ExecContext(ctx, "DELETE FROM measurements WHERE timestamp < ?", cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (p *SqliteProvider) Count(ctx context.Context) (int64, error) {
	var count int64
	err := p.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM measurements")
	return count, err
}

func (p *SqliteProvider) Close() error {
	return p.db.Close()
}

func (p *SqliteProvider) DB() *sqlx.DB {
	return p.db
}
