// Package measurements holds the schema migrations for the measurements DB,
// served to golang-migrate through its go-bindata source.
package measurements

import (
	"fmt"
	"sort"
)

var assets = map[string]string{
	"001_init.up.sql": `
CREATE TABLE IF NOT EXISTS measurements (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp INTEGER NOT NULL,
    cpu_percent REAL NOT NULL,
    memory_percent REAL NOT NULL,
    memory_used_bytes INTEGER NOT NULL,
    memory_total_bytes INTEGER NOT NULL,
    disk_percent REAL NOT NULL,
    disk_used_bytes INTEGER NOT NULL,
    disk_total_bytes INTEGER NOT NULL,
    uptime_seconds INTEGER NOT NULL,
    network_latency_ms REAL
);

CREATE INDEX IF NOT EXISTS idx_measurements_timestamp ON measurements (timestamp);
`,
	"001_init.down.sql": `
DROP INDEX IF EXISTS idx_measurements_timestamp;
DROP TABLE IF EXISTS measurements;
`,
}

func AssetNames() []string {
	names := make([]string, 0, len(assets))
	for name := range assets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Asset(name string) ([]byte, error) {
	sql, ok := assets[name]
	if !ok {
		return nil, fmt.Errorf("migration asset %q not found", name)
	}
	return []byte(sql), nil
}
