// Package iotesting provides shared helpers for tests that read data
// sources. This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnparks/pkg/config"
)

// PostgresEnv is the variable with a PostgreSQL URI for integration
// tests. The database needs observations and species tables.
const PostgresEnv = "GNPARKS_TEST_POSTGRES"

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("cannot write %s: %v", path, err)
	}
	return path
}

// Sources writes observations and species CSV files into a temporary
// directory and returns a configuration pointing to them.
func Sources(t *testing.T, obs, spp string) config.DataConfig {
	t.Helper()
	dir := t.TempDir()
	return config.DataConfig{
		Observations: WriteFile(t, dir, "observations.csv", obs),
		Species:      WriteFile(t, dir, "species_info.csv", spp),
	}
}

// PostgresURI returns the URI of the test database, or skips the test
// if it is not configured or tests run in short mode.
func PostgresURI(t *testing.T) string {
	t.Helper()
	uri := os.Getenv(PostgresEnv)
	if uri == "" || testing.Short() {
		t.Skipf("%s is not set, skipping integration test", PostgresEnv)
	}
	return uri
}
