package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON are strings valid for time.ParseDuration (e.g. "30s").
	jsonBody := `{
		"adapter": {
			"request_timeout": "30s"
		},
		"storage": {
			"db": { "dsn": "client.db" },
			"mirror": { "path": "pairing.json" }
		},
		"workers": {
			"sync_short_delay": "2s",
			"sync_baseline_delay": "1m",
			"sync_max_delay": "10m"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "pairing.json", cfg.Storage.Mirror.Path)
	assert.Equal(t, 2*time.Second, cfg.Workers.SyncShortDelay)
	assert.Equal(t, time.Minute, cfg.Workers.SyncBaselineDelay)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SyncMaxDelay)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("definitely-does-not-exist.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	jsonBody := `{
		"workers": { "sync_short_delay": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDuration_UnmarshalNumeric(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`2000000000`)))
	assert.Equal(t, 2*time.Second, time.Duration(d))
}
