package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"endpoint_addr_grpc":   "www.example:9000",
		"endpoint_addr_ops":    "www.example:9001",
		"database_dsn":         "postgres://json",
		"seed_file":            "seed.yaml",
		"secret_key":           "my_secret_key",
		"log_level":            "error",
		"shutdown_timeout":     "20s",
		"db_conn_max_lifetime": "2m",
	})
	partial := writeTempJSON(t, dir, "partial.json", map[string]any{
		"database_dsn": "memory",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", full}
		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "www.example:9001", cfg.EndpointAddrOps)
		assert.Equal(t, "postgres://json", cfg.DatabaseDSN)
		assert.Equal(t, "seed.yaml", cfg.SeedFile)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, "error", cfg.LogLevel)
		assert.Equal(t, 20*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, 2*time.Minute, cfg.DBConnMaxLifetime)
	})

	t.Run("missing keys keep current values", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", partial}
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "memory", cfg.DatabaseDSN)
		assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}
		cfg := &Config{DatabaseDSN: "defaults"}
		parseJson(cfg)
		assert.Equal(t, "defaults", cfg.DatabaseDSN)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}
		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
