package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/diaryfeed/internal/flagx"
	"github.com/dmitrijs2005/diaryfeed/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations accept
// "30s"-style strings or integer nanoseconds. Fields left out of the file keep
// their current value.
type JsonConfig struct {
	EndpointAddrGRPC  *string         `json:"endpoint_addr_grpc"`
	EndpointAddrOps   *string         `json:"endpoint_addr_ops"`
	DatabaseDSN       *string         `json:"database_dsn"`
	SeedFile          *string         `json:"seed_file"`
	SecretKey         *string         `json:"secret_key"`
	LogLevel          *string         `json:"log_level"`
	ShutdownTimeout   *timex.Duration `json:"shutdown_timeout"`
	DBConnMaxLifetime *timex.Duration `json:"db_conn_max_lifetime"`
}

// parseJson loads the file named by -c/-config into config. Without the flag
// nothing happens; an unreadable or malformed file panics, as a server started
// with a broken config must not come up.
func parseJson(config *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrOps, c.EndpointAddrOps)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SeedFile, c.SeedFile)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.DBConnMaxLifetime != nil {
		config.DBConnMaxLifetime = c.DBConnMaxLifetime.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
