package config

import (
	"os"
	"time"
)

// Environment variables recognised by parseEnv.
const (
	EnvGRPCAddr          = "DIARY_GRPC_ADDR"
	EnvOpsAddr           = "DIARY_OPS_ADDR"
	EnvDatabaseDSN       = "DIARY_DATABASE_DSN"
	EnvSeedFile          = "DIARY_SEED_FILE"
	EnvSecretKey         = "DIARY_SECRET_KEY"
	EnvLogLevel          = "DIARY_LOG_LEVEL"
	EnvShutdownTimeout   = "DIARY_SHUTDOWN_TIMEOUT"
	EnvDBConnMaxLifetime = "DIARY_DB_CONN_MAX_LIFETIME"
)

// parseEnv overlays non-empty environment variables. Durations use Go
// syntax ("15s"); unparsable values panic like a malformed config file.
func parseEnv(config *Config) {
	envString(&config.EndpointAddrGRPC, EnvGRPCAddr)
	envString(&config.EndpointAddrOps, EnvOpsAddr)
	envString(&config.DatabaseDSN, EnvDatabaseDSN)
	envString(&config.SeedFile, EnvSeedFile)
	envString(&config.SecretKey, EnvSecretKey)
	envString(&config.LogLevel, EnvLogLevel)
	envDuration(&config.ShutdownTimeout, EnvShutdownTimeout)
	envDuration(&config.DBConnMaxLifetime, EnvDBConnMaxLifetime)
}

func envString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func envDuration(dst *time.Duration, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
