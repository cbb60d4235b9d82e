package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/diaryfeed/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-o string   ops HTTP bind address for /metrics and /healthz
//	-d string   PostgreSQL DSN, or "memory"
//	-f string   YAML seed file for the in-memory store
//	-s string   JWT HMAC secret key
//	-l string   log level
//	-t int      shutdown timeout, seconds
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-o", "-d", "-f", "-s", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.EndpointAddrOps, "o", config.EndpointAddrOps, "address and port for metrics and health")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN or \"memory\"")
	fs.StringVar(&config.SeedFile, "f", config.SeedFile, "seed file for the in-memory store")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
}
