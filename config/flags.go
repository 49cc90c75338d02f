package config

import (
	"github.com/spf13/pflag"
)

// ApplyFlags overrides environment-derived settings with any command-line
// flags that were explicitly set.
func ApplyFlags(cfg *Config, args []string) error {
	fs := pflag.NewFlagSet("practice-service", pflag.ContinueOnError)

	httpPort := fs.String("http-port", cfg.Server.HTTPPort, "HTTP listen port")
	grpcPort := fs.String("grpc-port", cfg.Server.GRPCPort, "gRPC health listen port")
	bankSource := fs.String("bank-source", cfg.Bank.Source, `question bank source: "dir" or "s3"`)
	dataDir := fs.String("data-dir", cfg.Bank.DataDir, "directory holding question bank CSV files")
	historyDriver := fs.String("history-driver", cfg.History.Driver, `attempt history: "postgres", "sqlite" or "none"`)
	logLevel := fs.String("log-level", cfg.Log.Level, "debug, info, warn or error")
	logFormat := fs.String("log-format", cfg.Log.Format, `"text" or "json"`)

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.Server.HTTPPort = *httpPort
	cfg.Server.GRPCPort = *grpcPort
	cfg.Bank.Source = *bankSource
	cfg.Bank.DataDir = *dataDir
	cfg.History.Driver = *historyDriver
	cfg.Log.Level = *logLevel
	cfg.Log.Format = *logFormat
	return nil
}
