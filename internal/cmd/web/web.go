// Package web wires configuration and startup for the dashboard web command.
package web

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/options-pricing-and-greeks/dashboard/internal/platform/cmd"
	"github.com/options-pricing-and-greeks/dashboard/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"OPTIONS_DASHBOARD_WEB_HTTP_ADDR" envDefault:"localhost:8501"`
}

// ParseConfig loads env defaults and then applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, fmt.Errorf("flag parser is required")
	}
	var cfg Config
	fs.StringVar(&cfg.HTTPAddr, "http-addr", "", "HTTP listen address (env OPTIONS_DASHBOARD_WEB_HTTP_ADDR)")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the dashboard web server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{HTTPAddr: cfg.HTTPAddr})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
