// Command pexels-mcp serves the Pexels media search API as MCP tools
// and resources over stdio.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pexelstools/go-pexels-mcp/internal/config"
	"github.com/pexelstools/go-pexels-mcp/internal/server"
	"github.com/pexelstools/go-pexels-mcp/pexels"
)

// version is set via -ldflags at release time.
var version = "dev"

type serverOptions struct {
	logLevel    string
	httpTimeout time.Duration
	logger      *zap.Logger
}

func main() {
	opts := serverOptions{logger: zap.NewNop()}

	var cfg *config.Config

	root := &cobra.Command{
		Use:   "pexels-mcp",
		Short: "MCP server for the Pexels photo and video API",
		Long: `pexels-mcp exposes the Pexels media search API as MCP tools and
resources over a stdio transport. The API key is read from the
PEXELS_API_KEY environment variable; it can also be supplied at
runtime through the set_api_key tool.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			if cmd.Flags().Changed("http-timeout") {
				cfg.HTTPTimeout = opts.httpTimeout
			}

			level, err := zapcore.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("parse log level %q: %w", cfg.LogLevel, err)
			}

			// stdout carries the MCP transport; logs must go to stderr.
			zapCfg := zap.NewProductionConfig()
			zapCfg.Level = zap.NewAtomicLevelAt(level)
			zapCfg.OutputPaths = []string{"stderr"}
			zapCfg.ErrorOutputPaths = []string{"stderr"}
			log, err := zapCfg.Build()
			if err != nil {
				return err
			}
			opts.logger = log
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signalAwareContext(cmd.Context())
			defer cancel()

			httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
			client := pexels.NewClient(httpClient, cfg.APIKey, opts.logger)

			opts.logger.Info("starting pexels-mcp",
				zap.String("version", version),
				zap.Duration("http_timeout", cfg.HTTPTimeout))

			return server.New(client, version, opts.logger).Run(ctx)
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().DurationVar(&opts.httpTimeout, "http-timeout", config.DefaultHTTPTimeout, "timeout for upstream API requests")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func signalAwareContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
