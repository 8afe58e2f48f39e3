package cmd

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"segment-audit/core/config"
	"segment-audit/core/logger"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X segment-audit/cmd.version=...".
var version = "dev"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "segment-audit",
	Short: "Audit segmented PDF downloads",
	Long: `Segment Audit reconciles the page-range PDF segments of downloaded documents
against the downloader's metadata. It reports missing page ranges, split into
standard-size chunks, and segments that sit outside their document folder.
Nothing is moved or downloaded.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	err := fang.Execute(
		context.Background(),
		RootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	)
	if err != nil {
		// Console format with debug level gives ISO8601 timestamps for CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger shared by commands.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	return cfg, logg, nil
}
