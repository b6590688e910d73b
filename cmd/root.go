package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/JPM1118/frogframes/internal/config"
	"github.com/JPM1118/frogframes/internal/sprites"
	"github.com/spf13/cobra"
)

var (
	configPath string
	sourceBase string
	verbose    bool

	cfg    config.Config
	logger *slog.Logger
	loader *sprites.Loader
)

var rootCmd = &cobra.Command{
	Use:   "frogframes",
	Short: "Load and inspect ASCII sprite frames",
	Long: `frogframes fetches the frog sprite frames (frame1.txt, frame2.txt) from a
directory or an HTTP server and hands them over in order.

Run without arguments to page through the frames interactively.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(cmd.ErrOrStderr(), verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runView()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/frogframes/config.yml)")
	rootCmd.PersistentFlags().StringVarP(&sourceBase, "source", "s", "", "directory or http(s) URL holding the frames")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

// frameLoader returns the process-wide loader, loading configuration and
// building the sprite source on first use. Commands that never touch frames
// (convert) never read the configuration.
func frameLoader() (*sprites.Loader, error) {
	if loader != nil {
		return loader, nil
	}

	var err error
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if sourceBase != "" {
		cfg.Source.Base = sourceBase
	}

	client := &http.Client{Timeout: cfg.Source.RequestTimeout.Duration}
	src, err := sprites.NewSource(cfg.Source.Base, client)
	if err != nil {
		return nil, fmt.Errorf("sprite source: %w", err)
	}

	loader = sprites.NewLoader(src, sprites.DefaultFrames, sprites.WithConcurrency(cfg.Source.Concurrency))
	logger.Debug("sprite source ready",
		"source", cfg.Source.Base,
		"frames", sprites.DefaultFrames,
		"concurrency", cfg.Source.Concurrency,
		"request_timeout", cfg.Source.RequestTimeout.Duration,
	)
	return loader, nil
}

// loadFrames resolves the frames through the shared loader.
func loadFrames(ctx context.Context) ([]string, error) {
	l, err := frameLoader()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	frames, err := l.Frames(ctx)
	if err != nil {
		logger.Debug("frame load failed", "source", cfg.Source.Base, "err", err)
		return nil, fmt.Errorf("load frames from %s: %w", cfg.Source.Base, err)
	}
	logger.Debug("frames loaded", "count", len(frames), "elapsed", time.Since(start))
	return frames, nil
}
