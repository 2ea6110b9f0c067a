package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/othello-arena/internal/config"
	"github.com/mcoot/othello-arena/internal/factory"
)

var (
	cfg    *config.Config
	opts   *options
	app    *factory.App
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts = &options{}

	rootCmd := &cobra.Command{
		Use:   "othello",
		Short: "Run Othello matches between automated agents",
		Long: `othello plays Othello (Reversi) between two automated agents.

Each side has a time budget for the whole game and a limited number of
illegal moves; exhausting either forfeits the game. Settings come from an
optional yaml file, OTHELLO_* environment variables and flags, in increasing
order of precedence.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			opts.apply(cmd, loaded)
			if err := loaded.Validate(); err != nil {
				return err
			}
			cfg = loaded

			logger, err = newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			app = factory.New(factory.Config{
				Logger: logger,
				Seed:   cfg.Match.SeedValue(),
			})
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", os.Getenv("OTHELLO_CONFIG"), "Config file path (env: OTHELLO_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error (env: OTHELLO_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "", "Log format: text, json (env: OTHELLO_LOG_FORMAT)")
	rootCmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", "", "Output format: text, json (env: OTHELLO_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose output, same as --log-level debug")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newReplayCmd())
	rootCmd.AddCommand(newStrategiesCmd())

	return rootCmd
}

// Execute runs the root command, cancelling a running match on SIGINT/SIGTERM
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the slog logger described by the config, writing to w
func newLogger(c *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	switch c.LogFormat {
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q: must be text or json", c.LogFormat)
	}
}
