// Command careermentor runs the career mentor agents behind a web chat or an
// interactive terminal session.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/careermentor/chat"
	"github.com/hupe1980/careermentor/config"
	"github.com/hupe1980/careermentor/logging"
	"github.com/hupe1980/careermentor/runner"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:          "careermentor",
		Short:        "Career mentor chat backed by LLM agents",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(envFile); err != nil && cmd.Flags().Changed("env-file") {
				return fmt.Errorf("load %s: %w", envFile, err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with API keys and settings")

	cmd.AddCommand(serveCmd(), chatCmd())

	return cmd
}

// bootstrap loads configuration and wires the chat handler. A missing
// credential is fatal here, before any conversation starts.
func bootstrap() (*config.Config, logging.Logger, *chat.Handler, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	logger := cfg.Log.NewLogger()

	r := runner.New(func(o *runner.Options) {
		o.Logger = logger
		if cfg.Session.MaxTurns > 0 {
			o.MaxTurns = cfg.Session.MaxTurns
		}
	})

	handler := chat.New(r, cfg.Model.NewModel(), func(o *chat.Options) {
		o.Logger = logger
		o.Provider = cfg.Model.Provider
		o.MaxTurns = cfg.Session.MaxTurns
		o.Tracing = cfg.Session.Tracing
		o.StickyHandoff = cfg.Session.StickyHandoff
	})

	logger.Info("careermentor.configured",
		"provider", cfg.Model.Provider,
		"model", cfg.Model.Model,
		"sticky_handoff", cfg.Session.StickyHandoff,
	)

	return cfg, logger, handler, nil
}
