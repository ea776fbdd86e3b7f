package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/degrees/internal/config"
)

// NewRootCmd assembles the degrees command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "degrees",
		Short: "Descriptive statistics for directed social graphs",
		Long: `degrees loads a plain-text edge list and reports sampled degrees,
the clustering coefficient, the most connected node, the exact diameter,
and a Monte Carlo estimate of the average degrees of separation.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "YAML config file (optional)")
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	root.PersistentFlags().String("log-format", "text", "Log format: text or json")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newGenerateCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// loadConfig resolves configuration for cmd from --config, the environment and its flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Load(path, cmd.Flags())
}
