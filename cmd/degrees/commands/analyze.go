package commands

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/degrees/internal/config"
	"github.com/katalvlaran/degrees/report"
	"github.com/katalvlaran/degrees/sampler"
	"github.com/katalvlaran/degrees/socialgraph"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [dataset]",
		Short: "Load an edge list and print its statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := cmd.Flags().Set("dataset", args[0]); err != nil {
					return err
				}
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runAnalyze(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.String("dataset", "facebook_combined.txt", "Edge-list file to analyze")
	f.Int64("seed", 0, "Random seed; 0 draws a fresh seed each run")
	f.Int("degree-samples", 500, "Number of nodes whose degree is sampled")
	f.Int("distance-trials", 3000, "Number of random pairs for the separation estimate")
	f.Bool("edge-lengths", false, "Measure separation in edges instead of path nodes")
	f.Bool("skip-diameter", false, "Skip the exact O(n·(n+m)) diameter scan")
	return cmd
}

func runAnalyze(cmd *cobra.Command, cfg *config.Config) error {
	log := cfg.Log.NewLogger()
	slog.SetDefault(log)

	start := time.Now()
	g, err := socialgraph.Load(cfg.Dataset)
	if err != nil {
		return err
	}
	log.Info("graph loaded", "dataset", cfg.Dataset,
		"nodes", g.Len(), "edges", g.EdgeCount(), "duration", time.Since(start))

	s := sampler.NewUnseeded()
	if cfg.Seed != 0 {
		s = sampler.New(cfg.Seed)
	}

	r, err := report.Analyze(cmd.Context(), g, s, report.Options{
		DegreeSamples:  cfg.DegreeSamples,
		DistanceTrials: cfg.DistanceTrials,
		EdgeLengths:    cfg.EdgeLengths,
		SkipDiameter:   cfg.SkipDiameter,
		Logger:         log,
	})
	if err != nil {
		return err
	}
	return r.WriteText(cmd.OutOrStdout())
}
