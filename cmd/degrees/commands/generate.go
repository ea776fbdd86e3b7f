package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/degrees/sampler"
	"github.com/katalvlaran/degrees/socialgraph"
)

func newGenerateCmd() *cobra.Command {
	var (
		nodes  int
		prob   float64
		seed   int64
		output string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random directed edge list for testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log := cfg.Log.NewLogger()

			g, err := socialgraph.RandomSparse(nodes, prob, sampler.New(seed).Rand())
			if err != nil {
				return err
			}

			if err := writeEdgeList(output, cmd.OutOrStdout(), g); err != nil {
				return err
			}
			log.Info("edge list written", "output", output, "nodes", g.Len(), "edges", g.EdgeCount(), "seed", seed)
			return nil
		},
	}

	cmd.Flags().IntVarP(&nodes, "nodes", "n", 100, "Number of nodes")
	cmd.Flags().Float64VarP(&prob, "probability", "p", 0.05, "Independent edge probability")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output file, - for stdout")
	return cmd
}

// writeEdgeList writes g to path, or to stdout when path is empty or "-".
// A failed Close is reported since it can hide a short write.
func writeEdgeList(path string, stdout io.Writer, g *socialgraph.Graph) error {
	if path == "" || path == "-" {
		return socialgraph.WriteEdgeList(stdout, g)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", socialgraph.ErrIO, err)
	}
	if err := socialgraph.WriteEdgeList(f, g); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", socialgraph.ErrIO, path, err)
	}
	return nil
}
