package commands

import (
	"context"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/galois/cxt"
	"github.com/katalvlaran/galois/formal"
	"github.com/katalvlaran/galois/inclose"
	"github.com/katalvlaran/galois/internal/report"
)

func newConceptsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "concepts FILE",
		Short: "List every formal concept of a context",
		Long: `Enumerate all formal concepts of the context in FILE. The first concept is
the top (all objects); concepts are listed in generation order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := readContext(args[0])
			if err != nil {
				return err
			}
			concepts, err := a.enumerate(cmd.Context(), fc)
			if err != nil {
				return err
			}

			return report.Encode(cmd.OutOrStdout(), a.cfg.Output.Format, report.Concepts(fc, concepts))
		},
	}
	addEnumerateFlags(cmd)

	return cmd
}

func addEnumerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "json", "output format: json or yaml")
	cmd.Flags().IntP("workers", "w", 1, "goroutines expanding top-level branches (1 = sequential)")
}

// readContext parses path, or standard input for "-".
func readContext(path string) (*formal.Context, error) {
	if path == "-" {
		fc, err := cxt.Parse(os.Stdin)
		return fc, errors.Wrap(err, "stdin")
	}

	return cxt.ParseFile(path)
}

// enumerate runs the sequential or parallel search as configured.
func (a *app) enumerate(ctx context.Context, fc *formal.Context) ([]formal.Concept, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	opts := []inclose.Option{inclose.WithLogger(a.log.Named("inclose"))}

	start := time.Now()
	var (
		concepts []formal.Concept
		stats    inclose.Stats
		err      error
	)
	if a.cfg.Enumerate.Workers > 1 {
		opts = append(opts, inclose.WithWorkers(a.cfg.Enumerate.Workers))
		concepts, stats, err = inclose.EnumerateParallelWithStats(ctx, fc, opts...)
	} else {
		concepts, stats, err = inclose.EnumerateWithStats(fc, opts...)
	}
	if err != nil {
		return nil, errors.Wrap(err, "enumerate concepts")
	}

	a.log.Info("concepts enumerated",
		zap.String("context", fc.Name()),
		zap.Int("objects", fc.Objects()),
		zap.Int("attributes", fc.Attributes()),
		zap.Int("concepts", stats.Concepts),
		zap.Int("rejected", stats.Rejected),
		zap.Duration("elapsed", time.Since(start)))

	return concepts, nil
}
