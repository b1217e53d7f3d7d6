package commands

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/galois/formal"
	"github.com/katalvlaran/galois/internal/config"
	"github.com/katalvlaran/galois/internal/report"
	"github.com/katalvlaran/galois/lattice"
)

func newLatticeCmd(a *app) *cobra.Command {
	var withLevels, validate bool

	cmd := &cobra.Command{
		Use:   "lattice FILE",
		Short: "Build the concept lattice (concepts and cover edges)",
		Long: `Enumerate the concepts of FILE and derive the covering relation of the
concept lattice. An edge {parent, child} means child is an immediate
sub-concept of parent.

Algorithms:
  extent  intersect extents with attribute columns (default, scales to large lattices)
  naive   pairwise intent comparison (quadratic, bounded by --max-concepts)`,
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
			cover, err := a.buildCover(concepts, fc)
			if err != nil {
				return err
			}
			if validate {
				if err := lattice.Validate(concepts, cover); err != nil {
					return errors.Wrap(err, "validate cover")
				}
			}

			var layers [][]int
			if withLevels {
				res, err := lattice.Levels(cover, lattice.WithContext(cmd.Context()))
				if err != nil {
					return errors.Wrap(err, "levels")
				}
				layers = res.Layers()
			}

			doc := report.NewLattice(fc, concepts, cover, a.cfg.Lattice.Algorithm, layers)
			return report.Encode(cmd.OutOrStdout(), a.cfg.Output.Format, doc)
		},
	}
	addEnumerateFlags(cmd)
	cmd.Flags().StringP("algorithm", "a", config.AlgorithmExtent, "cover algorithm: extent or naive")
	cmd.Flags().Bool("trie", false, "resolve extents through a trie (extent algorithm)")
	cmd.Flags().Int("max-concepts", 20000, "concept ceiling for the naive algorithm (0 = none)")
	cmd.Flags().BoolVar(&withLevels, "levels", false, "include breadth-first levels from the top concept")
	cmd.Flags().BoolVar(&validate, "validate", false, "re-check the covering property before printing")

	return cmd
}

func (a *app) buildCover(concepts []formal.Concept, fc *formal.Context) (*lattice.Cover, error) {
	opts := []lattice.Option{
		lattice.WithLogger(a.log.Named("lattice")),
		lattice.WithMaxConcepts(a.cfg.Lattice.MaxConcepts),
	}

	start := time.Now()
	var (
		cover *lattice.Cover
		err   error
	)
	switch a.cfg.Lattice.Algorithm {
	case config.AlgorithmNaive:
		cover, err = lattice.Naive(concepts, opts...)
		if errors.Is(err, lattice.ErrTooLarge) {
			err = errors.WithHint(err, "use --algorithm extent or raise --max-concepts")
		}
	default:
		if a.cfg.Lattice.Trie {
			opts = append(opts, lattice.WithExtentTrie())
		}
		cover, err = lattice.ExtentIntersection(concepts, fc, opts...)
	}
	if err != nil {
		return nil, errors.Wrap(err, "build cover")
	}

	a.log.Info("lattice built",
		zap.String("algorithm", a.cfg.Lattice.Algorithm),
		zap.Int("concepts", len(concepts)),
		zap.Int("edges", cover.EdgeCount()),
		zap.Duration("elapsed", time.Since(start)))

	return cover, nil
}
