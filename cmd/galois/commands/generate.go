package commands

import (
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/galois/cxt"
	"github.com/katalvlaran/galois/formal"
	"github.com/katalvlaran/galois/generate"
)

type generateFlags struct {
	output string
	name   string
	seed   int64
	excel  bool
}

func newGenerateCmd(a *app) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write synthetic contexts in .cxt format",
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.output, "output", "o", "-", `output file ("-" for stdout)`)
	pf.StringVar(&f.name, "name", "", "context name")
	pf.Int64Var(&f.seed, "seed", 1, "random seed")
	pf.BoolVar(&f.excel, "excel-labels", false, "label attributes A, B, ..., Z, AA, ...")

	var density float64
	random := &cobra.Command{
		Use:   "random OBJECTS ATTRIBUTES",
		Short: "Uniform random cross table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			objects, err := atoi("OBJECTS", args[0])
			if err != nil {
				return err
			}
			attributes, err := atoi("ATTRIBUTES", args[1])
			if err != nil {
				return err
			}
			fc, err := generate.Random(objects, attributes, density, f.options(generate.WithSeed(f.seed))...)
			if err != nil {
				return errors.Wrap(err, "generate random")
			}
			return a.writeContext(cmd.OutOrStdout(), f.output, fc)
		},
	}
	random.Flags().Float64VarP(&density, "density", "d", 0.5, "probability of each cross, in [0,1]")

	scales := []struct {
		use, short string
		fn         func(int, ...generate.Option) (*formal.Context, error)
	}{
		{"nominal N", "N×N identity scale (N+2 concepts)", generate.Nominal},
		{"ordinal N", "N×N chain scale (N concepts)", generate.Ordinal},
		{"contranominal N", "N×N complemented identity (2^N concepts)", generate.Contranominal},
	}
	cmd.AddCommand(random)
	for _, s := range scales {
		s := s
		cmd.AddCommand(&cobra.Command{
			Use:   s.use,
			Short: s.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := atoi("N", args[0])
				if err != nil {
					return err
				}
				fc, err := s.fn(n, f.options()...)
				if err != nil {
					return errors.Wrapf(err, "generate %s", cmd.Name())
				}
				return a.writeContext(cmd.OutOrStdout(), f.output, fc)
			},
		})
	}

	return cmd
}

func (f *generateFlags) options(extra ...generate.Option) []generate.Option {
	opts := append([]generate.Option{}, extra...)
	if f.name != "" {
		opts = append(opts, generate.WithName(f.name))
	}
	if f.excel {
		opts = append(opts, generate.WithAttributeLabels(generate.ExcelColumnLabelFn))
	}

	return opts
}

func (a *app) writeContext(stdout io.Writer, path string, fc *formal.Context) error {
	if path == "-" {
		return cxt.Write(stdout, fc)
	}
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := cxt.Write(out, fc); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	a.log.Info("context written",
		zap.String("path", path),
		zap.Int("objects", fc.Objects()),
		zap.Int("attributes", fc.Attributes()),
		zap.Float64("density", fc.Density()))

	return nil
}

func atoi(what, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.WithHintf(errors.Wrapf(err, "%s", what), "%s must be a whole number", what)
	}

	return n, nil
}
