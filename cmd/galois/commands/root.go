// Package commands wires the galois CLI.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/galois/internal/config"
	"github.com/katalvlaran/galois/internal/logger"
)

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"log.level":            "log-level",
	"log.json":             "json-logs",
	"lattice.algorithm":    "algorithm",
	"lattice.trie":         "trie",
	"lattice.max_concepts": "max-concepts",
	"enumerate.workers":    "workers",
	"output.format":        "format",
}

// app is the state shared by all commands of one invocation.
type app struct {
	configPath string
	v          *viper.Viper
	cfg        *config.Config
	log        *zap.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "galois",
		Short: "Formal concept analysis on the command line",
		Long: `galois enumerates the formal concepts of a cross table and derives the
covering relation (Hasse diagram) of its concept lattice.

Input files use the Burmeister .cxt format; "-" reads standard input.

Examples:
  galois concepts animals.cxt                  # list every concept as JSON
  galois lattice animals.cxt --format yaml     # concepts plus cover edges
  galois generate random 40 25 --density 0.3   # synthetic context
  galois version`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			logger.Sync(a.log)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default ./"+config.FileName+" when present)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.Bool("json-logs", false, "emit logs as JSON")

	root.AddCommand(
		newConceptsCmd(a),
		newLatticeCmd(a),
		newGenerateCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup resolves configuration for cmd and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	v, err := config.New(a.configPath)
	if err != nil {
		return err
	}
	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		return err
	}

	a.v, a.cfg, a.log = v, cfg, log.Named("galois")
	a.log.Debug("configuration resolved",
		zap.String("config_file", v.ConfigFileUsed()),
		zap.String("algorithm", cfg.Lattice.Algorithm),
		zap.Int("workers", cfg.Enumerate.Workers),
		zap.String("format", cfg.Output.Format))

	return nil
}
