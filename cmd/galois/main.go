// Command galois computes formal concepts and concept lattices of cross
// tables in Burmeister (.cxt) format.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/galois/cmd/galois/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}
