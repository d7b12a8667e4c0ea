package cmd

import (
	"fmt"

	"github.com/abhisek/devmap/internal/taxonomy"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "devmap %s (taxonomy %s)\n", version, taxonomy.Default().Version())
		},
	}
}
