package cmd

import (
	"fmt"

	"github.com/abhisek/devmap/internal/ui/theme"
	"github.com/spf13/cobra"
)

type validation struct {
	Taxonomy  string `json:"taxonomy"`
	Version   string `json:"version"`
	Domains   int    `json:"domains"`
	SubAreas  int    `json:"subAreas"`
	Skills    int    `json:"skills"`
	Edges     int    `json:"edges"`
	Roots     int    `json:"roots"`
	Overrides int    `json:"overrides"`
	Snapshot  string `json:"snapshot,omitempty"`
	Assessed  int    `json:"assessed,omitempty"`
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the taxonomy and, if given, the assessment snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := opts.loadEngine()
			if err != nil {
				return err
			}
			tax := eng.Taxonomy()
			v := validation{
				Taxonomy:  opts.taxonomySource(),
				Version:   tax.Version(),
				Domains:   len(tax.Domains()),
				SubAreas:  len(tax.SubAreas()),
				Skills:    tax.Len(),
				Edges:     tax.EdgeCount(),
				Roots:     len(tax.RootSkills()),
				Overrides: len(tax.Overrides()),
			}

			if opts.assessmentsPath != "" {
				a, err := opts.loadSnapshot(cmd, eng, true)
				if err != nil {
					return err
				}
				v.Snapshot = opts.assessmentsPath
				v.Assessed = len(a)
			}

			out := cmd.OutOrStdout()
			if opts.jsonOut {
				return writeJSON(out, v)
			}
			fmt.Fprintf(out, "%s taxonomy %s (%s)\n", theme.Render(theme.Header, "ok"), v.Version, v.Taxonomy)
			fmt.Fprintf(out, "  %d domains, %d sub-areas, %d skills, %d edges, %d roots, %d overrides\n",
				v.Domains, v.SubAreas, v.Skills, v.Edges, v.Roots, v.Overrides)
			if v.Snapshot != "" {
				fmt.Fprintf(out, "%s snapshot %s (%d skills assessed)\n", theme.Render(theme.Header, "ok"), v.Snapshot, v.Assessed)
			}
			return nil
		},
	}
}
