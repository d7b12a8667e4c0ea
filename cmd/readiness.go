package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/devmap/internal/ceiling"
	"github.com/abhisek/devmap/internal/ui/components"
	"github.com/abhisek/devmap/internal/ui/theme"
	"github.com/spf13/cobra"
)

const barWidth = 40

func newReadinessCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "readiness <skill-id>",
		Short: "Show how many of a skill's prerequisites are met",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := opts.loadEngine()
			if err != nil {
				return err
			}
			a, err := opts.loadSnapshot(cmd, eng, false)
			if err != nil {
				return err
			}

			var (
				r       ceiling.Readiness
				readErr error
			)
			opts.timed("skill_readiness", func() { r, readErr = eng.SkillReadiness(args[0], a) })
			if readErr != nil {
				return readErr
			}

			out := cmd.OutOrStdout()
			if opts.jsonOut {
				return writeJSON(out, r)
			}

			status := theme.Render(theme.Reason, "not ready")
			if r.Ready {
				status = theme.Render(theme.Header, "ready")
			}
			fmt.Fprintf(out, "%s: %s\n", args[0], status)
			fmt.Fprintln(out, components.NewProgressBar("Prerequisites met", r.Readiness, true, barWidth+20).View())
			fmt.Fprintf(out, "%d prerequisites considered\n", r.PrereqCount)
			if len(r.UnmetDirect) > 0 {
				fmt.Fprintf(out, "Unmet direct:     %s\n", strings.Join(r.UnmetDirect, ", "))
			}
			if len(r.UnmetStructural) > 0 {
				fmt.Fprintf(out, "Unmet structural: %s\n", strings.Join(r.UnmetStructural, ", "))
			}
			return nil
		},
	}
}

func newCoverageCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "coverage",
		Short: "Report how many ceilings the snapshot fully determines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := opts.loadEngine()
			if err != nil {
				return err
			}
			a, err := opts.loadSnapshot(cmd, eng, false)
			if err != nil {
				return err
			}

			var cov ceiling.Coverage
			opts.timed("ceiling_coverage", func() { cov = eng.CeilingCoverage(a) })

			out := cmd.OutOrStdout()
			if opts.jsonOut {
				return writeJSON(out, cov)
			}
			fmt.Fprintln(out, components.NewProgressBar("Ceiling coverage", cov.Coverage, true, barWidth+20).View())
			fmt.Fprintf(out, "%d of %d ceilings known\n", cov.KnownCeilings, cov.TotalSkills)
			return nil
		},
	}
}
