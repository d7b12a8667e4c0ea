package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/devmap/internal/ceiling"
	"github.com/abhisek/devmap/internal/ui/components"
	"github.com/abhisek/devmap/internal/ui/theme"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type analyzeReport struct {
	RunID       string    `json:"runId"`
	GeneratedAt time.Time `json:"generatedAt"`
	ceiling.Report
}

func newAnalyzeCmd(opts *options) *cobra.Command {
	var (
		withMetrics bool
		top         int
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run every snapshot query and summarise the results",
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

			report := analyzeReport{RunID: uuid.NewString(), GeneratedAt: time.Now().UTC()}
			opts.timed("analyze", func() { report.Report = eng.Analyze(a) })
			opts.metrics.UpdateSnapshot(report.Assessed, len(report.Constrained),
				report.Coverage.KnownCeilings, report.Coverage.Coverage)
			opts.logger.Info("analysis complete",
				"run_id", report.RunID,
				"assessed", report.Assessed,
				"constrained", len(report.Constrained))

			out := cmd.OutOrStdout()
			if opts.jsonOut {
				err = writeJSON(out, report)
			} else {
				printSummary(cmd, report, top)
			}
			if err != nil {
				return err
			}
			if withMetrics {
				return opts.metrics.WriteText(cmd.ErrOrStderr())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withMetrics, "metrics", false, "Write Prometheus metrics to stderr after the report")
	cmd.Flags().IntVar(&top, "top", 5, "Entries to show per section")
	return cmd
}

func printSummary(cmd *cobra.Command, r analyzeReport, top int) {
	out := cmd.OutOrStdout()
	limited := 0
	for _, c := range r.Ceilings {
		if c.Ceiling < ceiling.Solid {
			limited++
		}
	}

	fmt.Fprintln(out, theme.Render(theme.Title, "Assessment analysis"))
	fmt.Fprintln(out, theme.Render(theme.Hint, fmt.Sprintf("run %s, taxonomy %s", r.RunID, r.TaxonomyVersion)))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-22s %d\n", "Assessed skills", r.Assessed)
	fmt.Fprintf(out, "%-22s %d of %d\n", "Ceilings below Solid", limited, len(r.Ceilings))
	fmt.Fprintf(out, "%-22s %d\n", "Above their ceiling", len(r.Constrained))
	fmt.Fprintln(out, components.NewProgressBar(fmt.Sprintf("%-21s", "Ceiling coverage"), r.Coverage.Coverage, true, barWidth+30).View())

	if len(r.Constrained) > 0 {
		fmt.Fprintln(out)
		header(out, 60, "%-16s  %-14s  %-14s  %s", "Constrained", "Level", "Ceiling", "Gap")
		for _, c := range r.Constrained[:min(top, len(r.Constrained))] {
			fmt.Fprintf(out, "%-16s  %s  %s  %d\n", c.SkillID, level(c.Level, 14), level(c.Ceiling, 14), c.Gap)
		}
	}

	if len(r.StartHere) > 0 {
		fmt.Fprintln(out)
		header(out, 60, "%-16s  %8s  %s", "Assess next", "Priority", "Reason")
		for _, p := range r.StartHere[:min(top, len(r.StartHere))] {
			fmt.Fprintf(out, "%-16s  %8d  %s\n", p.SkillID, p.Priority, theme.Render(theme.Reason, p.Reason))
		}
	}
}
