package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/abhisek/devmap/internal/ceiling"
	"github.com/abhisek/devmap/internal/ui/theme"
	"github.com/spf13/cobra"
)

type ceilingRow struct {
	SkillID string `json:"skillId"`
	ceiling.Ceiling
}

func newCeilingsCmd(opts *options) *cobra.Command {
	var limitedOnly bool
	cmd := &cobra.Command{
		Use:   "ceilings [skill-id]",
		Short: "Show ceilings imposed by prerequisites",
		Long: "Without arguments, lists the ceiling of every skill that has prerequisites.\n" +
			"With a skill id, shows that skill's ceiling and each prerequisite's contribution.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := opts.loadEngine()
			if err != nil {
				return err
			}
			a, err := opts.loadSnapshot(cmd, eng, false)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				if _, err := eng.Taxonomy().Skill(args[0]); err != nil {
					return err
				}
				var (
					c  ceiling.Ceiling
					ok bool
				)
				opts.timed("skill_ceiling", func() { c, ok = eng.SkillCeiling(args[0], a) })
				if opts.jsonOut {
					if !ok {
						return writeJSON(out, nil)
					}
					return writeJSON(out, ceilingRow{SkillID: args[0], Ceiling: c})
				}
				if !ok {
					fmt.Fprintf(out, "%s has no prerequisites; its ceiling is always %s.\n", args[0], ceiling.Solid)
					return nil
				}
				fmt.Fprintf(out, "Ceiling for %s: %s\n\n", args[0], level(c.Ceiling, 0))
				printConstraints(out, c.ConstrainingPrereqs)
				return nil
			}

			var all map[string]ceiling.Ceiling
			opts.timed("all_ceilings", func() { all = eng.AllCeilings(a) })

			rows := make([]ceilingRow, 0, len(all))
			for id, c := range all {
				if limitedOnly && c.Ceiling == ceiling.Solid {
					continue
				}
				rows = append(rows, ceilingRow{SkillID: id, Ceiling: c})
			}
			sort.Slice(rows, func(i, j int) bool {
				if rows[i].Ceiling.Ceiling != rows[j].Ceiling.Ceiling {
					return rows[i].Ceiling.Ceiling < rows[j].Ceiling.Ceiling
				}
				return rows[i].SkillID < rows[j].SkillID
			})

			if opts.jsonOut {
				return writeJSON(out, rows)
			}
			header(out, 72, "%-16s  %-14s  %-14s  %s", "Skill", "Level", "Ceiling", "Tightest prerequisite")
			for _, r := range rows {
				current := "-"
				if l, ok := a.Assessed(r.SkillID); ok {
					current = fmt.Sprintf("%d %s", l, l)
				}
				tightest := r.ConstrainingPrereqs[0]
				fmt.Fprintf(out, "%-16s  %-14s  %s  %s (%.2f)\n",
					r.SkillID, current, level(r.Ceiling.Ceiling, 14), tightest.SkillID, tightest.Strength)
			}
			fmt.Fprintf(out, "\n%d ceilings\n", len(rows))
			return nil
		},
	}
	cmd.Flags().BoolVar(&limitedOnly, "limited", false, "Only list ceilings below Solid")
	return cmd
}

func printConstraints(out io.Writer, cs []ceiling.Constraint) {
	header(out, 64, "%-16s  %-14s  %8s  %s", "Prerequisite", "Level", "Strength", "Imposes")
	for _, cp := range cs {
		fmt.Fprintf(out, "%-16s  %s  %8.2f  %s\n",
			cp.SkillID, level(cp.Level, 14), cp.Strength, level(cp.ImposedCeiling, 0))
	}
}

func newConstrainedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "constrained",
		Short: "List assessed skills rated above their ceiling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := opts.loadEngine()
			if err != nil {
				return err
			}
			a, err := opts.loadSnapshot(cmd, eng, true)
			if err != nil {
				return err
			}

			var cs []ceiling.ConstrainedSkill
			opts.timed("constrained_skills", func() { cs = eng.ConstrainedSkills(a) })

			out := cmd.OutOrStdout()
			if opts.jsonOut {
				return writeJSON(out, cs)
			}
			if len(cs) == 0 {
				fmt.Fprintln(out, "No skill is rated above its ceiling.")
				return nil
			}
			for i, c := range cs {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s  %s rated %s, ceiling %s (gap %d)\n",
					theme.Render(theme.Title, c.SkillID), c.DomainID, c.Level, c.Ceiling, c.Gap)
				printConstraints(out, c.ConstrainingPrereqs)
			}
			return nil
		},
	}
}
