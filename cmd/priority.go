package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/devmap/internal/ceiling"
	"github.com/abhisek/devmap/internal/ui/theme"
	"github.com/spf13/cobra"
)

type influenceRow struct {
	SkillID string `json:"skillId"`
	ceiling.Influence
}

func newInfluenceCmd(opts *options) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "influence",
		Short: "Rank prerequisite skills by how much raising them would unlock",
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

			var inf map[string]ceiling.Influence
			opts.timed("skill_influence", func() { inf = eng.SkillInfluence(a) })

			rows := make([]influenceRow, 0, len(inf))
			for id, v := range inf {
				rows = append(rows, influenceRow{SkillID: id, Influence: v})
			}
			sort.Slice(rows, func(i, j int) bool {
				if rows[i].Score != rows[j].Score {
					return rows[i].Score > rows[j].Score
				}
				if rows[i].TransitiveDownstream != rows[j].TransitiveDownstream {
					return rows[i].TransitiveDownstream > rows[j].TransitiveDownstream
				}
				return rows[i].SkillID < rows[j].SkillID
			})
			if top > 0 && len(rows) > top {
				rows = rows[:top]
			}

			out := cmd.OutOrStdout()
			if opts.jsonOut {
				return writeJSON(out, rows)
			}
			header(out, 84, "%-16s  %6s  %6s  %10s  %11s  %s", "Skill", "Score", "Direct", "Transitive", "Constrained", "Domains")
			for _, r := range rows {
				fmt.Fprintf(out, "%-16s  %6.2f  %6d  %10d  %11d  %s\n",
					r.SkillID, r.Score, r.DirectDownstream, r.TransitiveDownstream,
					r.ConstrainedDownstream, strings.Join(r.AffectedDomains, ","))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 20, "Number of skills to show (0 for all)")
	return cmd
}

func newStartHereCmd(opts *options) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "start-here",
		Short: "Rank unassessed skills by what assessing them would reveal",
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

			var entries []ceiling.PriorityEntry
			opts.timed("start_here_priority", func() { entries = eng.StartHerePriority(a) })
			total := len(entries)
			if top > 0 && len(entries) > top {
				entries = entries[:top]
			}

			out := cmd.OutOrStdout()
			if opts.jsonOut {
				return writeJSON(out, entries)
			}
			header(out, 104, "%4s  %-16s  %-*s  %4s  %8s  %s", "#", "Skill", nameWidth, "Name", "Tier", "Priority", "Reason")
			for i, p := range entries {
				fmt.Fprintf(out, "%4d  %-16s  %-*s  %4d  %8d  %s\n",
					i+1, p.SkillID, nameWidth, truncate(p.Name, nameWidth), p.Tier, p.Priority,
					theme.Render(theme.Reason, p.Reason))
			}
			fmt.Fprintf(out, "\n%d of %d unassessed skills\n", len(entries), total)
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 20, "Number of skills to show (0 for all)")
	return cmd
}
