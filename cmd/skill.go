package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/devmap/internal/ceiling"
	"github.com/abhisek/devmap/internal/taxonomy"
	"github.com/abhisek/devmap/internal/ui/theme"
	"github.com/spf13/cobra"
)

func newSkillCmd(opts *options) *cobra.Command {
	skillCmd := &cobra.Command{
		Use:   "skill",
		Short: "Browse the skill taxonomy",
	}
	skillCmd.AddCommand(newSkillListCmd(opts), newSkillShowCmd(opts))
	return skillCmd
}

func newSkillListCmd(opts *options) *cobra.Command {
	var (
		domain  string
		subArea string
		tier    int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List skills (optionally filtered by domain, sub-area or tier)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := opts.loadEngine()
			if err != nil {
				return err
			}
			tax := eng.Taxonomy()

			var skills []taxonomy.Skill
			switch {
			case (domain != "" && subArea != "") || (tier != 0 && (domain != "" || subArea != "")):
				return fmt.Errorf("use only one of --domain, --sub-area or --tier")
			case domain != "":
				if _, ok := tax.Domain(domain); !ok {
					return fmt.Errorf("no domain %q", domain)
				}
				skills = tax.SkillsInDomain(domain)
			case subArea != "":
				if _, ok := tax.SubArea(subArea); !ok {
					return fmt.Errorf("no sub-area %q", subArea)
				}
				skills = tax.SkillsInSubArea(subArea)
			case tier != 0:
				if tier < taxonomy.MinTier || tier > taxonomy.MaxTier {
					return fmt.Errorf("tier must be between %d and %d", taxonomy.MinTier, taxonomy.MaxTier)
				}
				skills = tax.SkillsAtTier(tier)
			default:
				skills = tax.TopologicalOrder()
			}

			out := cmd.OutOrStdout()
			if opts.jsonOut {
				return writeJSON(out, skills)
			}

			header(out, 100, "%-16s  %-*s  %4s  %6s  %s", "ID", nameWidth, "Name", "Tier", "Prereq", "Downstream")
			for _, s := range skills {
				fmt.Fprintf(out, "%-16s  %-*s  %4d  %6d  %d\n",
					s.ID, nameWidth, truncate(s.Name, nameWidth), s.Tier,
					len(s.Prerequisites), eng.DownstreamCount(s.ID))
			}
			fmt.Fprintf(out, "\n%d skills\n", len(skills))
			return nil
		},
	}
	cmd.Flags().StringVar(&domain, "domain", "", "Filter by domain id (e.g. d1)")
	cmd.Flags().StringVar(&subArea, "sub-area", "", "Filter by sub-area id (e.g. d2-sa1)")
	cmd.Flags().IntVar(&tier, "tier", 0, "Filter by tier (1-5)")
	return cmd
}

type skillDetail struct {
	taxonomy.Skill
	Domain        string                 `json:"domain"`
	SubArea       string                 `json:"subArea"`
	Pattern       taxonomy.Pattern       `json:"pattern,omitempty"`
	Edges         []ceiling.EdgeStrength `json:"edges"`
	Dependents    []string               `json:"dependents"`
	Downstream    int                    `json:"downstream"`
	Foundational  bool                   `json:"foundational"`
	SubAreaGating []string               `json:"subAreaPrerequisites"`
}

func newSkillShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <skill-id>",
		Short: "Show a skill with its prerequisite couplings and dependents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := opts.loadEngine()
			if err != nil {
				return err
			}
			tax := eng.Taxonomy()

			s, err := tax.Skill(args[0])
			if err != nil {
				return err
			}
			d, _ := tax.Domain(s.DomainID)
			sa, _ := tax.SubArea(s.SubAreaID)

			detail := skillDetail{
				Skill:        s,
				Domain:       d.Name,
				SubArea:      sa.Name,
				Pattern:      sa.Pattern,
				Edges:        eng.EdgeStrengths(s.ID),
				Dependents:   eng.Dependents(s.ID),
				Downstream:   eng.DownstreamCount(s.ID),
				Foundational: d.Foundational,
			}
			for _, gate := range tax.SubAreaPrerequisites(s.SubAreaID) {
				detail.SubAreaGating = append(detail.SubAreaGating, gate.ID)
			}

			out := cmd.OutOrStdout()
			if opts.jsonOut {
				return writeJSON(out, detail)
			}

			fmt.Fprintln(out, theme.Render(theme.Title, s.Name))
			fmt.Fprintf(out, "%-12s %s\n", "ID", s.ID)
			fmt.Fprintf(out, "%-12s %s (%s)\n", "Domain", d.Name, d.ID)
			fmt.Fprintf(out, "%-12s %s (%s)\n", "Sub-area", sa.Name, sa.ID)
			fmt.Fprintf(out, "%-12s %d\n", "Tier", s.Tier)
			if len(detail.SubAreaGating) > 0 {
				fmt.Fprintf(out, "%-12s %s\n", "Gated by", strings.Join(detail.SubAreaGating, ", "))
			}
			fmt.Fprintf(out, "%-12s %d\n\n", "Downstream", detail.Downstream)

			if len(detail.Edges) == 0 {
				fmt.Fprintln(out, theme.Render(theme.Hint, "No prerequisites: the ceiling is always Solid."))
			} else {
				header(out, 70, "%-16s  %-8s  %-7s  %s", "Prerequisite", "Strength", "Max gap", "")
				for _, e := range detail.Edges {
					pinned := ""
					if e.Overridden {
						pinned = theme.Render(theme.Hint, "pinned")
					}
					fmt.Fprintf(out, "%-16s  %8.2f  %7d  %s\n", e.PrerequisiteID, e.Strength, ceiling.MaxGap(e.Strength), pinned)
				}
			}
			if len(detail.Dependents) > 0 {
				fmt.Fprintf(out, "\nDependents: %s\n", strings.Join(detail.Dependents, ", "))
			}
			return nil
		},
	}
}
