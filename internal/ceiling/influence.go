package ceiling

import (
	"slices"
	"sort"
)

// Influence scores how much raising a prerequisite skill would unlock.
type Influence struct {
	// Score sums the coupling strengths of dependents whose ceiling would
	// rise if the skill went up one level.
	Score                 float64  `json:"influenceScore"`
	DirectDownstream      int      `json:"directDownstream"`
	TransitiveDownstream  int      `json:"transitiveDownstream"`
	ConstrainedDownstream int      `json:"constrainedDownstream"`
	AffectedDomains       []string `json:"affectedDomains"`
}

// SkillInfluence scores every skill that is a prerequisite of at least one
// other skill.
func (e *Engine) SkillInfluence(a Assessments) map[string]Influence {
	out := make(map[string]Influence, len(e.reach.dependents))
	for _, id := range e.order {
		deps := e.reach.direct(id)
		if len(deps) == 0 {
			continue
		}

		current := a.Level(id)
		hypothetical := min(Solid, current+1)

		var score float64
		constrained := 0
		domains := make(map[string]bool)
		for _, depID := range deps {
			strength := e.strengths[edge{depID, id}]
			currentCeiling := CeilingFromPrereq(current, strength)
			if CeilingFromPrereq(hypothetical, strength) > currentCeiling {
				score += strength
				domains[e.skills[depID].DomainID] = true
			}
			if level, ok := a.Assessed(depID); ok && level > currentCeiling {
				constrained++
			}
		}

		affected := make([]string, 0, len(domains))
		for d := range domains {
			affected = append(affected, d)
		}
		sort.Strings(affected)

		out[id] = Influence{
			Score:                 round2(score),
			DirectDownstream:      len(deps),
			TransitiveDownstream:  e.reach.transitive(id),
			ConstrainedDownstream: constrained,
			AffectedDomains:       affected,
		}
	}
	return out
}

// Dependents returns the direct dependents of a skill, sorted by id.
func (e *Engine) Dependents(skillID string) []string {
	return slices.Clone(e.reach.direct(skillID))
}

// DownstreamCount returns how many skills sit transitively downstream of a skill.
func (e *Engine) DownstreamCount(skillID string) int {
	return e.reach.transitive(skillID)
}
