// Package ceiling implements the developmental dependency and ceiling
// engine: coupling strengths on prerequisite edges, per-skill ceilings,
// constraint detection, influence scoring, readiness and the "start here"
// ranking of unassessed skills.
//
// Every query is a pure function of the immutable taxonomy and the caller's
// assessment snapshot, so an Engine is safe for concurrent use.
package ceiling

import (
	"sync"

	"github.com/abhisek/devmap/internal/taxonomy"
)

// Engine answers ceiling queries over one taxonomy.
type Engine struct {
	tax       *taxonomy.Taxonomy
	skills    map[string]taxonomy.Skill
	order     []string
	subAreas  map[string]taxonomy.SubArea
	bySubArea map[string][]taxonomy.Skill
	reach     *reach
	strengths map[edge]float64
}

type edge struct {
	dependent    string
	prerequisite string
}

// New builds an engine and precomputes its reverse index, transitive
// closure sizes and edge strengths.
func New(tax *taxonomy.Taxonomy) *Engine {
	skills := tax.Skills()
	e := &Engine{
		tax:       tax,
		skills:    make(map[string]taxonomy.Skill, len(skills)),
		order:     make([]string, 0, len(skills)),
		subAreas:  make(map[string]taxonomy.SubArea),
		bySubArea: make(map[string][]taxonomy.Skill),
		reach:     buildReach(skills),
		strengths: make(map[edge]float64),
	}
	for _, s := range skills {
		e.skills[s.ID] = s
		e.order = append(e.order, s.ID)
		e.bySubArea[s.SubAreaID] = append(e.bySubArea[s.SubAreaID], s)
	}
	for _, sa := range tax.SubAreas() {
		e.subAreas[sa.ID] = sa
	}
	for _, s := range skills {
		for _, prereqID := range s.Prerequisites {
			e.strengths[edge{s.ID, prereqID}] = e.coupling(s.ID, prereqID)
		}
	}
	return e
}

// Taxonomy returns the taxonomy the engine was built over.
func (e *Engine) Taxonomy() *taxonomy.Taxonomy {
	return e.tax
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the engine over the embedded taxonomy, built on first use.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = New(taxonomy.Default())
	})
	return defaultEngine
}

// CouplingStrength returns the coupling of a prerequisite edge in the default engine.
func CouplingStrength(dependentID, prerequisiteID string) float64 {
	return Default().CouplingStrength(dependentID, prerequisiteID)
}

// SkillCeiling returns a skill's ceiling in the default engine.
func SkillCeiling(skillID string, a Assessments) (Ceiling, bool) {
	return Default().SkillCeiling(skillID, a)
}

// AllCeilings returns every computed ceiling in the default engine.
func AllCeilings(a Assessments) map[string]Ceiling {
	return Default().AllCeilings(a)
}

// ConstrainedSkills returns skills rated above their ceiling in the default engine.
func ConstrainedSkills(a Assessments) []ConstrainedSkill {
	return Default().ConstrainedSkills(a)
}

// SkillInfluence scores prerequisite skills in the default engine.
func SkillInfluence(a Assessments) map[string]Influence {
	return Default().SkillInfluence(a)
}

// StartHerePriority ranks unassessed skills in the default engine.
func StartHerePriority(a Assessments) []PriorityEntry {
	return Default().StartHerePriority(a)
}

// SkillReadiness evaluates a skill's readiness in the default engine.
func SkillReadiness(skillID string, a Assessments) (Readiness, error) {
	return Default().SkillReadiness(skillID, a)
}

// CeilingCoverage reports ceiling coverage in the default engine.
func CeilingCoverage(a Assessments) Coverage {
	return Default().CeilingCoverage(a)
}
