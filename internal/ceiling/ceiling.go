package ceiling

import (
	"math"
	"sort"
)

// Constraint is one prerequisite's contribution to a skill's ceiling.
type Constraint struct {
	SkillID        string  `json:"id"`
	Level          Level   `json:"level"`
	Strength       float64 `json:"strength"`
	ImposedCeiling Level   `json:"imposedCeiling"`
}

// Ceiling is the highest level a skill can safely hold given its
// prerequisites. ConstrainingPrereqs is sorted tightest first.
type Ceiling struct {
	Ceiling             Level        `json:"ceiling"`
	ConstrainingPrereqs []Constraint `json:"constrainingPrereqs"`
}

// MaxGap returns how many levels a dependent may sit above a prerequisite
// coupled with the given strength: 1 for tight, 2 for moderate, 3 for loose.
func MaxGap(strength float64) int {
	return int(math.Round(1 + 2*(1-strength)))
}

// CeilingFromPrereq returns the ceiling a single prerequisite at level
// imposes on its dependent.
func CeilingFromPrereq(level Level, strength float64) Level {
	return min(Solid, level+Level(MaxGap(strength)))
}

// SkillCeiling computes a skill's ceiling. It reports false for skills
// without direct prerequisites (implicitly Solid) and for unknown skills.
func (e *Engine) SkillCeiling(skillID string, a Assessments) (Ceiling, bool) {
	s, ok := e.skills[skillID]
	if !ok || len(s.Prerequisites) == 0 {
		return Ceiling{}, false
	}

	constraints := make([]Constraint, 0, len(s.Prerequisites))
	c := Solid
	for _, prereqID := range s.Prerequisites {
		strength := e.strengths[edge{skillID, prereqID}]
		level := a.Level(prereqID)
		imposed := CeilingFromPrereq(level, strength)
		constraints = append(constraints, Constraint{
			SkillID:        prereqID,
			Level:          level,
			Strength:       strength,
			ImposedCeiling: imposed,
		})
		c = min(c, imposed)
	}
	sortConstraints(constraints)
	return Ceiling{Ceiling: c, ConstrainingPrereqs: constraints}, true
}

// AllCeilings computes the ceiling of every skill with direct prerequisites.
func (e *Engine) AllCeilings(a Assessments) map[string]Ceiling {
	out := make(map[string]Ceiling, len(e.order))
	for _, id := range e.order {
		if c, ok := e.SkillCeiling(id, a); ok {
			out[id] = c
		}
	}
	return out
}

// sortConstraints orders by imposed ceiling, then strength desc, then id.
func sortConstraints(cs []Constraint) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].ImposedCeiling != cs[j].ImposedCeiling {
			return cs[i].ImposedCeiling < cs[j].ImposedCeiling
		}
		if cs[i].Strength != cs[j].Strength {
			return cs[i].Strength > cs[j].Strength
		}
		return cs[i].SkillID < cs[j].SkillID
	})
}
