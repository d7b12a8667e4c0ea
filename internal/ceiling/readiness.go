package ceiling

import (
	"fmt"

	"github.com/abhisek/devmap/internal/taxonomy"
)

// Readiness is the share of a skill's direct and structural prerequisites
// already at Developing or above.
type Readiness struct {
	Ready           bool     `json:"ready"`
	Readiness       float64  `json:"readiness"`
	UnmetDirect     []string `json:"unmetDirect"`
	UnmetStructural []string `json:"unmetStructural"`
	PrereqCount     int      `json:"prereqCount"`
}

// SkillReadiness combines a skill's direct prerequisites with the skills of
// its sub-area's prerequisite sub-areas at the same or a lower tier. A skill
// listed both ways counts once, as direct.
func (e *Engine) SkillReadiness(skillID string, a Assessments) (Readiness, error) {
	s, ok := e.skills[skillID]
	if !ok {
		return Readiness{}, fmt.Errorf("readiness: %w: %q", taxonomy.ErrSkillNotFound, skillID)
	}

	r := Readiness{UnmetDirect: []string{}, UnmetStructural: []string{}}
	seen := make(map[string]bool)
	met := 0
	for _, prereqID := range s.Prerequisites {
		seen[prereqID] = true
		if a.Level(prereqID) >= MetLevel {
			met++
		} else {
			r.UnmetDirect = append(r.UnmetDirect, prereqID)
		}
	}
	for _, saID := range e.subAreas[s.SubAreaID].Prerequisites {
		for _, gate := range e.bySubArea[saID] {
			if gate.Tier > s.Tier || seen[gate.ID] {
				continue
			}
			seen[gate.ID] = true
			if a.Level(gate.ID) >= MetLevel {
				met++
			} else {
				r.UnmetStructural = append(r.UnmetStructural, gate.ID)
			}
		}
	}

	r.PrereqCount = len(seen)
	if r.PrereqCount == 0 {
		r.Ready, r.Readiness = true, 1
		return r, nil
	}
	r.Readiness = float64(met) / float64(r.PrereqCount)
	r.Ready = met == r.PrereqCount
	return r, nil
}
