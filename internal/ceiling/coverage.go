package ceiling

// Coverage reports how many ceilings are fully determined by the snapshot.
type Coverage struct {
	KnownCeilings int     `json:"knownCeilings"`
	TotalSkills   int     `json:"totalSkills"`
	Coverage      float64 `json:"coverage"`
}

// CeilingCoverage counts skills whose ceiling is known: skills without
// prerequisites always are, others once every direct prerequisite has been
// assessed.
func (e *Engine) CeilingCoverage(a Assessments) Coverage {
	known := 0
	for _, id := range e.order {
		if e.ceilingKnown(id, a) {
			known++
		}
	}
	cov := Coverage{KnownCeilings: known, TotalSkills: len(e.order)}
	if cov.TotalSkills > 0 {
		cov.Coverage = float64(known) / float64(cov.TotalSkills)
	}
	return cov
}

func (e *Engine) ceilingKnown(id string, a Assessments) bool {
	for _, prereqID := range e.skills[id].Prerequisites {
		if _, ok := a.Assessed(prereqID); !ok {
			return false
		}
	}
	return true
}
