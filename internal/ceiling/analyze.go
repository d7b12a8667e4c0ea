package ceiling

// Report bundles every per-snapshot result.
type Report struct {
	TaxonomyVersion string               `json:"taxonomyVersion"`
	Assessed        int                  `json:"assessed"`
	Ceilings        map[string]Ceiling   `json:"ceilings"`
	Constrained     []ConstrainedSkill   `json:"constrained"`
	Influence       map[string]Influence `json:"influence"`
	StartHere       []PriorityEntry      `json:"startHere"`
	Coverage        Coverage             `json:"coverage"`
}

// Analyze runs every snapshot query once.
func (e *Engine) Analyze(a Assessments) Report {
	assessed := 0
	for id := range a {
		if _, ok := e.skills[id]; ok {
			assessed++
		}
	}
	return Report{
		TaxonomyVersion: e.tax.Version(),
		Assessed:        assessed,
		Ceilings:        e.AllCeilings(a),
		Constrained:     e.ConstrainedSkills(a),
		Influence:       e.SkillInfluence(a),
		StartHere:       e.StartHerePriority(a),
		Coverage:        e.CeilingCoverage(a),
	}
}
