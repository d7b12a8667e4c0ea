package ceiling

import "sort"

// ConstrainedSkill is a skill rated above its ceiling.
type ConstrainedSkill struct {
	SkillID  string `json:"skillId"`
	Level    Level  `json:"level"`
	Ceiling  Level  `json:"ceiling"`
	Gap      int    `json:"gap"`
	DomainID string `json:"domainId"`
	// ConstrainingPrereqs holds only prerequisites imposing a ceiling
	// below the skill's level, tightest first.
	ConstrainingPrereqs []Constraint `json:"constrainingPrereqs"`
}

// ConstrainedSkills flags assessed skills whose level exceeds their ceiling,
// largest gap first. Unassessed skills never appear.
func (e *Engine) ConstrainedSkills(a Assessments) []ConstrainedSkill {
	out := []ConstrainedSkill{}
	for id, level := range a {
		c, ok := e.SkillCeiling(id, a)
		if !ok || level <= c.Ceiling {
			continue
		}
		var binding []Constraint
		for _, cp := range c.ConstrainingPrereqs {
			if cp.ImposedCeiling < level {
				binding = append(binding, cp)
			}
		}
		out = append(out, ConstrainedSkill{
			SkillID:             id,
			Level:               level,
			Ceiling:             c.Ceiling,
			Gap:                 int(level - c.Ceiling),
			DomainID:            e.skills[id].DomainID,
			ConstrainingPrereqs: binding,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Gap != out[j].Gap {
			return out[i].Gap > out[j].Gap
		}
		return out[i].SkillID < out[j].SkillID
	})
	return out
}
