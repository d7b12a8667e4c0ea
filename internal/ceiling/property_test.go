package ceiling

import (
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// snapshotFrom maps generated levels onto skills in topological order;
// negative values leave the skill unassessed.
func snapshotFrom(ids []string, levels []int) Assessments {
	a := Assessments{}
	for i, l := range levels {
		if l >= 0 {
			a[ids[i]] = Level(l)
		}
	}
	return a
}

// TestEngineInvariants checks properties that hold for any snapshot.
func TestEngineInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	e := Default()
	var ids []string
	for _, s := range e.Taxonomy().TopologicalOrder() {
		ids = append(ids, s.ID)
	}
	levels := gen.SliceOfN(len(ids), gen.IntRange(-1, 3))

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	properties.Property("ceilings stay on the level scale and constraints are sorted", prop.ForAll(
		func(ls []int) bool {
			for _, c := range e.AllCeilings(snapshotFrom(ids, ls)) {
				if !c.Ceiling.Valid() || len(c.ConstrainingPrereqs) == 0 {
					return false
				}
				// The tightest constraint is the ceiling.
				if c.ConstrainingPrereqs[0].ImposedCeiling != c.Ceiling {
					return false
				}
				if !sort.SliceIsSorted(c.ConstrainingPrereqs, func(i, j int) bool {
					return c.ConstrainingPrereqs[i].ImposedCeiling < c.ConstrainingPrereqs[j].ImposedCeiling
				}) {
					return false
				}
			}
			return true
		},
		levels,
	))

	properties.Property("constrained skills are exactly those above their ceiling", prop.ForAll(
		func(ls []int) bool {
			a := snapshotFrom(ids, ls)
			flagged := make(map[string]bool)
			for _, cs := range e.ConstrainedSkills(a) {
				level, ok := a.Assessed(cs.SkillID)
				if !ok || level <= cs.Ceiling || cs.Gap != int(level-cs.Ceiling) {
					return false
				}
				for _, cp := range cs.ConstrainingPrereqs {
					if cp.ImposedCeiling >= level {
						return false
					}
				}
				flagged[cs.SkillID] = true
			}
			for id, level := range a {
				if c, ok := e.SkillCeiling(id, a); ok && level > c.Ceiling && !flagged[id] {
					return false
				}
			}
			return true
		},
		levels,
	))

	properties.Property("raising a prerequisite never lowers a ceiling", prop.ForAll(
		func(ls []int, idx int) bool {
			a := snapshotFrom(ids, ls)
			before := e.AllCeilings(a)

			raised := snapshotFrom(ids, ls)
			raised[ids[idx]] = min(Solid, a.Level(ids[idx])+1)
			for id, c := range e.AllCeilings(raised) {
				if c.Ceiling < before[id].Ceiling {
					return false
				}
			}
			return true
		},
		levels,
		gen.IntRange(0, len(ids)-1),
	))

	properties.Property("influence and readiness stay in range", prop.ForAll(
		func(ls []int) bool {
			a := snapshotFrom(ids, ls)
			for id, inf := range e.SkillInfluence(a) {
				if inf.Score < 0 || inf.TransitiveDownstream < inf.DirectDownstream {
					return false
				}
				if inf.ConstrainedDownstream > inf.DirectDownstream {
					return false
				}
				if a.Level(id) == Solid && inf.Score != 0 {
					return false
				}
			}
			for _, id := range ids {
				r, err := e.SkillReadiness(id, a)
				if err != nil || r.Readiness < 0 || r.Readiness > 1 {
					return false
				}
				if r.Ready != (len(r.UnmetDirect)+len(r.UnmetStructural) == 0) {
					return false
				}
			}
			return true
		},
		levels,
	))

	properties.Property("start here lists every unassessed skill once", prop.ForAll(
		func(ls []int) bool {
			a := snapshotFrom(ids, ls)
			entries := e.StartHerePriority(a)
			if len(entries)+len(a) != len(ids) {
				return false
			}
			seen := make(map[string]bool, len(entries))
			for i, p := range entries {
				if _, ok := a.Assessed(p.SkillID); ok || seen[p.SkillID] {
					return false
				}
				seen[p.SkillID] = true
				if i > 0 && entries[i-1].Priority < p.Priority {
					return false
				}
			}
			return true
		},
		levels,
	))

	properties.TestingRun(t)
}
