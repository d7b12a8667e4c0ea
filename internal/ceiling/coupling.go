package ceiling

import (
	"math"
	"sort"

	"github.com/abhisek/devmap/internal/taxonomy"
)

// Coupling strength bounds.
const (
	MinCoupling = 0.25
	MaxCoupling = 0.95
)

// Additive heuristic terms.
const (
	baseRequires = 0.65
	baseSupports = 0.40

	sameTierBonus     = 0.08
	adjacentTierBonus = 0.04
	distantTierBonus  = -0.04 // tier gap of 3 or more

	solePrereqBonus    = 0.10
	pairedPrereqBonus  = 0.04
	crowdedPrereqBonus = -0.03 // five or more prerequisites

	sameSubAreaBonus = 0.08
	sameDomainBonus  = 0.04

	foundationBonus = 0.04

	adjacentSubAreaBonus = 0.03
)

// patternBonus rewards an edge whose prerequisite sub-area pattern feeds a
// dependent sub-area pattern. An empty to matches any cross-domain dependent.
type patternBonus struct {
	from  taxonomy.Pattern
	to    taxonomy.Pattern
	bonus float64
}

var patternBonuses = []patternBonus{
	{taxonomy.PatternInteroception, taxonomy.PatternNamingFeelings, 0.10},
	{taxonomy.PatternDiscomfortTolerance, taxonomy.PatternPersistence, 0.08},
	{taxonomy.PatternDiscomfortTolerance, taxonomy.PatternFlexibility, 0.06},
	{taxonomy.PatternSelfAwareness, taxonomy.PatternPerspectiveTaking, 0.06},
	{taxonomy.PatternNamingFeelings, taxonomy.PatternSelfTalk, 0.05},
	{taxonomy.PatternSelfMonitoring, taxonomy.PatternContextAdaptation, 0.05},
	{taxonomy.PatternCalming, "", 0.04},
	{taxonomy.PatternTriggerAwareness, "", 0.03},
}

// EdgeStrength is the coupling of one direct prerequisite edge.
type EdgeStrength struct {
	PrerequisiteID string  `json:"prerequisiteId"`
	Strength       float64 `json:"strength"`
	Overridden     bool    `json:"overridden"`
}

// CouplingStrength returns the strength in [0.25, 0.95] with which
// prerequisiteID gates dependentID. Unknown skills yield 0.
func (e *Engine) CouplingStrength(dependentID, prerequisiteID string) float64 {
	if s, ok := e.strengths[edge{dependentID, prerequisiteID}]; ok {
		return s
	}
	return e.coupling(dependentID, prerequisiteID)
}

// EdgeStrengths returns the coupling of each direct prerequisite of a skill,
// strongest first.
func (e *Engine) EdgeStrengths(skillID string) []EdgeStrength {
	s, ok := e.skills[skillID]
	if !ok {
		return nil
	}
	out := make([]EdgeStrength, 0, len(s.Prerequisites))
	for _, prereqID := range s.Prerequisites {
		_, pinned := e.tax.Override(skillID, prereqID)
		out = append(out, EdgeStrength{
			PrerequisiteID: prereqID,
			Strength:       e.strengths[edge{skillID, prereqID}],
			Overridden:     pinned,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Strength != out[j].Strength {
			return out[i].Strength > out[j].Strength
		}
		return out[i].PrerequisiteID < out[j].PrerequisiteID
	})
	return out
}

func (e *Engine) coupling(dependentID, prerequisiteID string) float64 {
	if v, ok := e.tax.Override(dependentID, prerequisiteID); ok {
		return v
	}
	dep, ok := e.skills[dependentID]
	if !ok {
		return 0
	}
	pre, ok := e.skills[prerequisiteID]
	if !ok {
		return 0
	}

	sameDomain := dep.DomainID == pre.DomainID
	s := baseSupports
	if e.tax.Relation(dep.DomainID, pre.DomainID) == taxonomy.RelationRequires {
		s = baseRequires
	}

	switch gap := absInt(dep.Tier - pre.Tier); {
	case gap == 0:
		s += sameTierBonus
	case gap == 1:
		s += adjacentTierBonus
	case gap >= 3:
		s += distantTierBonus
	}

	switch n := len(dep.Prerequisites); {
	case n == 1:
		s += solePrereqBonus
	case n == 2:
		s += pairedPrereqBonus
	case n >= 5:
		s += crowdedPrereqBonus
	}

	if dep.SubAreaID == pre.SubAreaID {
		s += sameSubAreaBonus
	} else if sameDomain {
		s += sameDomainBonus
	}

	if !sameDomain && e.tax.IsFoundational(pre.DomainID) {
		s += foundationBonus
	}

	depArea, preArea := e.subAreas[dep.SubAreaID], e.subAreas[pre.SubAreaID]
	for _, pb := range patternBonuses {
		if pb.from != preArea.Pattern {
			continue
		}
		if pb.to == "" && !sameDomain || pb.to != "" && pb.to == depArea.Pattern {
			s += pb.bonus
		}
	}
	if sameDomain && preArea.Index+1 == depArea.Index {
		s += adjacentSubAreaBonus
	}

	return round2(clamp(s, MinCoupling, MaxCoupling))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
