package taxonomy

// Tier bounds for developmental complexity.
const (
	MinTier = 1
	MaxTier = 5
)

// Relation classifies how a dependent domain relies on a prerequisite domain.
type Relation string

const (
	RelationRequires Relation = "requires" // Hard developmental gate
	RelationSupports Relation = "supports" // Facilitative, non-blocking
)

// Pattern is the clinical pattern tag carried by a sub-area. Coupling
// heuristics match on pattern pairs rather than on sub-area ids.
type Pattern string

const (
	PatternInteroception       Pattern = "interoception"
	PatternCalming             Pattern = "calming"
	PatternTriggerAwareness    Pattern = "trigger-awareness"
	PatternNamingFeelings      Pattern = "naming-feelings"
	PatternSelfAwareness       Pattern = "self-awareness"
	PatternDiscomfortTolerance Pattern = "discomfort-tolerance"
	PatternPersistence         Pattern = "persistence"
	PatternFlexibility         Pattern = "flexibility"
	PatternSelfMonitoring      Pattern = "self-monitoring"
	PatternPerspectiveTaking   Pattern = "perspective-taking"
	PatternContextAdaptation   Pattern = "context-adaptation"
	PatternSelfTalk            Pattern = "self-talk"
)

// Domain is a top-level developmental area.
type Domain struct {
	ID           string
	Name         string
	Foundational bool
	SubAreas     []string
}

// SubArea groups related skills inside a domain.
type SubArea struct {
	ID       string
	Name     string
	DomainID string
	// Index is the sub-area's position within its domain, starting at 1.
	Index   int
	Pattern Pattern
	// Prerequisites lists structural prerequisite sub-areas, always in
	// another domain.
	Prerequisites []string
	SubGroups     []SubGroup
}

// SubGroup is a progression of skills inside a sub-area.
type SubGroup struct {
	ID   string
	Name string
}

// Skill is a single assessable developmental skill.
type Skill struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Tier          int      `json:"tier"`
	DomainID      string   `json:"domainId"`
	SubAreaID     string   `json:"subAreaId"`
	SubGroupID    string   `json:"subGroupId"`
	Prerequisites []string `json:"prerequisites"`
}

// Override pins the coupling strength of one direct prerequisite edge.
type Override struct {
	Dependent    string
	Prerequisite string
	Strength     float64
}

type edgeKey struct {
	dependent    string
	prerequisite string
}
