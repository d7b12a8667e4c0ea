package ceiling

import "fmt"

// Level is an assessment level on the 0..3 scale.
type Level int

const (
	NotPresent Level = iota // Skill not observed
	NeedsWork               // Emerging with heavy support
	Developing              // Present but inconsistent
	Solid                   // Reliable across settings
)

// MetLevel is the lowest level at which a prerequisite counts as met.
const MetLevel = Developing

// Valid reports whether l is on the 0..3 scale.
func (l Level) Valid() bool {
	return l >= NotPresent && l <= Solid
}

// String returns the display label for a level.
func (l Level) String() string {
	switch l {
	case NotPresent:
		return "Not Present"
	case NeedsWork:
		return "Needs Work"
	case Developing:
		return "Developing"
	case Solid:
		return "Solid"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Assessments is an assessment snapshot: skill id to assessed level.
// A skill absent from the map is unassessed and propagates as NotPresent.
type Assessments map[string]Level

// Level returns the level used for propagation math; unassessed skills are 0.
func (a Assessments) Level(id string) Level {
	return a[id]
}

// Assessed returns the assessed level and whether the skill has been assessed.
func (a Assessments) Assessed(id string) (Level, bool) {
	l, ok := a[id]
	return l, ok
}
