package assessment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSnapshot is returned for snapshots that are not a mapping of
	// skill ids to levels 0..3 or null.
	ErrInvalidSnapshot = errors.New("invalid assessment snapshot")

	// ErrUnknownSkill is returned in strict mode for ids the taxonomy lacks.
	ErrUnknownSkill = errors.New("unknown skill")
)

// SnapshotError ties a snapshot failure to its source.
type SnapshotError struct {
	Path string
	Err  error
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("assessment snapshot %s: %v", e.Path, e.Err)
}

func (e *SnapshotError) Unwrap() error { return e.Err }
