package taxonomy

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSkillNotFound   = errors.New("skill not found")
	ErrInvalidTaxonomy = errors.New("invalid taxonomy")
)

// ValidationError lists every structural problem found while building a
// taxonomy.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Problems) == 0 {
		return ErrInvalidTaxonomy.Error()
	}
	return fmt.Sprintf("taxonomy validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidTaxonomy }

func notFound(id string) error {
	return fmt.Errorf("%w: %q", ErrSkillNotFound, id)
}
