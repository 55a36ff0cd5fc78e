package pipeline

import (
	"errors"

	"github.com/factyne/factyne/internal/extract"
)

// Failure reason codes surfaced on failed requests. Callers see the code,
// never internal detail.
const (
	ReasonTimeout          = "processing_timeout"
	ReasonComponentFailure = "component_failure"
)

// IsValidationError reports whether err is an input validation error, i.e.
// one that is rejected before processing begins and surfaces synchronously
// at submission time.
func IsValidationError(err error) bool {
	return errors.Is(err, extract.ErrEmptyText) || errors.Is(err, extract.ErrTextTooLong)
}
