package analytics

import (
	"fmt"

	"launch_dash/internal/models"
)

// InvalidSelectionError is returned when a selection falls outside the known
// site modes or carries a malformed payload range. Callers may re-prompt or ignore it.
type InvalidSelectionError struct {
	Field  string // "site" or "payload_range"
	Value  string
	Reason error
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid selection: %s %q: %v", e.Field, e.Value, e.Reason)
}

func (e *InvalidSelectionError) Unwrap() error {
	return e.Reason
}

func invalidRange(rng models.PayloadRange, err error) *InvalidSelectionError {
	return &InvalidSelectionError{
		Field:  "payload_range",
		Value:  fmt.Sprintf("[%g, %g]", rng.Lo, rng.Hi),
		Reason: err,
	}
}

func unknownSite(site string) *InvalidSelectionError {
	return &InvalidSelectionError{
		Field:  "site",
		Value:  site,
		Reason: fmt.Errorf("%w: unknown launch site", models.ErrInvalidSiteMode),
	}
}
