package pricing

import "errors"

// ValidationError is the single error kind the engine raises. The message is
// returned to the client verbatim by the API layer.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

var (
	ErrNegativeWeight       = &ValidationError{"Weight must be zero or greater."}
	ErrRegionUnavailable    = &ValidationError{"Region is not available."}
	ErrNoMatchingZone       = &ValidationError{"Region not found for any pricing rule."}
	ErrMethodNotFound       = &ValidationError{"Method not found."}
	ErrMethodRegionMismatch = &ValidationError{"Method not available for this region."}
)

// IsValidation reports whether err is an engine validation failure.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
