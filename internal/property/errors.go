package property

import "errors"

// Error kinds raised by constructors and setters. Wrap with fmt.Errorf
// and %w; callers branch with errors.Is.
var (
	// ErrInvalidArgument means a value was supplied but falls outside
	// its allowed bounds or enumeration.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMissingField means a required value was absent entirely.
	ErrMissingField = errors.New("missing required field")
)
