package recurrence

import "errors"

var (
	// ErrInvalidDate is returned when an anchor, end, or reference date
	// string is not a valid YYYY-MM-DD date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidInterval is returned when a rule carries a negative interval.
	ErrInvalidInterval = errors.New("invalid interval")
	// ErrInvalidLimit is returned when the enumeration cap resolves to a
	// non-positive value.
	ErrInvalidLimit = errors.New("invalid occurrence limit")
	// ErrUnsupportedFrequency is returned by PreviousOccurrence for
	// frequencies that have no backward-stepping definition.
	ErrUnsupportedFrequency = errors.New("unsupported frequency")
)
