package tempo

import "errors"

// Sentinel errors for loop configuration.
var (
	// ErrNoDuration is returned when looping is enabled on a timeline whose
	// duration is unset.
	ErrNoDuration = errors.New("tempo: loop requires a duration")

	// ErrInvalidRepeatCount is returned by SetFiniteLoop for counts below 1.
	ErrInvalidRepeatCount = errors.New("tempo: repeat count must be at least 1")
)
