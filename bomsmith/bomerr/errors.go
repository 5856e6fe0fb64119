package bomerr

var (
	// ErrValidationFailed indicates the BOM had at least one validation finding (each one is reported separately).
	ErrValidationFailed = NewExpectedErr("the BOM failed validation")

	// ErrNoOutputs indicates that no output target was requested.
	ErrNoOutputs = NewExpectedErr("no output targets were requested")
)
