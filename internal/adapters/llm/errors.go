package llm

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrUnavailable         = errors.New("generator not configured")
	ErrRequestFailed       = errors.New("generation request failed")
	ErrUnexpectedStatus    = errors.New("generation endpoint returned unexpected status")
	ErrEmptyCompletion     = errors.New("generation returned no choices")
	ErrMalformedCompletion = errors.New("generation returned malformed scenario payload")
)
