package mbti

import "errors"

// Sentinel kinds for catalog and scoring contract violations.
var (
	ErrUnknownDimension  = errors.New("unknown dimension")
	ErrUnknownPolarity   = errors.New("unknown polarity")
	ErrValueOutOfRange   = errors.New("answer value out of range")
	ErrMissingQuestionID = errors.New("missing question id")
	ErrUnknownType       = errors.New("unknown personality type")
)
