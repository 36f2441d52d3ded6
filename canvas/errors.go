package canvas

import "errors"

// Sentinel errors for action handling.
var (
	ErrUnrecognizedAction = errors.New("unrecognized action")
	ErrInvalidPayload     = errors.New("invalid payload")
	ErrMalformedAction    = errors.New("malformed action")
)
