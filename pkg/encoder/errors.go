package encoder

import "errors"

var (
	ErrUnrecognizedShape  = errors.New("neither raw hex nor guid")
	ErrMalformedCanonical = errors.New("invalid canonical guid")
	ErrMalformedRawHex    = errors.New("invalid raw hex")
)
