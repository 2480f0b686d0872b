package textrange

import "errors"

var (
	// ErrInvalidRange is returned when range bounds are inverted or use sentinel values.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidChange is returned when a text change has negative fields.
	ErrInvalidChange = errors.New("invalid text change")
)
