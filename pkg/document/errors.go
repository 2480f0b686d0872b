package document

import "errors"

var (
	// ErrOffsetOutOfRange indicates an edit outside the document text.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrListenerExists indicates a listener name is already attached.
	ErrListenerExists = errors.New("listener already attached")
)
