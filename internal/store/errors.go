package store

import "errors"

// Sentinel errors returned by [FieldStore] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrReadingFields is returned when the field document exists but cannot
	// be read.
	ErrReadingFields = errors.New("error reading field document")

	// ErrDecodingFields is returned when the field document is not valid
	// JSON or does not have the expected layout.
	ErrDecodingFields = errors.New("error decoding field document")

	// ErrWritingFields is returned when the field document cannot be written
	// or moved into place.
	ErrWritingFields = errors.New("error writing field document")

	// ErrNilFields is returned by Save when called with a nil collection.
	ErrNilFields = errors.New("nil field collection")
)
