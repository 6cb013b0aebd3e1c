package store

import "errors"

// Sentinel errors returned (wrapped) by the file stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrWritingFile is returned when a file or its parent directory cannot
	// be written.
	ErrWritingFile = errors.New("error writing file")

	// ErrReadingFile is returned when an existing file cannot be read.
	ErrReadingFile = errors.New("error reading file")

	// ErrEncodingErrorLog is returned when error records cannot be encoded.
	ErrEncodingErrorLog = errors.New("error encoding error log")

	// ErrEmptyPath is returned when a store is asked to use an empty path.
	ErrEmptyPath = errors.New("empty file path")
)
