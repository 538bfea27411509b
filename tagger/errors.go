package tagger

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is returned for a line without a tag column.
	ErrMalformedLine = errors.New("malformed line")

	// ErrUnencodableWord is returned when a word cannot be written without
	// breaking the column format.
	ErrUnencodableWord = errors.New("word cannot be encoded")

	// ErrUnencodableTag is returned when asked to write a tag the decoder
	// would not read back.
	ErrUnencodableTag = errors.New("tag cannot be encoded")
)

// LineError attaches an input line number to a decoding error.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
