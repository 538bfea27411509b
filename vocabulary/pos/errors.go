package pos

import (
	"errors"
	"strconv"
)

// ErrUnrecognizedTag is matched by every error returned for a string that is
// not in the tag vocabulary.
var ErrUnrecognizedTag = errors.New("unrecognized POS tag")

// UnrecognizedTagError reports a string with no corresponding Tag.
type UnrecognizedTagError struct {
	Value string
}

func (e *UnrecognizedTagError) Error() string {
	return ErrUnrecognizedTag.Error() + " " + strconv.Quote(e.Value)
}

// Is makes errors.Is(err, ErrUnrecognizedTag) hold.
func (e *UnrecognizedTagError) Is(target error) bool {
	return target == ErrUnrecognizedTag
}
