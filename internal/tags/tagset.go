package tags

import (
	"errors"
	"fmt"
)

// TagSet is the complete artist/album/title triple read from one file.
// Invariant: all three fields are non-empty; partial sets are never produced.
type TagSet struct {
	Artist string
	Album  string
	Title  string
}

var (
	// ErrMissingTag marks extraction failures caused by an absent, blank, or
	// ambiguous required field.
	ErrMissingTag = errors.New("missing tag")
	// ErrUnreadable marks extraction failures caused by a container that
	// could not be parsed.
	ErrUnreadable = errors.New("unreadable file")
)

func missingField(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingTag, field)
}

func ambiguousField(field string, count int) error {
	return fmt.Errorf("%w: %s has %d values", ErrMissingTag, field, count)
}

func unreadable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnreadable, err)
}
