package bind

import (
	"errors"
	"fmt"
)

var (
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrMissingKey    = errors.New("missing list key")
	ErrKeyArity      = errors.New("key arity mismatch")
	ErrUnknownMember = errors.New("unknown member")
	ErrAbsent        = errors.New("no data")
)

// TypeError reports backing data of the wrong shape for its schema
// position.
type TypeError struct {
	FieldPath string
	Expected  string
	Actual    string
	Message   string
}

func (e *TypeError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("type mismatch at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("type mismatch at %s: expected %s, got %s", e.FieldPath, e.Expected, e.Actual)
}

func (e *TypeError) Unwrap() error { return ErrTypeMismatch }

// MissingKeyError reports a list item whose identity cannot be determined:
// no key was given and the list does not hold exactly one entry.
type MissingKeyError struct {
	FieldPath string
	Entries   int
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing key for list %s: %d entries", e.FieldPath, e.Entries)
}

func (e *MissingKeyError) Unwrap() error { return ErrMissingKey }

// KeyArityError reports a key tuple whose length differs from the number
// of key leaves.
type KeyArityError struct {
	FieldPath string
	Want, Got int
}

func (e *KeyArityError) Error() string {
	return fmt.Sprintf("list %s takes %d key values, got %d", e.FieldPath, e.Want, e.Got)
}

func (e *KeyArityError) Unwrap() error { return ErrKeyArity }
