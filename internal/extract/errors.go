// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"fmt"
)

// ErrParse matches any ParseError via errors.Is.
var ErrParse = errors.New("malformed article XML")

// ErrNotFound matches any NotFoundError via errors.Is.
var ErrNotFound = errors.New("article node not found")

// ParseError reports XML that is not well-formed.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %v", ErrParse, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// NotFoundError reports a well-formed document with no article root.
type NotFoundError struct {
	// Roots lists the element names that were looked for.
	Roots []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: looked for %v", ErrNotFound, e.Roots)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
