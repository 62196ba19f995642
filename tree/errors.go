// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"errors"
	"fmt"

	"github.com/creachadair/jbuild"
)

// Errors reported during value construction. The errors returned by the
// parser wrap these sentinels; use errors.Is to check for them.
var (
	// ErrNumberFormat reports a numeric literal whose text could not be
	// converted to a value.
	ErrNumberFormat = errors.New("invalid number literal")

	// ErrNumberOverflow reports a numeric literal outside the range of a
	// float64.
	ErrNumberOverflow = errors.New("number out of range")

	// ErrBuilderState reports a broken builder invariant, such as a
	// commit with no pending key or a close event on the wrong builder.
	// It indicates a defect in the driver or grammar, not a problem with
	// the input.
	ErrBuilderState = errors.New("builder state violation")
)

// BuildError is the concrete type of errors reported by the value
// builder. It records the position of the event that failed.
type BuildError struct {
	Location jbuild.LineCol
	Message  string

	err error
}

// Error satisfies the error interface.
func (b *BuildError) Error() string {
	return fmt.Sprintf("at %s: %s", b.Location, b.Message)
}

// Unwrap supports error wrapping.
func (b *BuildError) Unwrap() error { return b.err }
