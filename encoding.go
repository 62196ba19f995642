// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jbuild

import (
	"errors"

	"github.com/creachadair/jbuild/internal/escape"

	"go4.org/mem"
)

// Errors reported by Unquote for malformed string escapes.  Use
// errors.Is to check for them.
var (
	// ErrInvalidEscape reports an unrecognized or truncated escape
	// sequence.
	ErrInvalidEscape = escape.ErrInvalidEscape

	// ErrInvalidSurrogate reports an unpaired or misordered UTF-16
	// surrogate escape.
	ErrInvalidSurrogate = escape.ErrInvalidSurrogate
)

// Quote encodes src as a JSON string value. The contents are escaped
// and double quotation marks are added.
func Quote(src string) []byte {
	buf := make([]byte, 0, len(src)+2)
	buf = append(buf, '"')
	buf = append(buf, escape.Quote(mem.S(src))...)
	return append(buf, '"')
}

// Unquote decodes a JSON string value.  Double quotation marks are
// removed, and escape sequences are replaced with their unescaped
// equivalents, with UTF-16 surrogate pairs combined.
//
// A malformed escape sequence reports an error wrapping
// ErrInvalidEscape or ErrInvalidSurrogate.
func Unquote(src []byte) ([]byte, error) {
	if len(src) < 2 || src[0] != '"' || src[len(src)-1] != '"' {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.B(src[1 : len(src)-1]))
}
