// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Errors reported by Unquote for malformed escape sequences. The errors
// returned by Unquote wrap these sentinels.
var (
	// ErrInvalidEscape reports an unrecognized or truncated escape
	// sequence, including a Unicode escape with invalid hex digits.
	ErrInvalidEscape = errors.New("invalid escape sequence")

	// ErrInvalidSurrogate reports a Unicode escape encoding an unpaired
	// or misordered UTF-16 surrogate.
	ErrInvalidSurrogate = errors.New("invalid surrogate pair")
)

// Unquote decodes a byte slice containing the JSON encoding of a string.
// The input must have the enclosing double quotation marks already
// removed.
//
// Escape sequences are replaced with their unescaped equivalents. A
// surrogate pair of Unicode escapes is combined into the rune the pair
// encodes. Unquote reports an error wrapping ErrInvalidEscape or
// ErrInvalidSurrogate for a malformed escape; the decoder keeps no state
// across calls, so a failed decode leaves nothing behind.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	var rbuf [utf8.UTFMax]byte
	putRune := func(r rune) {
		n := utf8.EncodeRune(rbuf[:], r)
		dec = append(dec, rbuf[:n]...)
	}
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, fmt.Errorf("%w: incomplete escape", ErrInvalidEscape)
		}
		ch := src.At(0)
		src = src.SliceFrom(1)
		switch ch {
		case '"', '\\', '/':
			dec = append(dec, ch)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			r, rest, err := decodeRune(src)
			if err != nil {
				return nil, err
			}
			src = rest
			putRune(r)
		default:
			return nil, fmt.Errorf("%w: \\%c", ErrInvalidEscape, ch)
		}

		// Look for the next escape sequence, and if one is not found we
		// can blit the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// decodeRune decodes the rune encoded by one or two Unicode escapes at
// the front of src, whose leading "\u" has already been consumed, and
// returns the unconsumed remainder of src. A high surrogate must be
// directly followed by a low surrogate escape, and the pair is combined.
func decodeRune(src mem.RO) (rune, mem.RO, error) {
	r, src, err := hex4(src)
	if err != nil {
		return 0, src, err
	}
	if !utf16.IsSurrogate(r) {
		return r, src, nil
	}
	if r >= surrLow {
		return 0, src, fmt.Errorf("%w: unpaired low surrogate %q", ErrInvalidSurrogate, r)
	}

	// r is a high surrogate; a low surrogate escape must follow.
	if src.Len() < 2 || src.At(0) != '\\' || src.At(1) != 'u' {
		return 0, src, fmt.Errorf("%w: missing low surrogate after %q", ErrInvalidSurrogate, r)
	}
	lo, src, err := hex4(src.SliceFrom(2))
	if err != nil {
		return 0, src, err
	}
	if lo < surrLow || lo > surrMax {
		return 0, src, fmt.Errorf("%w: %q is not a low surrogate", ErrInvalidSurrogate, lo)
	}
	return utf16.DecodeRune(r, lo), src, nil
}

const (
	surrLow = 0xdc00 // first low surrogate code point
	surrMax = 0xdfff // last low surrogate code point
)

// hex4 decodes exactly 4 hex digits from the front of src and returns
// the unconsumed remainder of src.
func hex4(src mem.RO) (rune, mem.RO, error) {
	if src.Len() < 4 {
		return 0, src, fmt.Errorf("%w: incomplete Unicode escape", ErrInvalidEscape)
	}
	var v rune
	for i := 0; i < 4; i++ {
		b := src.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += rune(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += rune(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += rune(b - 'A' + 10)
		} else {
			return 0, src, fmt.Errorf("%w: invalid hex digit %q", ErrInvalidEscape, b)
		}
	}
	return v, src.SliceFrom(4), nil
}
