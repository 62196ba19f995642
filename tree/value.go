// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package tree defines a tree of decoded JSON values, and a parser that
// constructs value trees from JSON source.
package tree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jbuild"
)

// A Value is an arbitrary decoded JSON value.
//
// The concrete types of a Value are the types defined in this package:
// Null, Bool, Number, String, Array and Object. A composite value
// exclusively owns its children; a value tree contains no cycles.
type Value interface {
	// JSON renders the value as compact JSON text.
	JSON() string
}

type nullType struct{}

// Null is the JSON null constant.
var Null = nullType{}

// JSON satisfies the Value interface.
func (nullType) JSON() string { return "null" }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// A Number is a numeric value. Numbers are stored as float64, so
// decoding a literal that exceeds the precision of a float64 is
// approximate.
type Number float64

// JSON satisfies the Value interface.
func (n Number) JSON() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

// A String is a string value. The text is fully decoded, with escape
// sequences already replaced.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return string(jbuild.Quote(string(s))) }

// An Array is an ordered sequence of values.
type Array []Value

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string // the decoded member key
	Value Value
}

// An Object is a collection of key-value members, in order of first
// appearance in the source. Keys are unique: inserting a member with a
// key already present replaces the value of the existing member.
type Object []*Member

// JSON satisfies the Value interface.
func (o Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.Write(jbuild.Quote(m.Key))
		sb.WriteByte(':')
		sb.WriteString(m.Value.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Find returns the member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Plain converts v into a tree of plain Go values: nil, bool, float64,
// string, []any and map[string]any. Member order is not preserved.
// Plain panics if v is not one of the value types of this package.
func Plain(v Value) any {
	switch t := v.(type) {
	case nullType:
		return nil
	case Bool:
		return bool(t)
	case Number:
		return float64(t)
	case String:
		return string(t)
	case Array:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = Plain(elt)
		}
		return out
	case Object:
		out := make(map[string]any, len(t))
		for _, m := range t {
			out[m.Key] = Plain(m.Value)
		}
		return out
	default:
		panic(fmt.Sprintf("invalid value type %T", v))
	}
}
