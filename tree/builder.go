// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import "fmt"

// A frame accumulates the partial state of one grammar rule while the
// driver evaluates its sub-rules. The handler pushes a frame when the
// driver enters the corresponding rule, and pops it when the rule ends;
// a popped frame is never used again.
//
// Each frame owns a single pending slot holding the most recently
// completed child value. The slot is filled by take when a nested rule
// succeeds, and drained by commit when the driver reports the separator
// ending the member or element. Closing a frame commits a still-occupied
// slot exactly once, which covers the final element before the closing
// bracket.
type frame interface {
	// take stores v as the frame's pending child value. If a value is
	// already pending, the old value is committed first; under a correct
	// driver that does not happen, but a stale value must never be
	// dropped or inserted twice.
	take(v Value) error
}

// A rootFrame is the bottom of the builder stack: it holds the finished
// values of top-level rules for the caller.
type rootFrame struct {
	vals []Value
}

func (f *rootFrame) take(v Value) error {
	f.vals = append(f.vals, v)
	return nil
}

// An arrayFrame accumulates the elements of one array rule. The vals
// sequence holds all fully separated prior elements; at most the most
// recent uncommitted element is pending.
type arrayFrame struct {
	vals    []Value
	pending Value
	full    bool
}

func (f *arrayFrame) take(v Value) error {
	if f.full {
		if err := f.commit(); err != nil {
			return err
		}
	}
	f.pending, f.full = v, true
	return nil
}

// commit appends the pending element, if any, to the sequence.
// Committing an empty slot is a no-op, so a close event following a
// separator cannot insert a stale element twice.
func (f *arrayFrame) commit() error {
	if f.full {
		f.vals = append(f.vals, f.pending)
		f.pending, f.full = nil, false
	}
	return nil
}

// close commits any remaining pending element and returns the finished
// array.
func (f *arrayFrame) close() (Value, error) {
	if err := f.commit(); err != nil {
		return nil, err
	}
	return Array(f.vals), nil
}

// An objectFrame accumulates the members of one object rule. A key and
// its value are inserted into the member list together, when the driver
// reports the separator ending the member.
type objectFrame struct {
	members []*Member
	index   map[string]int // key to member position, for overwrites

	key     string // decoded key of the current member
	hasKey  bool
	pending Value
	full    bool
}

// setKey records the decoded key of the member now being built, and
// clears any key left over from a previous member.
func (f *objectFrame) setKey(key string) {
	f.key, f.hasKey = key, true
}

func (f *objectFrame) take(v Value) error {
	if f.full {
		if err := f.commit(); err != nil {
			return err
		}
	}
	f.pending, f.full = v, true
	return nil
}

// commit inserts the pending value under the current key and clears
// both. A duplicate key overwrites the value of the existing member.
func (f *objectFrame) commit() error {
	if !f.full {
		return nil
	}
	if !f.hasKey {
		return fmt.Errorf("%w: value committed without a key", ErrBuilderState)
	}
	if i, ok := f.index[f.key]; ok {
		f.members[i].Value = f.pending // last write wins
	} else {
		if f.index == nil {
			f.index = make(map[string]int)
		}
		f.index[f.key] = len(f.members)
		f.members = append(f.members, &Member{Key: f.key, Value: f.pending})
	}
	f.key, f.hasKey = "", false
	f.pending, f.full = nil, false
	return nil
}

// endMember commits the completed key-value pair. Unlike close, it
// requires a pending value: the driver reports EndMember only after a
// member's value rule has succeeded.
func (f *objectFrame) endMember() error {
	if !f.full {
		return fmt.Errorf("%w: member %q ended without a value", ErrBuilderState, f.key)
	}
	return f.commit()
}

// close commits any remaining pending member and returns the finished
// object.
func (f *objectFrame) close() (Value, error) {
	if err := f.commit(); err != nil {
		return nil, err
	}
	if f.hasKey {
		return nil, fmt.Errorf("%w: key %q has no value", ErrBuilderState, f.key)
	}
	return Object(f.members), nil
}
