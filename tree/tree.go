// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/creachadair/jbuild"
)

// Parse parses and returns the JSON values from r. Any error aborts the
// parse: no partial value is returned for the input being parsed when
// the error occurred, but values already completed are retained.
func Parse(r io.Reader) ([]Value, error) {
	h := newHandler()
	st := jbuild.NewStream(r)
	var vs []Value
	for {
		if err := st.ParseOne(h); err == io.EOF {
			return vs, nil
		} else if err != nil {
			return vs, err
		}
		v, err := h.root()
		if err != nil {
			return vs, err
		}
		vs = append(vs, v)
		h.reset()
	}
}

// ParseSingle parses exactly one JSON value from r. It reports an error
// if r contains no value, or if any input other than whitespace remains
// after the first value.
func ParseSingle(r io.Reader) (Value, error) {
	h := newHandler()
	st := jbuild.NewStream(r)
	if err := st.ParseOne(h); err == io.EOF {
		return nil, errors.New("no JSON value found")
	} else if err != nil {
		return nil, err
	}
	v, err := h.root()
	if err != nil {
		return nil, err
	}
	if err := st.ParseOne(h); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, errors.New("extra input after value")
	}
	return v, nil
}

// A handler implements the jbuild.Handler interface. It maps rule
// lifecycle events onto a stack of builder frames: entering a composite
// rule pushes a frame, separator events commit the frame's pending
// value, and a rule ending pops its frame and hands the finished value
// into the pending slot of the frame below it. The bottom of the stack
// is the result holder for top-level values.
type handler struct {
	stk []frame
}

func newHandler() *handler {
	return &handler{stk: []frame{new(rootFrame)}}
}

// reset discards all state from h so it can parse another input.
// The parse that produced the discarded state must not be resumed.
func (h *handler) reset() {
	h.stk = h.stk[:1]
	h.stk[0].(*rootFrame).vals = nil
}

// root returns the single completed top-level value. It reports an
// error if the builder stack was left unbalanced or the value did not
// complete, which the driver's own bracket matching should prevent.
func (h *handler) root() (Value, error) {
	if len(h.stk) != 1 {
		return nil, fmt.Errorf("%w: %d unfinished builders", ErrBuilderState, len(h.stk)-1)
	}
	rf := h.stk[0].(*rootFrame)
	if len(rf.vals) != 1 {
		return nil, errors.New("incomplete value")
	}
	return rf.vals[0], nil
}

func (h *handler) top() frame { return h.stk[len(h.stk)-1] }
func (h *handler) push(f frame) { h.stk = append(h.stk, f) }

func (h *handler) pop() frame {
	f := h.top()
	h.stk = h.stk[:len(h.stk)-1]
	return f
}

// hand writes v into the pending slot of the current frame.
func (h *handler) hand(loc jbuild.Anchor, v Value) error {
	if err := h.top().take(v); err != nil {
		return h.fail(loc, err)
	}
	return nil
}

// fail decorates err with the position of the event that reported it.
func (h *handler) fail(loc jbuild.Anchor, err error) error {
	return &BuildError{
		Location: loc.Location().First,
		Message:  err.Error(),
		err:      err,
	}
}

func (h *handler) BeginObject(loc jbuild.Anchor) error {
	h.push(new(objectFrame))
	return nil
}

func (h *handler) EndObject(loc jbuild.Anchor) error {
	f, ok := h.pop().(*objectFrame)
	if !ok {
		return h.fail(loc, fmt.Errorf("%w: object close outside an object", ErrBuilderState))
	}
	v, err := f.close()
	if err != nil {
		return h.fail(loc, err)
	}
	return h.hand(loc, v)
}

func (h *handler) BeginArray(loc jbuild.Anchor) error {
	h.push(new(arrayFrame))
	return nil
}

func (h *handler) EndArray(loc jbuild.Anchor) error {
	f, ok := h.pop().(*arrayFrame)
	if !ok {
		return h.fail(loc, fmt.Errorf("%w: array close outside an array", ErrBuilderState))
	}
	v, err := f.close()
	if err != nil {
		return h.fail(loc, err)
	}
	return h.hand(loc, v)
}

func (h *handler) BeginMember(loc jbuild.Anchor) error {
	f, ok := h.top().(*objectFrame)
	if !ok {
		return h.fail(loc, fmt.Errorf("%w: member begun outside an object", ErrBuilderState))
	}
	key, err := jbuild.Unquote(loc.Text())
	if err != nil {
		return h.fail(loc, err)
	}
	f.setKey(string(key))
	return nil
}

func (h *handler) EndMember(loc jbuild.Anchor) error {
	f, ok := h.top().(*objectFrame)
	if !ok {
		return h.fail(loc, fmt.Errorf("%w: member ended outside an object", ErrBuilderState))
	}
	if err := f.endMember(); err != nil {
		return h.fail(loc, err)
	}
	return nil
}

func (h *handler) EndElement(loc jbuild.Anchor) error {
	f, ok := h.top().(*arrayFrame)
	if !ok {
		return h.fail(loc, fmt.Errorf("%w: element ended outside an array", ErrBuilderState))
	}
	if err := f.commit(); err != nil {
		return h.fail(loc, err)
	}
	return nil
}

func (h *handler) Value(loc jbuild.Anchor) error {
	v, err := decodeScalar(loc)
	if err != nil {
		return h.fail(loc, err)
	}
	return h.hand(loc, v)
}

func (h *handler) EndOfInput(loc jbuild.Anchor) {}

// decodeScalar converts the scalar token at loc into a Value. The token
// text was already validated by the grammar; only conversion failures
// are reported here.
func decodeScalar(loc jbuild.Anchor) (Value, error) {
	switch loc.Token() {
	case jbuild.String:
		dec, err := jbuild.Unquote(loc.Text())
		if err != nil {
			return nil, err
		}
		return String(dec), nil
	case jbuild.Number:
		v, err := strconv.ParseFloat(string(loc.Text()), 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, fmt.Errorf("%w: %s", ErrNumberOverflow, loc.Text())
			}
			return nil, fmt.Errorf("%w: %s", ErrNumberFormat, loc.Text())
		}
		return Number(v), nil
	case jbuild.True:
		return Bool(true), nil
	case jbuild.False:
		return Bool(false), nil
	case jbuild.Null:
		return Null, nil
	default:
		return nil, fmt.Errorf("%w: unexpected value token %v", ErrBuilderState, loc.Token())
	}
}
