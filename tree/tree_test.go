// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree_test

import (
	"bytes"
	"errors"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/creachadair/jbuild"
	"github.com/creachadair/jbuild/tree"
	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, input string) tree.Value {
	t.Helper()
	v, err := tree.ParseSingle(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseSingle %#q: unexpected error: %v", input, err)
	}
	return v
}

func TestParseFile(t *testing.T) {
	data, err := os.ReadFile("../testdata/input.json")
	if err != nil {
		t.Fatalf("Reading test input: %v", err)
	}
	v, err := tree.ParseSingle(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseSingle failed: %v", err)
	}

	// The resulting tree must agree with an ordinary JSON decoder.
	var want any
	if err := json.Unmarshal(data, &want); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if diff := cmp.Diff(want, tree.Plain(v)); diff != "" {
		t.Errorf("Parsed tree: (-want, +got)\n%s", diff)
	}

	// Rendering the tree and parsing the output recovers the same tree.
	v2, err := tree.ParseSingle(strings.NewReader(v.JSON()))
	if err != nil {
		t.Fatalf("Reparse failed: %v", err)
	}
	if diff := cmp.Diff(tree.Plain(v), tree.Plain(v2)); diff != "" {
		t.Errorf("Reparsed tree: (-want, +got)\n%s", diff)
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`""`, ""},
		{`"ok go"`, "ok go"},
		{`"a\tb\nc"`, "a\tb\nc"},
		{`"\u0041\u0026"`, "A&"},
		{`"\ud83d\ude00"`, "\U0001f600"}, // surrogate pair, single rune
	}
	for _, test := range tests {
		v := mustParse(t, test.input)
		s, ok := v.(tree.String)
		if !ok {
			t.Errorf("Input: %#q: got %T, want tree.String", test.input, v)
		} else if string(s) != test.want {
			t.Errorf("Input: %#q: got %#q, want %#q", test.input, string(s), test.want)
		}
	}
}

func TestInvalidSurrogate(t *testing.T) {
	v, err := tree.ParseSingle(strings.NewReader(`["ok", "\ud83d"]`))
	if err == nil {
		t.Fatalf("ParseSingle: got %+v, want error", v)
	}
	if !errors.Is(err, jbuild.ErrInvalidSurrogate) {
		t.Errorf("ParseSingle: got error %v, want %v", err, jbuild.ErrInvalidSurrogate)
	}
	var berr *tree.BuildError
	if !errors.As(err, &berr) {
		t.Errorf("ParseSingle: error %v is not a *tree.BuildError", err)
	} else if berr.Location.Line != 1 || berr.Location.Column != 7 {
		t.Errorf("Error location: got %v, want 1:7", berr.Location)
	}
}

func TestDuplicateKeys(t *testing.T) {
	v := mustParse(t, `{"a": 1, "b": 2, "a": 3}`)
	obj, ok := v.(tree.Object)
	if !ok {
		t.Fatalf("got %T, want tree.Object", v)
	}

	// The later binding of "a" replaces the earlier one in place.
	if len(obj) != 2 {
		t.Errorf("got %d members, want 2", len(obj))
	}
	if m := obj.Find("a"); m == nil {
		t.Error(`Find "a": not found`)
	} else if m.Value != tree.Number(3) {
		t.Errorf(`Find "a": got %+v, want 3`, m.Value)
	}
	if obj[0].Key != "a" {
		t.Errorf("first member: got %q, want a", obj[0].Key)
	}
}

func TestComposites(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{`[]`, []any{}},
		{`{}`, map[string]any{}},
		{`[[], [{}]]`, []any{[]any{}, []any{map[string]any{}}}},
		{`{"a": [true, null], "b": {"c": "d"}}`, map[string]any{
			"a": []any{true, nil},
			"b": map[string]any{"c": "d"},
		}},
	}
	for _, test := range tests {
		v := mustParse(t, test.input)
		if diff := cmp.Diff(test.want, tree.Plain(v)); diff != "" {
			t.Errorf("Input: %#q: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestDeepNesting(t *testing.T) {
	const depth = 100
	input := strings.Repeat("[", depth) + "7" + strings.Repeat("]", depth)

	v := mustParse(t, input)
	for i := 0; i < depth; i++ {
		a, ok := v.(tree.Array)
		if !ok {
			t.Fatalf("depth %d: got %T, want tree.Array", i, v)
		} else if len(a) != 1 {
			t.Fatalf("depth %d: got %d elements, want 1", i, len(a))
		}
		v = a[0]
	}
	if v != tree.Number(7) {
		t.Errorf("innermost value: got %+v, want 7", v)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"0", 0},
		{"15", 15},
		{"-61", -61},
		{"3.25e-5", 3.25e-5},
		{"1e10", 1e10},
		{"-0.00239", -0.00239},
	}
	for _, test := range tests {
		v := mustParse(t, test.input)
		n, ok := v.(tree.Number)
		if !ok {
			t.Errorf("Input: %#q: got %T, want tree.Number", test.input, v)
		} else if float64(n) != test.want {
			t.Errorf("Input: %#q: got %v, want %v", test.input, float64(n), test.want)
		}
	}

	t.Run("NegZero", func(t *testing.T) {
		v := mustParse(t, "-0")
		if n := v.(tree.Number); !math.Signbit(float64(n)) {
			t.Errorf("got %v, want -0", float64(n))
		}
	})
	t.Run("Overflow", func(t *testing.T) {
		v, err := tree.ParseSingle(strings.NewReader("1e309"))
		if err == nil {
			t.Fatalf("got %+v, want error", v)
		}
		if !errors.Is(err, tree.ErrNumberOverflow) {
			t.Errorf("got error %v, want %v", err, tree.ErrNumberOverflow)
		}
	})
}

func TestParse(t *testing.T) {
	const input = `{"a": 1} [2, 3] "ok" null`
	want := []string{`{"a":1}`, "[2,3]", `"ok"`, "null"}

	vs, err := tree.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	var got []string
	for _, v := range vs {
		got = append(got, v.JSON())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parsed values: (-want, +got)\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		for _, input := range []string{"", "   ", "\n\t"} {
			if v, err := tree.ParseSingle(strings.NewReader(input)); err == nil {
				t.Errorf("Input %#q: got %+v, want error", input, v)
			}
		}
	})
	t.Run("ExtraInput", func(t *testing.T) {
		for _, input := range []string{"1 2", "[1] []", `{} "x"`} {
			if v, err := tree.ParseSingle(strings.NewReader(input)); err == nil {
				t.Errorf("Input %#q: got %+v, want error", input, v)
			}
		}
	})
	t.Run("Syntax", func(t *testing.T) {
		vs, err := tree.Parse(strings.NewReader(`{"a": true} [1, :]`))
		if err == nil {
			t.Fatal("Parse did not report an error")
		}
		var serr *jbuild.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Parse: error %v is not a *jbuild.SyntaxError", err)
		} else if serr.Location.Line != 1 || serr.Location.Column != 16 {
			t.Errorf("Error location: got %v, want 1:16", serr.Location)
		}

		// Values completed before the error are retained.
		if len(vs) != 1 {
			t.Errorf("got %d values, want 1", len(vs))
		} else if got, want := vs[0].JSON(), `{"a":true}`; got != want {
			t.Errorf("first value: got %#q, want %#q", got, want)
		}
	})
}
