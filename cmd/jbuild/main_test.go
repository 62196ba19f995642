// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andreyvit/diff"
)

func writeInput(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0600); err != nil {
		t.Fatalf("Writing test input: %v", err)
	}
	return path
}

func runCommand(t *testing.T, args []string) (stdout, stderr string, err error) {
	t.Helper()
	var outbuf, errbuf bytes.Buffer
	cmd := newCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&outbuf)
	cmd.SetErr(&errbuf)
	err = cmd.Execute()
	return outbuf.String(), errbuf.String(), err
}

func TestRun(t *testing.T) {
	one := writeInput(t, "one.json", `{"b": [1, 2], "a": null}`)
	two := writeInput(t, "two.json", `
   [true, "ok"]
`)

	stdout, stderr, err := runCommand(t, []string{one, two})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if stderr != "" {
		t.Errorf("Unexpected stderr output:\n%s", stderr)
	}

	// Outputs are printed in argument order regardless of completion order.
	const want = `{"b":[1,2],"a":null}
[true,"ok"]
`
	if stdout != want {
		t.Errorf("Output: (-want, +got)\n%s", diff.LineDiff(want, stdout))
	}
}

func TestStandardize(t *testing.T) {
	input := writeInput(t, "relaxed.json", `{
  // these are the good parts
  "a": 1,
  "b": [2,],  /* dangle on */
}`)

	if _, _, err := runCommand(t, []string{input}); err == nil {
		t.Error("Execute with comments did not report an error")
	}

	stdout, _, err := runCommand(t, []string{"--standardize", input})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	const want = `{"a":1,"b":[2]}` + "\n"
	if stdout != want {
		t.Errorf("Output: (-want, +got)\n%s", diff.LineDiff(want, stdout))
	}
}

func TestYAML(t *testing.T) {
	input := writeInput(t, "feed.json", `{"title": "ATP", "episodes": [1, 2.5]}`)

	stdout, _, err := runCommand(t, []string{"--yaml", input})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	const want = `episodes:
    - 1
    - 2.5
title: ATP
`
	if stdout != want {
		t.Errorf("Output: (-want, +got)\n%s", diff.LineDiff(want, stdout))
	}
}

func TestFailures(t *testing.T) {
	good := writeInput(t, "good.json", `"fine"`)
	bad := writeInput(t, "bad.json", `{"a":}`)
	missing := filepath.Join(t.TempDir(), "nonesuch.json")

	stdout, stderr, err := runCommand(t, []string{bad, good, missing})
	if err == nil {
		t.Fatal("Execute did not report an error")
	}
	if got, want := err.Error(), "2 of 3 inputs failed to parse"; got != want {
		t.Errorf("Execute: got error %q, want %q", got, want)
	}

	// The good input is still parsed and printed.
	if got, want := stdout, `"fine"`+"\n"; got != want {
		t.Errorf("Output: got %q, want %q", got, want)
	}
	for _, path := range []string{bad, missing} {
		if !strings.Contains(stderr, path) {
			t.Errorf("Stderr does not mention %q:\n%s", path, stderr)
		}
	}
}
