// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/creachadair/jbuild/tree"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// run parses each named file and prints the results in argument order.
// Parses are independent of each other, so they run concurrently; a
// failed input does not prevent the others from being reported.
func run(cmd *cobra.Command, opts options, paths []string) error {
	type result struct {
		out string
		err error
	}
	res := make([]result, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			v, err := parseFile(path, opts)
			if err != nil {
				res[i] = result{err: err}
				return nil
			}
			out, err := render(v, opts)
			res[i] = result{out: out, err: err}
			return nil
		})
	}
	g.Wait()

	var numFailed int
	for i, r := range res {
		if r.err != nil {
			numFailed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", paths[i], r.err)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), r.out)
	}
	if numFailed != 0 {
		return fmt.Errorf("%d of %d inputs failed to parse", numFailed, len(paths))
	}
	return nil
}

// parseFile loads and parses a single input file.
func parseFile(path string, opts options) (tree.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load input")
	}
	if opts.standardize {
		data, err = hujson.Standardize(data)
		if err != nil {
			return nil, errors.Wrap(err, "standardize input")
		}
	}
	return tree.ParseSingle(bytes.NewReader(data))
}

// render formats v for output, as compact JSON by default.
func render(v tree.Value, opts options) (string, error) {
	if !opts.yaml {
		return v.JSON(), nil
	}
	text, err := yaml.Marshal(tree.Plain(v))
	if err != nil {
		return "", errors.Wrap(err, "encode output")
	}
	return strings.TrimSuffix(string(text), "\n"), nil
}
