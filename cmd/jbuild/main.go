// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jbuild parses JSON input files and prints the resulting
// values, one per line, in the order the files were named.
//
// Each input file must contain a single JSON value. Inputs are parsed
// concurrently, each with its own parser state. If any input fails to
// parse, its error is reported to stderr and the program exits with a
// nonzero status after all inputs have been handled.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "jbuild [flags] file...",
		Short: "Parse JSON files and print their values",

		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	fs := cmd.Flags()
	fs.BoolVar(&opts.standardize, "standardize", false,
		"Standardize JWCC input (comments, trailing commas) before parsing")
	fs.BoolVar(&opts.yaml, "yaml", false,
		"Print parsed values as YAML instead of JSON")
	return cmd
}

type options struct {
	standardize bool // accept JWCC input
	yaml        bool // render output as YAML
}
