// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jbuild implements a JSON scanner and an event-driven parse
// driver for building decoded value trees.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON.  Construct a
// scanner from an io.Reader and call its Next method to iterate over the
// stream. Next advances to the next input token and reports whether one
// is available:
//
//	s := jbuild.NewScanner(input)
//	for s.Next() {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// When Next returns false, the Err method reports nil if the input was
// fully consumed, or the I/O or lexical error that stopped the scan.
//
// # Driving
//
// The Stream type implements a recursive-descent parse driver.  The
// driver works by calling methods on a Handler value as it recognizes
// the rule boundaries of the input grammar. In case of a grammar
// rejection, parsing is terminated and an error of concrete type
// *jbuild.SyntaxError is returned.
//
// Construct a Stream from an io.Reader, and call its Parse method. Parse
// returns nil if the input was fully processed without error. If a
// Handler method reports an error, parsing stops and that error is
// returned.
//
//	s := jbuild.NewStream(input)
//	if err := s.Parse(handler); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// To parse a single value from the front of the input, call ParseOne.
// This method returns io.EOF if no further values are available.
//
// # Handlers
//
// The Handler interface accepts rule lifecycle events from a Stream.
// The methods of a handler correspond to the syntax of JSON values:
//
//	JSON rule  | Methods                   | Description
//	---------- | ------------------------- | ---------------------------------
//	object     | BeginObject, EndObject    | { ... }
//	member     | BeginMember, EndMember    | "key": value
//	array      | BeginArray, EndArray      | [ ... ]
//	element    | EndElement                | value separator or array close
//	value      | Value                     | true, false, null, number, string
//	--         | EndOfInput                | end of input
//
// EndMember and EndElement are the separator events: they mark the point
// at which the most recently completed child value can be committed into
// its enclosing composite, and they fire exactly once per member or
// element, including the last one before the closing bracket.
//
// Each method is passed an Anchor value that can be used to retrieve
// location and type information. The Anchor passed to a handler method
// is only valid for the duration of that method call; the handler must
// copy any data it needs to retain beyond the lifetime of the call.
//
// The driver ensures that corresponding Begin and End methods are
// correctly paired, or that a SyntaxError is reported. A rule is
// reported as failed only after the driver has run out of alternatives
// for it; handlers see no events for rules that never matched.
//
// The tree subpackage provides a Handler that assembles decoded values.
package jbuild
