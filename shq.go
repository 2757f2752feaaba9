// Package shq quotes arbitrary byte strings so that a shell parses them
// back as a single literal argument, defeating word splitting, pathname
// expansion, and metacharacter interpretation.
//
// Three dialects are supported: Sh (POSIX single-quoting, also good for
// dash), Bash (ANSI-C $'...' quoting, also good for zsh), and Fish.
// Quoting operates on bytes, not characters: the caller is responsible
// for encoding text beforehand, and output for a given input is
// identical regardless of locale. This matters for the common case of
// quoting filenames, which on Unix are byte strings with no guaranteed
// encoding.
//
// Every operation is a pure function of (dialect, input); quoting never
// reads or writes shared state and calls may run concurrently without
// coordination.
package shq

import (
	"fmt"
	"slices"
)

// Dialect quotes byte strings for one family of shells.
//
// Quote and Append operate byte by byte: bytes outside ASCII are
// represented so that the shell reproduces them exactly, with no
// assumption about their encoding. QuoteString and AppendString are the
// text-mode variants: well-formed multi-byte UTF-8 sequences pass
// through verbatim, which keeps quoted text readable. Invalid UTF-8 in
// a string falls back to the byte-mode treatment of each offending
// byte.
type Dialect interface {
	// Name returns the canonical dialect name: "sh", "bash", or "fish".
	Name() string

	// Quote returns src as a single shell word. If no byte of src
	// needs quoting the result is byte-for-byte equal to src; empty
	// input quotes to an explicit empty pair so the argument is not
	// dropped by the shell.
	Quote(src []byte) []byte

	// Append appends the quoted form of src to dst and returns the
	// extended slice, growing dst up front so encoding itself never
	// reallocates.
	Append(dst, src []byte) []byte

	// QuoteString is the text-mode Quote.
	QuoteString(s string) string

	// AppendString is the text-mode Append.
	AppendString(dst []byte, s string) []byte

	// Check reports whether the dialect can reproduce every byte of
	// src exactly. It returns nil for all inputs except under Sh,
	// whose single-quote grammar has no escape sequence for control
	// bytes; those yield an *UnrepresentableError. Quote and Append
	// never fail: they emit the documented best-effort form instead.
	Check(src []byte) error
}

// UnrepresentableError reports a byte that a dialect cannot reproduce
// losslessly in a quoted argument.
type UnrepresentableError struct {
	Dialect string // dialect name
	Byte    byte   // offending byte value
	Pos     int    // byte offset within the input
}

func (e *UnrepresentableError) Error() string {
	return fmt.Sprintf("%s: byte 0x%02X at offset %d has no representable form", e.Dialect, e.Byte, e.Pos)
}

// dialects is the registry of supported dialects, keyed by the shell
// names callers are likely to have at hand (including $SHELL basenames).
var dialects = map[string]Dialect{
	"sh":   Sh,
	"dash": Dash,
	"bash": Bash,
	"zsh":  Zsh,
	"fish": Fish,
}

// Get returns the Dialect registered for the given shell name.
// Returns nil if the shell is not supported.
func Get(name string) Dialect {
	return dialects[name]
}

// Supported returns the sorted list of recognised shell names.
func Supported() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
