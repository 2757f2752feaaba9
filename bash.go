package shq

import (
	"slices"
	"unicode/utf8"
)

// bashDialect quotes using ANSI-C $'...' quoting.
type bashDialect struct{}

// Bash quotes byte strings for bash. Its output also parses identically
// in zsh.
//
// The grammar is ANSI-C quoting, $'...': named backslash escapes for
// the common control characters, \\ and \' for backslash and single
// quote, and \xHH hexadecimal escapes for every remaining control byte
// and, in byte mode, every byte with the high bit set. High bytes are
// technically legal unescaped inside $'...', but escaping them keeps
// the output printable ASCII regardless of the input, so that policy is
// applied without exception; use QuoteString to keep well-formed UTF-8
// readable. This dialect can represent every byte value, including NUL,
// which the Sh grammar cannot.
//
// Note that while $'\x00' is a faithful spelling of NUL, bash itself
// truncates or drops the byte when it builds the argument, so NUL still
// does not survive an actual shell round trip.
var Bash Dialect = bashDialect{}

// Zsh accepts the same quoted strings as bash.
var Zsh = Bash

func (bashDialect) Name() string {
	return "bash"
}

func (d bashDialect) Quote(src []byte) []byte {
	return d.Append(nil, src)
}

func (d bashDialect) Append(dst, src []byte) []byte {
	if len(src) == 0 {
		return append(dst, '\'', '\'')
	}
	if allInert(src) {
		return append(dst, src...)
	}
	// Worst case is a four-byte \xHH per input byte, plus $' and '.
	dst = slices.Grow(dst, 4*len(src)+3)
	dst = append(dst, '$', '\'')
	for _, b := range src {
		dst = appendBashByte(dst, b)
	}
	return append(dst, '\'')
}

func (d bashDialect) QuoteString(s string) string {
	return string(d.AppendString(nil, s))
}

// AppendString quotes in text mode: well-formed multi-byte UTF-8
// passes through verbatim instead of being hex-escaped; bytes that are
// not part of a valid sequence get the byte-mode treatment.
func (d bashDialect) AppendString(dst []byte, s string) []byte {
	if s == "" {
		return append(dst, '\'', '\'')
	}
	if allInert(s) {
		return append(dst, s...)
	}
	dst = slices.Grow(dst, 4*len(s)+3)
	dst = append(dst, '$', '\'')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			dst = appendBashByte(dst, s[i])
		} else if size == 1 {
			dst = appendBashByte(dst, byte(r))
		} else {
			dst = append(dst, s[i:i+size]...)
		}
		i += size
	}
	return append(dst, '\'')
}

// Check always returns nil: $'...' can express all byte values.
func (bashDialect) Check([]byte) error {
	return nil
}

// appendBashByte appends the $'...' body form of one byte.
func appendBashByte(dst []byte, b byte) []byte {
	switch classify(b) {
	case kindBell:
		return append(dst, '\\', 'a')
	case kindBackspace:
		return append(dst, '\\', 'b')
	case kindTab:
		return append(dst, '\\', 't')
	case kindNewLine:
		return append(dst, '\\', 'n')
	case kindVerticalTab:
		return append(dst, '\\', 'v')
	case kindFormFeed:
		return append(dst, '\\', 'f')
	case kindCarriageReturn:
		return append(dst, '\\', 'r')
	case kindEscape:
		return append(dst, '\\', 'e')
	case kindBackslash:
		return append(dst, '\\', '\\')
	case kindSingleQuote:
		return append(dst, '\\', '\'')
	case kindControl, kindDelete, kindHigh:
		return append(dst, '\\', 'x', hexDigits[b>>4], hexDigits[b&0xF])
	default:
		// kindInert, kindMeta, kindDoubleQuote: literal inside $'...'.
		return append(dst, b)
	}
}
