package shq

import "slices"

// shDialect quotes for POSIX-compatible Bourne shells.
type shDialect struct{}

// Sh quotes byte strings for /bin/sh and compatible shells. Its output
// also parses identically in dash, bash, and zsh.
//
// The grammar is plain single-quoting: inside '...' every byte is
// literal except the single quote itself, which cannot appear at all
// and is instead emitted as \' between quoted segments. Bytes that are
// safe bare (including bytes with the high bit set, which carry no
// meaning to the tokenizer) stay outside the quotes, so the output
// alternates bare and quoted runs.
//
// A genuine limitation of this grammar is that control bytes have no
// escaped form: Quote emits them raw inside a quoted segment, which
// round-trips through the shell parser but produces output that is not
// printable and, for NUL, will be truncated by the C string handling
// of the shell itself. Callers that must refuse such input should call
// Check first; see also Bash, which can escape every byte value.
var Sh Dialect = shDialect{}

// Dash accepts the same quoted strings as /bin/sh. On many systems dash
// is /bin/sh.
var Dash = Sh

func (shDialect) Name() string {
	return "sh"
}

func (d shDialect) Quote(src []byte) []byte {
	return d.Append(nil, src)
}

func (d shDialect) Append(dst, src []byte) []byte {
	return appendSh(dst, src)
}

// QuoteString quotes a string. Sh quoting has no text mode proper:
// since high bytes pass through verbatim either way, the output is the
// same as for Quote on the string's bytes.
func (d shDialect) QuoteString(s string) string {
	return string(appendSh(nil, s))
}

func (d shDialect) AppendString(dst []byte, s string) []byte {
	return appendSh(dst, s)
}

// Check reports the first control byte in src, if any. C0 controls and
// DEL have no escaped form in single-quoting; everything else is
// representable exactly.
func (d shDialect) Check(src []byte) error {
	for i, b := range src {
		switch classify(b) {
		case kindInert, kindMeta, kindHigh, kindBackslash, kindSingleQuote, kindDoubleQuote:
		default:
			return &UnrepresentableError{Dialect: d.Name(), Byte: b, Pos: i}
		}
	}
	return nil
}

func appendSh[S ~[]byte | ~string](dst []byte, src S) []byte {
	if len(src) == 0 {
		return append(dst, '\'', '\'')
	}
	if allInert(src) {
		return append(dst, src...)
	}
	// Worst case is \' plus a segment reopen per input byte.
	dst = slices.Grow(dst, 4*len(src)+2)
	quoted := false
	for i := 0; i < len(src); i++ {
		b := src[i]
		switch classify(b) {
		case kindInert, kindHigh:
			// Safe bare; a surrounding quoted segment, if open, is
			// harmless and avoids churning the quote state.
			dst = append(dst, b)
		case kindSingleQuote:
			if quoted {
				dst = append(dst, '\'', '\\', '\'')
				quoted = false
			} else {
				dst = append(dst, '\\', '\'')
			}
		default:
			if !quoted {
				dst = append(dst, '\'')
				quoted = true
			}
			dst = append(dst, b)
		}
	}
	if quoted {
		dst = append(dst, '\'')
	}
	return dst
}
