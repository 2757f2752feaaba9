package shq

import (
	"slices"
	"unicode/utf8"
)

// fishDialect quotes for the fish shell.
type fishDialect struct{}

// Fish quotes byte strings for fish.
//
// Fish shares the single-quote wrapper with Sh but not its grammar:
// inside fish single quotes, \' and \\ are recognised escapes, so an
// embedded quote never forces the close-and-reopen dance that Sh
// needs. The other backslash sequences (\a, \n, \XHH and friends) are
// only recognised outside quotes, so the encoder steps out of the
// quoted region to emit them and back in for metacharacters. Hex
// escapes use \XHH rather than \xHH: the two are equivalent in fish
// 3.6.0 and later, but before that \xHH rejected values above 0x7F.
//
// Like Bash this dialect can represent every byte value, though fish
// itself will not pass NUL through to a command argument.
var Fish Dialect = fishDialect{}

func (fishDialect) Name() string {
	return "fish"
}

func (d fishDialect) Quote(src []byte) []byte {
	return d.Append(nil, src)
}

func (d fishDialect) Append(dst, src []byte) []byte {
	if len(src) == 0 {
		return append(dst, '\'', '\'')
	}
	if allInert(src) {
		return append(dst, src...)
	}
	// Worst case is a four-byte \XHH per input byte plus quote churn.
	w := fishWriter{dst: slices.Grow(dst, 4*len(src)+2)}
	for _, b := range src {
		w.encode(b)
	}
	return w.finish()
}

func (d fishDialect) QuoteString(s string) string {
	return string(d.AppendString(nil, s))
}

// AppendString quotes in text mode: well-formed multi-byte UTF-8
// passes through verbatim, inside the quoted region; bytes that are
// not part of a valid sequence get the byte-mode treatment.
func (d fishDialect) AppendString(dst []byte, s string) []byte {
	if s == "" {
		return append(dst, '\'', '\'')
	}
	if allInert(s) {
		return append(dst, s...)
	}
	w := fishWriter{dst: slices.Grow(dst, 4*len(s)+2)}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			w.encode(s[i])
		} else if size == 1 {
			w.encode(byte(r))
		} else {
			w.write(inside, s[i:i+size])
		}
		i += size
	}
	return w.finish()
}

// Check always returns nil: fish backslash escapes cover all byte
// values.
func (fishDialect) Check([]byte) error {
	return nil
}

// placement says where a token is valid relative to fish single
// quotes: only within '...', only outside, or in either position.
type placement uint8

const (
	inside placement = iota
	outside
	anywhere
)

// fishWriter tracks whether output is currently within a quoted region
// and moves across the boundary as each token's placement demands.
type fishWriter struct {
	dst    []byte
	quoted bool
}

func (w *fishWriter) step(p placement) {
	switch {
	case w.quoted && p == outside:
		w.dst = append(w.dst, '\'')
		w.quoted = false
	case !w.quoted && p == inside:
		w.dst = append(w.dst, '\'')
		w.quoted = true
	}
}

func (w *fishWriter) write(p placement, tok string) {
	w.step(p)
	w.dst = append(w.dst, tok...)
}

func (w *fishWriter) writeByte(p placement, b byte) {
	w.step(p)
	w.dst = append(w.dst, b)
}

func (w *fishWriter) hex(b byte) {
	w.write(outside, `\X`)
	w.dst = append(w.dst, hexDigits[b>>4], hexDigits[b&0xF])
}

func (w *fishWriter) encode(b byte) {
	switch classify(b) {
	case kindBell:
		w.write(outside, `\a`)
	case kindBackspace:
		w.write(outside, `\b`)
	case kindTab:
		w.write(outside, `\t`)
	case kindNewLine:
		w.write(outside, `\n`)
	case kindVerticalTab:
		w.write(outside, `\v`)
	case kindFormFeed:
		w.write(outside, `\f`)
	case kindCarriageReturn:
		w.write(outside, `\r`)
	case kindEscape:
		w.write(outside, `\e`)
	case kindControl, kindDelete, kindHigh:
		w.hex(b)
	case kindBackslash:
		w.write(anywhere, `\\`)
	case kindSingleQuote:
		w.write(anywhere, `\'`)
	case kindDoubleQuote, kindMeta:
		w.writeByte(inside, b)
	default: // kindInert
		w.writeByte(anywhere, b)
	}
}

func (w *fishWriter) finish() []byte {
	if w.quoted {
		w.dst = append(w.dst, '\'')
	}
	return w.dst
}
