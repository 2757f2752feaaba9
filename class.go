package shq

// kind classifies a byte by its role in shell grammar. The same
// classification feeds all three dialect encoders; each interprets the
// kinds according to its own quoting rules.
type kind uint8

const (
	// C0 controls with dedicated backslash escapes: \a \b \t \n \v
	// \f \r \e.
	kindBell kind = iota
	kindBackspace
	kindTab
	kindNewLine
	kindVerticalTab
	kindFormFeed
	kindCarriageReturn
	kindEscape
	// kindControl covers the remaining C0 controls, including NUL.
	kindControl
	// Printables that every dialect treats specially.
	kindBackslash
	kindSingleQuote
	kindDoubleQuote
	// kindDelete is DEL, 0x7F.
	kindDelete
	// kindInert bytes are letters, digits, and punctuation with no
	// shell meaning; safe bare in every dialect.
	kindInert
	// kindMeta bytes are printable ASCII significant to the shell.
	kindMeta
	// kindHigh bytes are 0x80 through 0xFF, no assumed encoding.
	kindHigh
)

// classify maps a byte to its kind. Total over all 256 values.
func classify(b byte) kind {
	switch b {
	// Controls with dedicated backslash sequences in quoting grammars.
	case 0x07:
		return kindBell
	case 0x08:
		return kindBackspace
	case '\t':
		return kindTab
	case '\n':
		return kindNewLine
	case 0x0B:
		return kindVerticalTab
	case 0x0C:
		return kindFormFeed
	case '\r':
		return kindCarriageReturn
	case 0x1B:
		return kindEscape

	// Quote and escape characters.
	case '\\':
		return kindBackslash
	case '\'':
		return kindSingleQuote
	case '"':
		return kindDoubleQuote
	case 0x7F:
		return kindDelete

	// Punctuation that no supported shell tokenizer assigns meaning to.
	// Must stay a strict subset of what is safe bare in all dialects:
	// the unquoted fast path depends on it.
	case ',', '.', '/', '_', '-':
		return kindInert
	}

	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return kindInert
	case b < 0x20:
		return kindControl
	case b >= 0x80:
		return kindHigh
	}

	// Everything left is printable ASCII punctuation with actual or
	// potential shell significance: |&;()<> ?[]{}` ~!$@+=* %#:^ and
	// space.
	return kindMeta
}

// inert reports whether b may appear bare, outside any quoting, in all
// supported dialects.
func inert(b byte) bool {
	return classify(b) == kindInert
}

// allInert reports whether every byte of src is safe bare. This is the
// dominant case for typical filenames and identifiers, so quoting of
// such input stays a single scan plus a copy.
func allInert[S ~[]byte | ~string](src S) bool {
	for i := 0; i < len(src); i++ {
		if !inert(src[i]) {
			return false
		}
	}
	return true
}

// hexDigits is used by the \xHH (bash) and \XHH (fish) escape forms.
const hexDigits = "0123456789ABCDEF"
