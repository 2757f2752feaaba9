package shq

import (
	"errors"
	"testing"
)

func TestShName(t *testing.T) {
	if got := Sh.Name(); got != "sh" {
		t.Errorf("Name() = %q, want %q", got, "sh")
	}
}

func TestShQuote(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercase ascii",
			input: "abcdefghijklmnopqrstuvwxyz",
			want:  "abcdefghijklmnopqrstuvwxyz",
		},
		{
			name:  "uppercase ascii",
			input: "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
			want:  "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		},
		{
			name:  "numbers",
			input: "0123456789",
			want:  "0123456789",
		},
		{
			name:  "inert punctuation",
			input: "-_,./",
			want:  "-_,./",
		},
		{
			name:  "empty string",
			input: "",
			want:  "''",
		},
		{
			name:  "space",
			input: "foo bar",
			want:  "foo' bar'",
		},
		{
			name:  "punctuation",
			input: "-_=/,.+",
			want:  "-_'=/,.+'",
		},
		{
			name:  "leading quote",
			input: "'foo",
			want:  `\'foo`,
		},
		{
			name:  "embedded quote",
			input: "it's",
			want:  `it\'s`,
		},
		{
			name:  "quote then metacharacter",
			input: `woo'wah"`,
			want:  `woo\'wah'"'`,
		},
		{
			name:  "quote inside quoted segment",
			input: "a b'c",
			want:  `a' b'\'c`,
		},
		{
			name:  "adjacent quotes",
			input: "''",
			want:  `\'\'`,
		},
		{
			name:  "control bytes pass through raw",
			input: "Hello \r\n",
			want:  "Hello' \r\n'",
		},
		{
			name:  "bell",
			input: "\x07",
			want:  "'\x07'",
		},
		{
			name:  "nul",
			input: "\x00",
			want:  "'\x00'",
		},
		{
			name:  "delete",
			input: "\x7f",
			want:  "'\x7f'",
		},
		{
			name:  "high bytes verbatim",
			input: "\xc3\xa9",
			want:  "\xc3\xa9",
		},
		{
			name:  "high bytes amid metacharacters",
			input: "a \xc3\xa9 b",
			want:  "a' \xc3\xa9 b'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sh.Quote([]byte(tt.input)); string(got) != tt.want {
				t.Errorf("Quote(%q) = %q, want %q", tt.input, got, tt.want)
			}
			// Sh has no separate text mode.
			if got := Sh.QuoteString(tt.input); got != tt.want {
				t.Errorf("QuoteString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestShAppend(t *testing.T) {
	buf := make([]byte, 0, 64)
	buf = Sh.Append(buf, []byte("foobar"))
	buf = append(buf, ' ')
	buf = Sh.Append(buf, []byte("foo bar"))
	if want := "foobar foo' bar'"; string(buf) != want {
		t.Errorf("Append chain = %q, want %q", buf, want)
	}
}

func TestShCheck(t *testing.T) {
	if err := Sh.Check([]byte("perfectly ordinary $PATH stuff, even 'quotes'")); err != nil {
		t.Errorf("Check() = %v, want nil", err)
	}
	if err := Sh.Check([]byte("high bytes \xc3\xa9 are fine")); err != nil {
		t.Errorf("Check() = %v, want nil", err)
	}

	err := Sh.Check([]byte("ab\x01cd"))
	if err == nil {
		t.Fatal("Check() = nil, want UnrepresentableError")
	}
	var unrep *UnrepresentableError
	if !errors.As(err, &unrep) {
		t.Fatalf("Check() error type = %T, want *UnrepresentableError", err)
	}
	if unrep.Byte != 0x01 || unrep.Pos != 2 || unrep.Dialect != "sh" {
		t.Errorf("Check() error = %+v, want Byte=0x01 Pos=2 Dialect=sh", unrep)
	}

	if err := Sh.Check([]byte{0x7f}); err == nil {
		t.Error("Check(DEL) = nil, want error")
	}
	if err := Sh.Check([]byte{0x00}); err == nil {
		t.Error("Check(NUL) = nil, want error")
	}
}
