package textenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupDefaults(t *testing.T) {
	enc, err := Lookup("")
	require.NoError(t, err)
	assert.Same(t, UTF8, enc)

	enc, err = Lookup("us-ascii")
	require.NoError(t, err)
	assert.Same(t, ASCII, enc)
}

func TestLookupIANA(t *testing.T) {
	enc, err := Lookup("ISO-8859-1")
	require.NoError(t, err)
	assert.True(t, enc.CanEncode('é'))
	assert.False(t, enc.CanEncode('あ'))
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("no-such-charset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-charset")
}

func TestCanEncode(t *testing.T) {
	assert.True(t, UTF8.CanEncode('あ'))
	assert.True(t, ASCII.CanEncode('a'))
	assert.False(t, ASCII.CanEncode('あ'))
	assert.False(t, UTF8.CanEncode(0xD800)) // surrogate
}

func TestSymbol(t *testing.T) {
	tests := []struct {
		name string
		enc  *Encoding
		in   string
		want string
	}{
		{"identifier", UTF8, "foo", ":foo"},
		{"predicate", UTF8, "zero?", ":zero?"},
		{"operator", ASCII, "<=>", ":<=>"},
		{"ivar", UTF8, "@x", ":@x"},
		{"hiragana utf8", UTF8, "あ", ":あ"},
		{"hiragana ascii", ASCII, "あ", `:"\u3042"`},
		{"space", UTF8, "foo bar", `:"foo bar"`},
		{"leading digit", UTF8, "1a", `:"1a"`},
		{"empty", UTF8, "", `:""`},
		{"astral ascii", ASCII, "\U0001F600", `:"\u{1F600}"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.enc.Symbol(tt.in))
		})
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"1"`, UTF8.Quote("1"))
	assert.Equal(t, `"a\"b\\c"`, UTF8.Quote(`a"b\c`))
	assert.Equal(t, `"line\nnext\t"`, UTF8.Quote("line\nnext\t"))
	assert.Equal(t, `"\#{x}"`, UTF8.Quote("#{x}"))
	assert.Equal(t, `"#x"`, UTF8.Quote("#x"))
	assert.Equal(t, `"\x01"`, UTF8.Quote("\x01"))
	assert.Equal(t, `"caf\u00E9"`, ASCII.Quote("café"))
	assert.Equal(t, `"café"`, UTF8.Quote("café"))
}

func TestQuoteNormalizesToNFC(t *testing.T) {
	decomposed := "cafe\u0301"
	assert.Equal(t, `"café"`, UTF8.Quote(decomposed))
}
