// Package textenc renders debug representations under the text-encoding
// rules of the embedding environment.
//
// An Encoding decides which runes may appear verbatim in an inspected
// symbol or string; everything else is escaped as \uXXXX (or \u{XXXXX}
// beyond the BMP). Encodings are resolved by IANA name through
// golang.org/x/text/encoding/ianaindex.
package textenc

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is an external text encoding. The zero value is not usable; use
// Lookup, UTF8 or ASCII.
type Encoding struct {
	name      string
	enc       encoding.Encoding
	asciiOnly bool
}

var (
	// UTF8 represents every valid rune verbatim.
	UTF8 = &Encoding{name: "UTF-8", enc: unicode.UTF8}

	// ASCII represents only runes below 0x80 verbatim.
	ASCII = &Encoding{name: "US-ASCII", asciiOnly: true}
)

// Lookup resolves an encoding by IANA name or alias, case-insensitively.
// An empty name resolves to UTF-8.
func Lookup(name string) (*Encoding, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "UTF-8", "UTF8":
		return UTF8, nil
	case "US-ASCII", "ASCII", "ANSI_X3.4-1968":
		return ASCII, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		canonical = name
	}
	return &Encoding{name: canonical, enc: enc}, nil
}

// Name returns the canonical encoding name.
func (e *Encoding) Name() string {
	return e.name
}

// CanEncode reports whether r can be written verbatim in this encoding.
func (e *Encoding) CanEncode(r rune) bool {
	if r == utf8.RuneError || !utf8.ValidRune(r) {
		return false
	}
	if r < utf8.RuneSelf {
		return true
	}
	if e.asciiOnly {
		return false
	}
	if e.enc == unicode.UTF8 {
		return true
	}
	_, err := e.enc.NewEncoder().String(string(r))
	return err == nil
}
