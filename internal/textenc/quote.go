package textenc

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// operatorSymbols are symbol names that inspect without quotes.
var operatorSymbols = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true, "**": true,
	"==": true, "===": true, "!=": true, "=~": true, "!~": true, "!": true,
	"<": true, "<=": true, ">": true, ">=": true, "<=>": true,
	"<<": true, ">>": true, "&": true, "|": true, "^": true, "~": true,
	"+@": true, "-@": true, "[]": true, "[]=": true, "`": true,
}

// Quote renders s as a double-quoted literal. Runes the encoding cannot
// represent are escaped. s is NFC-normalized first.
func (e *Encoding) Quote(s string) string {
	s = norm.NFC.String(s)
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			fmt.Fprintf(&b, `\x%02X`, s[i])
			i++
			continue
		}
		next := ""
		if i+size < len(s) {
			next = s[i+size : i+size+1]
		}
		e.writeRune(&b, r, next)
		i += size
	}
	b.WriteByte('"')
	return b.String()
}

func (e *Encoding) writeRune(b *strings.Builder, r rune, next string) {
	switch r {
	case '"':
		b.WriteString(`\"`)
	case '\\':
		b.WriteString(`\\`)
	case '\n':
		b.WriteString(`\n`)
	case '\t':
		b.WriteString(`\t`)
	case '\r':
		b.WriteString(`\r`)
	case '\f':
		b.WriteString(`\f`)
	case '\v':
		b.WriteString(`\v`)
	case '\a':
		b.WriteString(`\a`)
	case '\b':
		b.WriteString(`\b`)
	case 0x1b:
		b.WriteString(`\e`)
	case '#':
		// Keep "#{", "#$" and "#@" from reading as interpolation.
		if next == "{" || next == "$" || next == "@" {
			b.WriteByte('\\')
		}
		b.WriteByte('#')
	default:
		switch {
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(b, `\x%02X`, r)
		case !e.CanEncode(r) || !unicode.IsPrint(r):
			if r > 0xFFFF {
				fmt.Fprintf(b, `\u{%X}`, r)
			} else {
				fmt.Fprintf(b, `\u%04X`, r)
			}
		default:
			b.WriteRune(r)
		}
	}
}

// Symbol renders name as a symbol literal: :name when name is a plain
// identifier or operator the encoding can represent, :"..." otherwise.
func (e *Encoding) Symbol(name string) string {
	name = norm.NFC.String(name)
	if e.isPlainSymbol(name) {
		return ":" + name
	}
	return ":" + e.Quote(name)
}

func (e *Encoding) isPlainSymbol(name string) bool {
	if operatorSymbols[name] {
		return true
	}
	body := name
	switch {
	case strings.HasPrefix(body, "@@"):
		body = body[2:]
	case strings.HasPrefix(body, "@"), strings.HasPrefix(body, "$"):
		body = body[1:]
	}
	if body == "" {
		return false
	}
	if last := body[len(body)-1]; last == '?' || last == '!' || last == '=' {
		if body != name {
			// Sigils do not combine with predicate suffixes.
			return false
		}
		body = body[:len(body)-1]
		if body == "" {
			return false
		}
	}
	for i, r := range body {
		if !e.CanEncode(r) {
			return false
		}
		switch {
		case r == '_' || unicode.IsLetter(r):
		case unicode.IsDigit(r) && i > 0:
		default:
			return false
		}
	}
	return true
}
