package report

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// encode converts s to Windows-1252, the encoding of the PDF core fonts.
//
// Characters outside of the code page are replaced with their base letter
// if they have one (ā becomes a) and with "?" otherwise.
func encode(s string) string {
	var b strings.Builder

	for _, r := range s {
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(c)
			continue
		}

		b.WriteByte(baseLetter(r))
	}

	return b.String()
}

func baseLetter(r rune) byte {
	for _, d := range norm.NFD.String(string(r)) {
		if unicode.Is(unicode.Mn, d) {
			continue
		}

		if c, ok := charmap.Windows1252.EncodeRune(d); ok {
			return c
		}
	}

	return '?'
}
