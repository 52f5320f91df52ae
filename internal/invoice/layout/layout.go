// Package layout renders deterministically column-aligned text lines for the
// plain-text invoice body.
package layout

import (
	"strings"
	"unicode/utf8"
)

// PadRune is the filler between label and value. FIGURE SPACE keeps a fixed
// advance width in mail clients that collapse or reflow runs of ordinary
// spaces.
const PadRune = ' '

// DefaultColumnWidth is the total width, in runes, a rendered line occupies.
const DefaultColumnWidth = 80

// Line produces a single text line where value's last rune lands exactly at
// the target column. When label and value together already exceed the column
// width the padding clamps to zero and the line runs long; the overflow is a
// defined fallback, never a fault.
func Line(label, value string, columnWidth int) string {
	padding := columnWidth - utf8.RuneCountInString(label) - utf8.RuneCountInString(value)
	if padding < 0 {
		padding = 0
	}
	return label + strings.Repeat(string(PadRune), padding) + value
}
