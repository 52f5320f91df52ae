package format

import (
	"strconv"
	"strings"
	"time"
)

// CurrencySymbol is the plain-mode currency prefix.
const CurrencySymbol = "$"

// monoGlyphs maps plain characters to code points whose advance width is
// fixed in renderers that apply proportional spacing to ordinary digits.
// Digits map to the mathematical monospace block, the decimal point to ONE
// DOT LEADER and the dollar sign to the fullwidth form. Characters without
// an entry pass through unchanged.
var monoGlyphs = map[rune]rune{
	'0': '\U0001D7F6',
	'1': '\U0001D7F7',
	'2': '\U0001D7F8',
	'3': '\U0001D7F9',
	'4': '\U0001D7FA',
	'5': '\U0001D7FB',
	'6': '\U0001D7FC',
	'7': '\U0001D7FD',
	'8': '\U0001D7FE',
	'9': '\U0001D7FF',
	'.': '․',
	'$': '＄',
}

// plainGlyphs is the inverse of monoGlyphs. The forward table is bijective,
// so the inverse is derived rather than maintained by hand.
var plainGlyphs = func() map[rune]rune {
	inv := make(map[rune]rune, len(monoGlyphs))
	for plain, mono := range monoGlyphs {
		inv[mono] = plain
	}
	return inv
}()

// Money renders an amount with exactly two decimal places, e.g. 123.4 ->
// "123.40". Rounding happens here and nowhere earlier; totals are
// accumulated at full precision.
//
// This function is PURE:
// - No side effects
// - Fully deterministic
func Money(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// MoneyWithSymbol renders an amount prefixed with the currency symbol.
func MoneyWithSymbol(amount float64) string {
	return CurrencySymbol + Money(amount)
}

// MonoMoney renders an amount prefixed with the currency symbol and mapped
// through the monospace-safe glyph table. Used for email bodies where the
// receiving client may not honor monospace fonts.
func MonoMoney(amount float64) string {
	return ToMono(CurrencySymbol + Money(amount))
}

// ToMono substitutes every mapped character with its fixed-width glyph.
func ToMono(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if mono, ok := monoGlyphs[r]; ok {
			b.WriteRune(mono)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FromMono is the inverse of ToMono. ToMono followed by FromMono
// reconstructs the original string.
func FromMono(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if plain, ok := plainGlyphs[r]; ok {
			b.WriteRune(plain)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Date renders the issue date as DD/MM/YYYY for the invoice date line.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}
