package layout

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestLine_ExactColumnWidth(t *testing.T) {
	line := Line("Subtotal:", "$230.00", 80)

	assert.Equal(t, 80, utf8.RuneCountInString(line))
	assert.True(t, strings.HasPrefix(line, "Subtotal:"))
	assert.True(t, strings.HasSuffix(line, "$230.00"))
}

func TestLine_PaddingIsFigureSpaceOnly(t *testing.T) {
	line := Line("Labour", "$80.00", 20)

	middle := strings.TrimSuffix(strings.TrimPrefix(line, "Labour"), "$80.00")
	assert.NotEmpty(t, middle)
	for _, r := range middle {
		assert.Equal(t, PadRune, r)
	}
}

func TestLine_ValueLastRuneAtTargetColumn(t *testing.T) {
	for _, width := range []int{20, 40, 80} {
		line := Line("a", "z", width)
		runes := []rune(line)
		assert.Len(t, runes, width)
		assert.Equal(t, 'z', runes[width-1])
	}
}

func TestLine_MultiByteRunesCountAsOne(t *testing.T) {
	// fullwidth dollar and monospace digits are multi-byte but single-width
	value := "＄\U0001D7F7\U0001D7FB\U0001D7F6"
	line := Line("Parts", value, 30)
	assert.Equal(t, 30, utf8.RuneCountInString(line))
}

func TestLine_OverflowClampsToZeroPadding(t *testing.T) {
	label := strings.Repeat("x", 60)
	value := strings.Repeat("9", 30)
	line := Line(label, value, 80)

	assert.Equal(t, label+value, line)
	assert.NotContains(t, line, string(PadRune))
}

func TestLine_ExactFitNeedsNoPadding(t *testing.T) {
	line := Line("abcd", "efgh", 8)
	assert.Equal(t, "abcdefgh", line)
}
