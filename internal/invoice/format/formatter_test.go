package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMoney_TwoDecimalPlaces(t *testing.T) {
	assert.Equal(t, "123.40", Money(123.4))
	assert.Equal(t, "0.00", Money(0))
	assert.Equal(t, "80.00", Money(80))
	assert.Equal(t, "253.00", Money(253.00000000001))
	assert.Equal(t, "0.10", Money(0.1))
}

func TestMoneyWithSymbol(t *testing.T) {
	assert.Equal(t, "$150.00", MoneyWithSymbol(150))
}

func TestToMono_SubstitutesGlyphs(t *testing.T) {
	assert.Equal(t, "＄\U0001D7F7\U0001D7FB\U0001D7F6․\U0001D7F6\U0001D7F6", MonoMoney(150))
}

func TestToMono_UnmappedCharactersPassThrough(t *testing.T) {
	assert.Equal(t, "Date: \U0001D7F6\U0001D7F7/\U0001D7F6\U0001D7F8", ToMono("Date: 01/02"))
}

func TestMonoRoundTrip(t *testing.T) {
	inputs := []string{
		"$123.40",
		"0.00",
		"Date: 25/12/2026",
		"no digits at all",
		"",
	}
	for _, in := range inputs {
		assert.Equal(t, in, FromMono(ToMono(in)), "round trip for %q", in)
	}
}

func TestDate_DDMMYYYY(t *testing.T) {
	issued := time.Date(2026, time.August, 31, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "31/08/2026", Date(issued))
}
