package render

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/smallbiznis/invoicedesk/internal/invoice/domain"
	"github.com/smallbiznis/invoicedesk/internal/invoice/format"
	"github.com/smallbiznis/invoicedesk/internal/invoice/layout"
)

func testProfile() Profile {
	return Profile{
		HeaderLines:    []string{"ACME REPAIRS", "Somewhere Lane"},
		SignatureLines: []string{"Thank you,", "Ian"},
		SubtotalLabel:  "Subtotal:",
		TaxLabel:       "GST (10%):",
		TotalLabel:     "Total Including GST:",
		ColumnWidth:    80,
	}
}

func testInput() Input {
	return Input{
		Number:   "DJ260831",
		IssuedAt: time.Date(2026, time.August, 31, 9, 0, 0, 0, time.UTC),
		Items: []domain.LineItem{
			{Label: "Parts (Logic board)", Amount: 150},
			{Label: "Labour", Amount: 80},
		},
		Totals: domain.Totals{Subtotal: 230, Tax: 23, Total: 253},
	}
}

func TestRender_LineSequence(t *testing.T) {
	lines := NewRenderer(testProfile()).Render(testInput())

	assert.Equal(t, []string{
		"ACME REPAIRS",
		"Somewhere Lane",
		"",
		layout.Line("Tax Invoice DJ260831", "Date: "+format.ToMono("31/08/2026"), 80),
		"",
		layout.Line("Parts (Logic board)", format.MonoMoney(150), 80),
		layout.Line("Labour", format.MonoMoney(80), 80),
		"",
		layout.Line("Subtotal:", format.MonoMoney(230), 80),
		layout.Line("GST (10%):", format.MonoMoney(23), 80),
		layout.Line("Total Including GST:", format.MonoMoney(253), 80),
		"",
		"Thank you,",
		"Ian",
	}, lines)
}

func TestRender_AlignedLinesShareColumnWidth(t *testing.T) {
	lines := NewRenderer(testProfile()).Render(testInput())

	// Header, blanks, and signature are exempt; everything with an amount
	// or the date must land exactly on the target column.
	aligned := []string{lines[3], lines[5], lines[6], lines[8], lines[9], lines[10]}
	for _, line := range aligned {
		assert.Equal(t, 80, utf8.RuneCountInString(line), "line %q", line)
	}
}

func TestRender_NoItems(t *testing.T) {
	input := testInput()
	input.Items = nil
	input.Totals = domain.Totals{}

	lines := NewRenderer(testProfile()).Render(input)

	// Header (2) + blank + invoice line + blank + blank + 3 totals + blank + signature (2).
	assert.Len(t, lines, 12)
}

func TestNewRenderer_DefaultsColumnWidth(t *testing.T) {
	p := testProfile()
	p.ColumnWidth = 0
	lines := NewRenderer(p).Render(testInput())
	assert.Equal(t, layout.DefaultColumnWidth, utf8.RuneCountInString(lines[3]))
}
