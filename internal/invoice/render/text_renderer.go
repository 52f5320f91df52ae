// Package render assembles the canonical invoice line sequence consumed by
// both the email body and the PDF layout.
package render

import (
	"time"

	"github.com/smallbiznis/invoicedesk/internal/invoice/domain"
	"github.com/smallbiznis/invoicedesk/internal/invoice/format"
	"github.com/smallbiznis/invoicedesk/internal/invoice/layout"
)

// Profile carries the business identity and layout settings the renderer
// stamps onto every invoice.
type Profile struct {
	HeaderLines    []string
	SignatureLines []string
	SubtotalLabel  string
	TaxLabel       string
	TotalLabel     string
	ColumnWidth    int
}

// Input is one composed invoice ready for text layout.
type Input struct {
	Number   string
	IssuedAt time.Time
	Items    []domain.LineItem
	Totals   domain.Totals
}

// Renderer produces the ordered rendered lines of an invoice document.
type Renderer interface {
	Render(input Input) []string
}

type TextRenderer struct {
	profile Profile
}

func NewRenderer(profile Profile) Renderer {
	if profile.ColumnWidth <= 0 {
		profile.ColumnWidth = layout.DefaultColumnWidth
	}
	return &TextRenderer{profile: profile}
}

// Render emits the full document: header block, right-aligned invoice
// number and date line, blank separator, one line per item, blank separator,
// three totals lines, signature block. Every aligned line shares the same
// target column so the amounts form a straight right edge.
func (r *TextRenderer) Render(input Input) []string {
	width := r.profile.ColumnWidth

	lines := make([]string, 0, len(r.profile.HeaderLines)+len(input.Items)+len(r.profile.SignatureLines)+8)
	lines = append(lines, r.profile.HeaderLines...)
	lines = append(lines, "")

	invoiceLabel := "Tax Invoice " + input.Number
	dateValue := "Date: " + format.ToMono(format.Date(input.IssuedAt))
	lines = append(lines, layout.Line(invoiceLabel, dateValue, width))
	lines = append(lines, "")

	for _, item := range input.Items {
		lines = append(lines, layout.Line(item.Label, format.MonoMoney(item.Amount), width))
	}
	lines = append(lines, "")

	lines = append(lines, layout.Line(r.profile.SubtotalLabel, format.MonoMoney(input.Totals.Subtotal), width))
	lines = append(lines, layout.Line(r.profile.TaxLabel, format.MonoMoney(input.Totals.Tax), width))
	lines = append(lines, layout.Line(r.profile.TotalLabel, format.MonoMoney(input.Totals.Total), width))

	lines = append(lines, "")
	lines = append(lines, r.profile.SignatureLines...)

	return lines
}
