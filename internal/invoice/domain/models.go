// Package domain contains the invoice authoring models and the pure
// line-item aggregation core.
package domain

// DefaultTaxRate is the fixed proportional surcharge applied to the subtotal.
const DefaultTaxRate = 0.10

// MaxLabelLength caps a line-item label, in runes. Longer labels are cut with
// a hard substring, no ellipsis.
const MaxLabelLength = 50

// RawRow is one operator-filled invoice form row before validation.
type RawRow struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	AmountText  string `json:"amount"`
}

// LineItem is one priced, labeled entry on an invoice. Amount is always a
// finite positive number; rows failing that are dropped before a LineItem
// exists.
type LineItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Totals carries the full-precision aggregation result. Values are rounded
// to two decimals only at the formatting boundary.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Document is the fully composed invoice: the ordered line sequence is the
// single source of truth for both the email body and the PDF layout.
type Document struct {
	Number    string     `json:"number"`
	Subject   string     `json:"subject"`
	IssueDate string     `json:"issue_date"`
	To        string     `json:"to"`
	Lines     []string   `json:"lines"`
	Items     []LineItem `json:"items"`
	Totals    Totals     `json:"totals"`
	MailtoURL string     `json:"mailto_url"`
}

// Body joins the rendered lines into the plain-text email body.
func (d Document) Body() string {
	out := ""
	for i, line := range d.Lines {
		if i > 0 {
			out += "\n"
		}
		out += line
	}
	return out
}
