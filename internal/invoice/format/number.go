package format

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// DefaultInvoiceNumberTemplate derives the invoice number from the client's
// initials and the issue date: last initial, first initial, then YYMMDD.
const DefaultInvoiceNumberTemplate = "{LAST}{FIRST}{YY}{MM}{DD}"

// PlaceholderInitial stands in when a name token yields no usable initial.
const PlaceholderInitial = "X"

// InvoiceNumber formats a human-readable invoice number based on a template,
// the client's full name, and the invoice issue time.
//
// This function is PURE:
// - No side effects
// - Fully deterministic
//
// Two invoices issued the same day to clients sharing both initials collide;
// that is accepted behavior, not a defect.
func InvoiceNumber(template, clientName string, issuedAt time.Time) (string, error) {
	if template == "" {
		return "", fmt.Errorf("invoice number template is empty")
	}

	first, last := initials(clientName)

	out := template

	// Name tokens
	out = strings.ReplaceAll(out, "{FIRST}", first)
	out = strings.ReplaceAll(out, "{LAST}", last)

	// Date tokens
	out = strings.ReplaceAll(out, "{YYYY}", issuedAt.Format("2006"))
	out = strings.ReplaceAll(out, "{YY}", issuedAt.Format("06"))
	out = strings.ReplaceAll(out, "{MM}", issuedAt.Format("01"))
	out = strings.ReplaceAll(out, "{DD}", issuedAt.Format("02"))

	// Final safety check: unresolved tokens
	if strings.Contains(out, "{") || strings.Contains(out, "}") {
		return "", fmt.Errorf("unresolved token in invoice number format: %s", out)
	}

	return out, nil
}

// initials returns the uppercased first rune of the first and last
// whitespace-separated tokens of name. A single-token name uses that token
// for both. A name with no tokens falls back to the placeholder initial
// instead of failing.
func initials(name string) (first, last string) {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return PlaceholderInitial, PlaceholderInitial
	}
	return initialOf(tokens[0]), initialOf(tokens[len(tokens)-1])
}

func initialOf(token string) string {
	for _, r := range token {
		return string(unicode.ToUpper(r))
	}
	return PlaceholderInitial
}
