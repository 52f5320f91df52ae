package domain

import (
	"math"
	"strconv"
	"strings"
)

// detailEligible lists the row types whose trimmed description is appended
// to the label in parentheses.
var detailEligible = map[string]bool{
	"Parts":  true,
	"Labour": true,
}

// CollectLineItems validates and normalizes raw form rows into line items.
// Rows with an unparseable, zero, negative, or non-finite amount are dropped
// silently: operators leave unused rows blank and that must not be an error.
// Output order matches input order. An empty result is the caller's
// "no valid items" condition, not an error here.
//
// This function is PURE:
// - No side effects
// - Fully deterministic
func CollectLineItems(rows []RawRow) []LineItem {
	items := make([]LineItem, 0, len(rows))
	for _, row := range rows {
		amount, err := strconv.ParseFloat(strings.TrimSpace(row.AmountText), 64)
		if err != nil || math.IsInf(amount, 0) || math.IsNaN(amount) || amount <= 0 {
			continue
		}

		label := row.Type
		if detailEligible[row.Type] {
			if desc := strings.TrimSpace(row.Description); desc != "" {
				label = label + " (" + desc + ")"
			}
		}
		label = truncateLabel(label, MaxLabelLength)

		items = append(items, LineItem{Label: label, Amount: amount})
	}
	return items
}

// truncateLabel hard-cuts a label to max runes. No ellipsis marker.
func truncateLabel(label string, max int) string {
	runes := []rune(label)
	if len(runes) <= max {
		return label
	}
	return string(runes[:max])
}
