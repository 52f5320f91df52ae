package domain

// ComputeTotals sums the line items and applies the tax rate. Accumulation
// runs in input order at full float precision; rounding belongs to the
// formatting boundary, never here. The invariant total == subtotal + tax
// holds exactly as written.
func ComputeTotals(items []LineItem, taxRate float64) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Amount
	}
	tax := subtotal * taxRate
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}
