package billing

import "math"

// ComputeTotals prices the line items, applies GST to the subtotal and
// subtracts the discount. The discount is not capped: an oversized discount
// produces a negative total, which is reported as a warning rather than
// clamped or rejected.
func ComputeTotals(items []LineItem, discount float64) (Totals, []string) {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Quantity * item.Rate
	}

	totals := Totals{
		Subtotal: subtotal,
		Tax:      round2(subtotal * GSTRate),
	}
	totals.Total = totals.Subtotal + totals.Tax - discount

	var warnings []string
	if totals.Total < 0 {
		warnings = append(warnings, WarningNegativeTotal)
	}
	return totals, warnings
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
