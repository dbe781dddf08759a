package expense

import "math"

// ComputeTotals applies GST to the base amount. The stored total is base
// plus GST, so subtracting GST from the total recovers the base exactly.
func ComputeTotals(baseAmount float64) Totals {
	gst := math.Round(baseAmount*GSTRate*100) / 100
	return Totals{GST: gst, Total: baseAmount + gst}
}
