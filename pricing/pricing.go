// Package pricing computes order totals. Pure computation, no I/O.
package pricing

// ComputeTotal returns the order total for a unit price and quantity.
func ComputeTotal(unitPrice float64, quantity int) float64 {
	return unitPrice * float64(quantity)
}
