package dto

// DaySummary aggregates the ledger for one calendar day.
type DaySummary struct {
	Count int
	Total float64
}

// ProductSales aggregates the ledger for one product. Revenue multiplies
// the captured quantities by the product's price at aggregation time; the
// per-sale Total field remains the authoritative figure for a whole sale.
type ProductSales struct {
	Quantity    float64
	Revenue     float64
	Occurrences int
}

// Summary reduces a sequence of sales. Average is zero, not an error, for
// an empty sequence.
type Summary struct {
	Count   int
	Total   float64
	Average float64
}
