package dto

import "github.com/fekuna/tortilleria-pos/internal/model"

// ProductEntry pairs a product with its key for ordered listings.
type ProductEntry struct {
	Key     string
	Product model.Product
}

type CatalogStats struct {
	TotalProducts  int
	Depleted       int
	LowStock       int
	InventoryValue float64
}
