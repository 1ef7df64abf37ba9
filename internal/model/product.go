package model

// StockStatus is a projection derived from the current stock level; it is
// never stored.
type StockStatus string

const (
	StockAvailable StockStatus = "disponible"
	StockLow       StockStatus = "poco_stock"
	StockDepleted  StockStatus = "agotado"
)

// lowStockThreshold marks the point at or below which a product counts as
// low stock.
const lowStockThreshold = 5.0

// Product is a catalog entry. The product key (slug) lives outside the
// struct: the catalog keys products the same way the persisted JSON object
// does. JSON tags follow the on-disk format.
type Product struct {
	Name        string  `json:"nombre"`
	Stock       float64 `json:"stock"`
	Price       float64 `json:"precio"`
	Unit        string  `json:"unidad"`
	Description string  `json:"descripcion"`
	Category    string  `json:"categoria"`
}

func (p Product) StockStatus() StockStatus {
	switch {
	case p.Stock == 0:
		return StockDepleted
	case p.Stock <= lowStockThreshold:
		return StockLow
	default:
		return StockAvailable
	}
}
