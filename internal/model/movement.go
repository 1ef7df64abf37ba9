package model

// Movement reference kinds.
const (
	MovementSale       = "venta"
	MovementAdjustment = "ajuste"
)

// StockMovement is an audit record written for every stock mutation.
type StockMovement struct {
	ID         string   `json:"id"`
	ProductKey string   `json:"producto"`
	Delta      float64  `json:"cambio"`
	Before     float64  `json:"stock_antes"`
	After      float64  `json:"stock_despues"`
	Reference  string   `json:"referencia"`
	Actor      string   `json:"responsable"`
	Date       SaleTime `json:"fecha"`
}
