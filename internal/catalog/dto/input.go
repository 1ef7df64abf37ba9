package dto

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       float64
	Unit        string
	Category    string
}

type UpdateProductInput struct {
	Key         string
	Name        string
	Description string
	Price       float64
	Stock       float64
	Unit        string
	Category    string
	// Actor is recorded on the stock movement when the edit changes stock.
	Actor string
}

type AdjustStockInput struct {
	Key       string
	Delta     float64
	Reference string
	Actor     string
}
