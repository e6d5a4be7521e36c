package handler

// --- Request / Response types ---

type addItemRequest struct {
	ProductID int `json:"product_id" validate:"required"`
}

type updateQuantityRequest struct {
	// Quantity is absolute, not a delta. Zero and below remove the line, so
	// no validation floor here.
	Quantity int `json:"quantity"`
}

type cartLineResponse struct {
	ProductID int     `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type cartResponse struct {
	ID        string             `json:"id"`
	Lines     []cartLineResponse `json:"lines"`
	ItemCount int                `json:"item_count"`
	Subtotal  float64            `json:"subtotal"`
}
