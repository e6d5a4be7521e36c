package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrCartNotFound = errors.New("cart not found")

// Product is a catalog entry. The catalog owns these values; the core only
// reads them and copies them into cart lines.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}
