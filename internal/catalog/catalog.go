// Package catalog provides the static product catalog. It is read-only: the
// cart and account stores consume it but never mutate it.
package catalog

import "github.com/urbanova/storefront/internal/core/domain"

// Catalog serves product lookups over a fixed product list.
type Catalog struct {
	products []domain.Product
	byID     map[int]int
}

// New builds a catalog over the given products. Pass nil to use the built-in
// seed data.
func New(products []domain.Product) *Catalog {
	if products == nil {
		products = seed
	}
	byID := make(map[int]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &Catalog{products: products, byID: byID}
}

// Product returns the entry for id, or domain.ErrProductNotFound.
func (c *Catalog) Product(id int) (domain.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return c.products[i], nil
}

// Products returns all entries, optionally filtered by category. An empty
// category returns everything, in catalog order.
func (c *Catalog) Products(category string) []domain.Product {
	if category == "" {
		out := make([]domain.Product, len(c.products))
		copy(out, c.products)
		return out
	}
	var out []domain.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen catalog order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
