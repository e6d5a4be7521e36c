package ports

import "github.com/urbanova/storefront/internal/core/domain"

// Catalog is the read-only product collaborator. The core never mutates it.
type Catalog interface {
	// Product returns the catalog entry for id, or domain.ErrProductNotFound.
	Product(id int) (domain.Product, error)
	// Products returns all catalog entries, optionally filtered by category
	// (empty category means no filter).
	Products(category string) []domain.Product
	// Categories returns the distinct categories in catalog order.
	Categories() []string
}
