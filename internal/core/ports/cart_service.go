package ports

import (
	"time"

	"github.com/urbanova/storefront/internal/core/domain"
)

// CartView is the cart snapshot returned to callers: the lines plus the
// derived totals, recomputed on every read.
type CartView struct {
	ID        string
	Lines     []domain.CartLine
	ItemCount int
	Subtotal  float64
}

// CartService owns the in-memory registry of session carts. Carts are never
// persisted; a process restart discards them all, which is intentional.
type CartService interface {
	// Create opens a new empty cart and returns its id.
	Create() CartView
	// Get returns the cart snapshot, or domain.ErrCartNotFound.
	Get(cartID string) (CartView, error)
	// AddItem adds one unit of the product to the cart, merging quantities
	// for a product already present.
	AddItem(cartID string, productID int) (CartView, error)
	// UpdateQuantity sets an absolute quantity for a product line; a value
	// of zero or below removes the line. An unknown product id in the cart
	// is a no-op.
	UpdateQuantity(cartID string, productID, quantity int) (CartView, error)
	// RemoveItem deletes the product line from the cart; no-op when absent.
	RemoveItem(cartID string, productID int) (CartView, error)
	// EvictIdle drops carts untouched since the cutoff and reports how many
	// were removed.
	EvictIdle(cutoff time.Time) int
}
