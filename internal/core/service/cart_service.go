package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/urbanova/storefront/internal/core/domain"
	"github.com/urbanova/storefront/internal/core/ports"
)

type cartEntry struct {
	cart      *domain.Cart
	lastTouch time.Time
}

// CartService keeps every open cart in memory, keyed by an opaque cart id
// handed to the UI session that created it. Carts are never written to the
// persistence adapter: losing them on restart is part of the contract.
type CartService struct {
	catalog ports.Catalog
	logger  zerolog.Logger

	mu    sync.Mutex
	carts map[string]*cartEntry
}

// NewCartService builds a CartService that resolves products through the
// given read-only catalog.
func NewCartService(catalog ports.Catalog, logger zerolog.Logger) *CartService {
	return &CartService{
		catalog: catalog,
		logger:  logger,
		carts:   make(map[string]*cartEntry),
	}
}

func (s *CartService) Create() ports.CartView {
	cart := &domain.Cart{ID: uuid.NewString()}

	s.mu.Lock()
	s.carts[cart.ID] = &cartEntry{cart: cart, lastTouch: time.Now()}
	s.mu.Unlock()

	s.logger.Debug().Str("cart_id", cart.ID).Msg("cart created")
	return snapshot(cart)
}

func (s *CartService) Get(cartID string) (ports.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[cartID]
	if !ok {
		return ports.CartView{}, domain.ErrCartNotFound
	}
	return snapshot(entry.cart), nil
}

func (s *CartService) AddItem(cartID string, productID int) (ports.CartView, error) {
	product, err := s.catalog.Product(productID)
	if err != nil {
		return ports.CartView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[cartID]
	if !ok {
		return ports.CartView{}, domain.ErrCartNotFound
	}
	entry.cart.AddItem(product)
	entry.lastTouch = time.Now()
	return snapshot(entry.cart), nil
}

func (s *CartService) UpdateQuantity(cartID string, productID, quantity int) (ports.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[cartID]
	if !ok {
		return ports.CartView{}, domain.ErrCartNotFound
	}
	entry.cart.UpdateQuantity(productID, quantity)
	entry.lastTouch = time.Now()
	return snapshot(entry.cart), nil
}

func (s *CartService) RemoveItem(cartID string, productID int) (ports.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[cartID]
	if !ok {
		return ports.CartView{}, domain.ErrCartNotFound
	}
	entry.cart.RemoveItem(productID)
	entry.lastTouch = time.Now()
	return snapshot(entry.cart), nil
}

// EvictIdle removes carts untouched since the cutoff. Called periodically by
// the sweeper so abandoned carts do not accumulate for the process lifetime.
func (s *CartService) EvictIdle(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, entry := range s.carts {
		if entry.lastTouch.Before(cutoff) {
			delete(s.carts, id)
			evicted++
		}
	}
	if evicted > 0 {
		s.logger.Info().Int("evicted", evicted).Msg("idle carts evicted")
	}
	return evicted
}

// Len reports how many carts are currently open.
func (s *CartService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}

func snapshot(cart *domain.Cart) ports.CartView {
	lines := make([]domain.CartLine, len(cart.Lines))
	copy(lines, cart.Lines)
	return ports.CartView{
		ID:        cart.ID,
		Lines:     lines,
		ItemCount: cart.ItemCount(),
		Subtotal:  cart.Subtotal(),
	}
}
