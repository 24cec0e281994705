package server

import (
	"sync"

	"discbin/internal/cart"
)

// cartRegistry holds one cart per live session, keyed by the session token's
// jti. Carts are created lazily on first use and dropped on logout; a
// remembered session that comes back keeps its jti and therefore its cart.
type cartRegistry struct {
	mu    sync.Mutex
	stock cart.StockReader
	carts map[string]*cart.Cart
}

func newCartRegistry(stock cart.StockReader) *cartRegistry {
	return &cartRegistry{
		stock: stock,
		carts: make(map[string]*cart.Cart),
	}
}

// get returns the cart for a session, creating it on first access.
func (r *cartRegistry) get(sessionID string) *cart.Cart {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[sessionID]
	if !ok {
		c = cart.New(r.stock)
		r.carts[sessionID] = c
	}
	return c
}

// drop discards a session's cart. Safe when no cart exists.
func (r *cartRegistry) drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}
