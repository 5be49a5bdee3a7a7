package checkout

import (
	"sync"

	"github.com/sojibhasan5800/flipcart-storefront/internal/cart"
)

// Coordinator hands out the cart store and orchestrator pair owned by
// each cart identity. State is never free-floating: everything reachable
// from a request goes through here.
type Coordinator struct {
	cartGW  cart.Gateway
	orderGW OrderGateway

	mu       sync.Mutex
	sessions map[string]*Session
}

// Session is the per-identity pair of cart store and orchestrator.
type Session struct {
	Cart         *cart.Store
	Orchestrator *Orchestrator
}

func NewCoordinator(cartGW cart.Gateway, orderGW OrderGateway) *Coordinator {
	return &Coordinator{
		cartGW:   cartGW,
		orderGW:  orderGW,
		sessions: make(map[string]*Session),
	}
}

// Session returns the session for a cart identity, creating it on
// first use. A completed checkout resets the orchestrator to a fresh
// editing state on the next access.
func (c *Coordinator) Session(cartID string) *Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sessions[cartID]
	if ok && s.Orchestrator.Status().IsTerminal() {
		s.Orchestrator = NewOrchestrator(s.Cart, c.orderGW)
	}
	if !ok {
		store := cart.NewStore(c.cartGW, cartID)
		s = &Session{
			Cart:         store,
			Orchestrator: NewOrchestrator(store, c.orderGW),
		}
		c.sessions[cartID] = s
	}
	return s
}
