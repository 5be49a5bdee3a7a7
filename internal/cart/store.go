package cart

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/sojibhasan5800/flipcart-storefront/internal/domain"
	"golang.org/x/sync/singleflight"
)

// Gateway is the slice of the remote cart resource the store needs.
// Consumers define this interface, not the HTTP implementation.
type Gateway interface {
	FetchLines(ctx context.Context, cartID string) ([]domain.CartLine, error)
	AddLine(ctx context.Context, cartID string, productID int64, quantity int, variations map[string]string) error
	UpdateLine(ctx context.Context, lineID int64, quantity int) error
	DeleteLine(ctx context.Context, lineID int64) error
}

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Store owns the authoritative in-memory cart snapshot for one cart
// identity. Every mutation is "fire request, then re-fetch ground
// truth": the visible state is always something the backend actually
// returned, never a local prediction.
type Store struct {
	gw     Gateway
	cartID string

	// mutMu serializes each mutation-and-reload pair so overlapping
	// mutations cannot interleave their reloads.
	mutMu sync.Mutex

	mu       sync.RWMutex
	snapshot domain.CartSnapshot
	seq      uint64 // reload tokens handed out
	applied  uint64 // newest token whose result was applied

	sfg singleflight.Group // coalesces concurrent external reloads
}

func NewStore(gw Gateway, cartID string) *Store {
	return &Store{gw: gw, cartID: cartID}
}

func (s *Store) CartID() string {
	return s.cartID
}

// Snapshot returns a copy of the current snapshot. Readers never
// observe a torn intermediate state.
func (s *Store) Snapshot() domain.CartSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

// Count is derived from the snapshot on every read, never cached
// independently of it.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.ItemCount()
}

func (s *Store) Subtotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Subtotal()
}

// Reload fetches the full line list and replaces the snapshot
// atomically. On failure the previous snapshot is retained. Concurrent
// callers share one fetch.
func (s *Store) Reload(ctx context.Context) error {
	_, err, _ := s.sfg.Do("reload", func() (interface{}, error) {
		return nil, s.reload(ctx)
	})
	return err
}

func (s *Store) reload(ctx context.Context) error {
	s.mu.Lock()
	s.seq++
	token := s.seq
	s.mu.Unlock()

	lines, err := s.gw.FetchLines(ctx, s.cartID)
	if err != nil {
		log.Printf("cart %s: reload failed: %v", s.cartID, err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token <= s.applied {
		// a newer reload or a clear already settled; discard
		return nil
	}
	s.applied = token
	s.snapshot = domain.CartSnapshot{Lines: lines}
	return nil
}

// AddItem sends an add request and then reloads the authoritative
// snapshot. Success is reported only after the reload settles; on any
// failure the visible snapshot is unchanged.
func (s *Store) AddItem(ctx context.Context, productID int64, quantity int, variations map[string]string) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mutMu.Lock()
	defer s.mutMu.Unlock()

	if err := s.gw.AddLine(ctx, s.cartID, productID, quantity, variations); err != nil {
		log.Printf("cart %s: add item failed: %v", s.cartID, err)
		return err
	}
	return s.reload(ctx)
}

// SetQuantity updates a line's quantity then reloads. A quantity of
// zero or below removes the line instead.
func (s *Store) SetQuantity(ctx context.Context, lineID int64, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, lineID)
	}

	s.mutMu.Lock()
	defer s.mutMu.Unlock()

	if err := s.gw.UpdateLine(ctx, lineID, quantity); err != nil {
		log.Printf("cart %s: update quantity failed: %v", s.cartID, err)
		return err
	}
	return s.reload(ctx)
}

func (s *Store) RemoveItem(ctx context.Context, lineID int64) error {
	s.mutMu.Lock()
	defer s.mutMu.Unlock()

	if err := s.gw.DeleteLine(ctx, lineID); err != nil {
		log.Printf("cart %s: remove item failed: %v", s.cartID, err)
		return err
	}
	return s.reload(ctx)
}

// Clear resets the local snapshot to empty without contacting the
// backend. Used only after a checkout has durably succeeded. Any
// reload still in flight is invalidated so it cannot resurrect the
// cleared lines.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied = s.seq
	s.snapshot = domain.CartSnapshot{}
}
