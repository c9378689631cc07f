// Package cart holds a visitor's cart: product lines with quantities,
// the derived totals and whether the cart panel is open.
package cart

import (
	"slices"
	"sync"

	"beaticafe/internal/domain/model"
	"beaticafe/internal/observe"

	"github.com/shopspring/decimal"
)

// Line is one product in the cart. Quantity is always at least 1.
type Line struct {
	Product  model.Product
	Quantity int
}

// Subtotal is price × quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Snapshot is a consistent copy of a Store.
type Snapshot struct {
	Lines      []Line
	TotalItems int
	TotalPrice decimal.Decimal
	Open       bool
}

// Store is the cart of a single session. Lines keep the order in which
// products were first added. All methods are safe for concurrent use.
type Store struct {
	// notifyMu keeps listeners seeing snapshots in mutation order. It is
	// held while listeners run, so a listener must not mutate the store.
	notifyMu sync.Mutex
	mu       sync.Mutex
	lines    []Line
	open     bool

	changes observe.Subject[Snapshot]
}

func NewStore() *Store {
	return &Store{}
}

// Add puts one more of p in the cart.
func (s *Store) Add(p model.Product) {
	s.mutate(func() bool {
		if i := s.index(p.ID); i >= 0 {
			s.lines[i].Quantity++
			return true
		}
		s.lines = append(s.lines, Line{Product: p, Quantity: 1})
		return true
	})
}

// UpdateQuantity sets the quantity of productID. A quantity of zero or less
// removes the line; an unknown product is ignored.
func (s *Store) UpdateQuantity(productID string, qty int) {
	s.mutate(func() bool {
		i := s.index(productID)
		if i < 0 {
			return false
		}
		if qty <= 0 {
			s.lines = slices.Delete(s.lines, i, i+1)
			return true
		}
		if s.lines[i].Quantity == qty {
			return false
		}
		s.lines[i].Quantity = qty
		return true
	})
}

// Remove drops productID from the cart if it is there.
func (s *Store) Remove(productID string) {
	s.mutate(func() bool {
		i := s.index(productID)
		if i < 0 {
			return false
		}
		s.lines = slices.Delete(s.lines, i, i+1)
		return true
	})
}

// Clear empties the cart. The panel keeps its state.
func (s *Store) Clear() {
	s.mutate(func() bool {
		if len(s.lines) == 0 {
			return false
		}
		s.lines = nil
		return true
	})
}

func (s *Store) Open()   { s.setOpen(func(bool) bool { return true }) }
func (s *Store) Close()  { s.setOpen(func(bool) bool { return false }) }
func (s *Store) Toggle() { s.setOpen(func(o bool) bool { return !o }) }

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Quantity returns how many of productID are in the cart (0 if none).
func (s *Store) Quantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(productID); i >= 0 {
		return s.lines[i].Quantity
	}
	return 0
}

func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalItems(s.lines)
}

func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalPrice(s.lines)
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Subscribe registers fn for every change to lines or panel state.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	return s.changes.Subscribe(fn)
}

// mutate runs change under the lock and notifies when it reports a change.
func (s *Store) mutate(change func() bool) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if !change() {
		s.mu.Unlock()
		return
	}
	snap := s.snapshot()
	s.mu.Unlock()

	s.changes.Notify(snap)
}

func (s *Store) setOpen(next func(bool) bool) {
	s.mutate(func() bool {
		o := next(s.open)
		if o == s.open {
			return false
		}
		s.open = o
		return true
	})
}

func (s *Store) index(productID string) int {
	return slices.IndexFunc(s.lines, func(l Line) bool { return l.Product.ID == productID })
}

func (s *Store) snapshot() Snapshot {
	return Snapshot{
		Lines:      slices.Clone(s.lines),
		TotalItems: totalItems(s.lines),
		TotalPrice: totalPrice(s.lines),
		Open:       s.open,
	}
}

func totalItems(lines []Line) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

func totalPrice(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Subtotal())
	}
	return sum
}
