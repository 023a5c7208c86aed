// Package cart implements the shopping cart state container. A Store
// is built per request from a persisted snapshot, mutated, and written
// back through an injected persister, so the store itself stays
// agnostic of where the snapshot lives (signed cookie in production,
// in-memory fake in tests).
package cart

import (
	"fmt"

	"github.com/castororo/Rajabakkiam-traders/internal/catalog"
)

// Item is one cart line. The same product in two different pack sizes
// is two distinct lines; the id encodes that.
type Item struct {
	ID        string `json:"id"` // productID + "-" + size
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	TamilName string `json:"tamilName,omitempty"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"` // always >= 1
}

// NoticeKind tags the notification emitted by a mutation.
type NoticeKind string

const (
	NoticeAdded   NoticeKind = "added"
	NoticeUpdated NoticeKind = "updated"
)

// Persister receives the full item list after every successful
// mutation.
type Persister func(items []Item)

// Notifier is a fire-and-forget toast hook. No return value is
// consumed.
type Notifier func(kind NoticeKind, title, message string)

type Store struct {
	items   []Item
	opened  bool
	persist Persister
	notify  Notifier
}

// NewStore builds a store from a persisted snapshot. Lines with an
// empty id or a non-positive quantity are dropped; a corrupt snapshot
// is the caller's problem to log, the store just starts empty.
// persist and notify may be nil.
func NewStore(items []Item, persist Persister, notify Notifier) *Store {
	s := &Store{persist: persist, notify: notify}
	for _, it := range items {
		if it.ID == "" || it.Quantity < 1 {
			continue
		}
		s.items = append(s.items, it)
	}
	return s
}

// ItemID derives the composite line id for a product and pack size.
func ItemID(productID, size string) string {
	return productID + "-" + size
}

// Add puts one unit of the product in the given size into the cart.
// An existing line for the same (product, size) pair is incremented
// instead of duplicated. Adding always opens the cart panel.
func (s *Store) Add(p catalog.Product, size string) {
	id := ItemID(p.ID, size)

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity++
			s.emit(NoticeUpdated, "Updated Cart", fmt.Sprintf("Increased quantity for %s (%s)", p.Name, size))
			s.opened = true
			s.flush()
			return
		}
	}

	s.items = append(s.items, Item{
		ID:        id,
		ProductID: p.ID,
		Name:      p.Name,
		TamilName: p.TamilName,
		Size:      size,
		Quantity:  1,
	})
	s.emit(NoticeAdded, "Added to Cart", fmt.Sprintf("%s (%s) added to your cart", p.Name, size))
	s.opened = true
	s.flush()
}

// UpdateQuantity overwrites the quantity of the matching line. A
// quantity below 1 removes the line instead. Unknown ids are a no-op.
func (s *Store) UpdateQuantity(id string, qty int) {
	if qty < 1 {
		s.Remove(id)
		return
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = qty
			s.flush()
			return
		}
	}
}

// Remove deletes the matching line. Unknown ids are a no-op.
func (s *Store) Remove(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.flush()
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.items = nil
	s.flush()
}

// TotalItems is the sum of quantities across all lines, recomputed on
// every call.
func (s *Store) TotalItems() int {
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// Items returns a copy of the current lines in insertion order.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Opened reports whether a mutation asked for the cart panel to be
// shown. In the server-rendered flow this decides the redirect target.
func (s *Store) Opened() bool { return s.opened }

func (s *Store) flush() {
	if s.persist != nil {
		s.persist(s.Items())
	}
}

func (s *Store) emit(kind NoticeKind, title, message string) {
	if s.notify != nil {
		s.notify(kind, title, message)
	}
}
