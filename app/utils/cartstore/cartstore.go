package cartstore

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
)

// ErrSizeRequired mirrors the storefront's "Please select a size" guard.
var ErrSizeRequired = errors.New("Please select a size")

// Items maps productID -> size -> quantity.
type Items map[string]map[string]int

// Store is the storefront cart mirror with an explicit load/save/mutate
// lifecycle. It holds guest carts server-side; the authenticated cart lives
// in the database and is synced separately.
type Store struct {
	items Items
}

func New() *Store {
	return &Store{items: Items{}}
}

func FromItems(items Items) *Store {
	if items == nil {
		items = Items{}
	}
	return &Store{items: items}
}

// AddItem increments the (product, size) quantity by one, creating nested
// entries as needed.
func (s *Store) AddItem(productID, size string) error {
	if size == "" {
		return ErrSizeRequired
	}
	if s.items[productID] == nil {
		s.items[productID] = map[string]int{}
	}
	s.items[productID][size]++
	return nil
}

// SetQuantity overwrites the quantity. Zero deletes the size entry, and the
// product entry goes too once its last size is removed.
func (s *Store) SetQuantity(productID, size string, quantity int) {
	if quantity == 0 {
		if sizes, ok := s.items[productID]; ok {
			delete(sizes, size)
			if len(sizes) == 0 {
				delete(s.items, productID)
			}
		}
		return
	}
	if s.items[productID] == nil {
		s.items[productID] = map[string]int{}
	}
	s.items[productID][size] = quantity
}

// Count sums all quantities across every product and size.
func (s *Store) Count() int {
	total := 0
	for _, sizes := range s.items {
		for _, qty := range sizes {
			total += qty
		}
	}
	return total
}

// Amount totals price x quantity using whatever the lookup currently knows.
// A price change is not reflected until the caller's product list refreshes;
// unknown products contribute nothing.
func (s *Store) Amount(price func(productID string) (decimal.Decimal, bool)) decimal.Decimal {
	total := decimal.Zero
	for productID, sizes := range s.items {
		p, ok := price(productID)
		if !ok {
			continue
		}
		for _, qty := range sizes {
			total = total.Add(p.Mul(decimal.NewFromInt(int64(qty))))
		}
	}
	return total
}

// Items returns a copy so callers cannot mutate the store behind its back.
func (s *Store) Items() Items {
	out := make(Items, len(s.items))
	for productID, sizes := range s.items {
		copied := make(map[string]int, len(sizes))
		for size, qty := range sizes {
			copied[size] = qty
		}
		out[productID] = copied
	}
	return out
}

// ProductIDs returns the product ids in the cart, sorted for stable output.
func (s *Store) ProductIDs() []string {
	ids := make([]string, 0, len(s.items))
	for productID := range s.items {
		ids = append(ids, productID)
	}
	sort.Strings(ids)
	return ids
}
