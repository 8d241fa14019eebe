package cart

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"
)

// Store is the sole owner of the cart line items. A single mutex keeps
// every stock check-then-write in one critical section, so two
// concurrent adds for the same product cannot both pass the stock check.
type Store struct {
	mu        sync.Mutex
	items     map[int]CartItem
	catalog   CatalogReader
	idCounter atomic.Int64
}

func NewStore(catalog CatalogReader) *Store {
	return &Store{
		items:   make(map[int]CartItem),
		catalog: catalog,
	}
}

func (s *Store) nextID() int {
	return int(s.idCounter.Add(1))
}

// findByProduct assumes s.mu is held.
func (s *Store) findByProduct(productID int) (CartItem, bool) {
	for _, item := range s.items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return CartItem{}, false
}

// AddItem adds quantity of a product. A repeated add for the same
// product merges into the existing line (re-validated against live
// stock, snapshot refreshed) instead of creating a second one.
// Rejections apply entirely: no partial update.
func (s *Store) AddItem(productID, quantity int) (CartItem, error) {
	if quantity <= 0 {
		return CartItem{}, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.catalog.GetByID(productID)
	if !ok {
		return CartItem{}, ErrProductNotFound
	}

	if existing, ok := s.findByProduct(productID); ok {
		newQuantity := existing.Quantity + quantity
		if newQuantity > p.Stock {
			return CartItem{}, ErrInsufficientStock
		}

		existing.Quantity = newQuantity
		existing.Product = p
		s.items[existing.ID] = existing
		return existing, nil
	}

	if quantity > p.Stock {
		return CartItem{}, ErrInsufficientStock
	}

	item := CartItem{
		ID:        s.nextID(),
		ProductID: productID,
		Product:   p,
		Quantity:  quantity,
	}
	s.items[item.ID] = item
	return item, nil
}

// UpdateQuantity sets the quantity absolutely, validated against the
// stored snapshot's stock.
func (s *Store) UpdateQuantity(cartItemID, quantity int) (CartItem, error) {
	if quantity <= 0 {
		return CartItem{}, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[cartItemID]
	if !ok {
		return CartItem{}, ErrItemNotFound
	}
	if quantity > item.Product.Stock {
		return CartItem{}, ErrInsufficientStock
	}

	item.Quantity = quantity
	s.items[cartItemID] = item
	return item, nil
}

func (s *Store) RemoveItem(cartItemID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.items[cartItemID]
	if ok {
		delete(s.items, cartItemID)
	}
	return ok
}

func (s *Store) GetItem(cartItemID int) (CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[cartItemID]
	return item, ok
}

func (s *Store) GetItemByProduct(productID int) (CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.findByProduct(productID)
}

// ListAll returns a snapshot ordered by item id.
func (s *Store) ListAll() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]CartItem, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Aggregate computes the cart view. Totals use decimal arithmetic so
// price*quantity sums do not accumulate float drift.
func (s *Store) Aggregate() Cart {
	items := s.ListAll()

	totalItems := 0
	totalPrice := decimal.Zero
	for _, item := range items {
		totalItems += item.Quantity
		line := decimal.NewFromFloat(item.Product.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		totalPrice = totalPrice.Add(line)
	}

	price, _ := totalPrice.Float64()
	return Cart{
		Items:      items,
		TotalItems: totalItems,
		TotalPrice: price,
	}
}

// Clear empties the cart. Always succeeds, even when already empty.
func (s *Store) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[int]CartItem)
	return true
}
