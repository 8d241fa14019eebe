package product

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// Store is the sole owner of the product collection: a mutex-guarded map
// plus an atomic id counter. Ids increase monotonically and are never
// reused within a process lifetime, even after deletes.
type Store struct {
	mu        sync.RWMutex
	products  map[int]Product
	idCounter atomic.Int64
}

func NewStore() *Store {
	return &Store{products: make(map[int]Product)}
}

func (s *Store) nextID() int {
	return int(s.idCounter.Add(1))
}

// ListAll returns a point-in-time snapshot ordered by id, which equals
// insertion order since ids are monotonic.
func (s *Store) ListAll() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetByID(id int) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	return p, ok
}

// ListByCategory matches the category field exactly, case-insensitively.
func (s *Store) ListByCategory(category string) []Product {
	all := s.ListAll()

	out := make([]Product, 0)
	for _, p := range all {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Search matches a case-insensitive substring against name, description
// or category.
func (s *Store) Search(query string) []Product {
	q := strings.ToLower(query)
	all := s.ListAll()

	out := make([]Product, 0)
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// Paginate slices a 1-indexed page window out of an already filtered
// snapshot. A window starting past the end yields an empty slice with
// the correct total.
func Paginate(products []Product, page, pageSize int) ([]Product, int) {
	totalItems := len(products)
	start := (page - 1) * pageSize
	if start >= totalItems {
		return []Product{}, totalItems
	}

	end := start + pageSize
	if end > totalItems {
		end = totalItems
	}
	return products[start:end], totalItems
}

// Create assigns the next id and inserts. The caller supplies a product
// with defaults already applied; the id field is overwritten.
func (s *Store) Create(p Product) Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID()
	s.products[p.ID] = p
	return p
}

// Update merges the supplied fields into the existing record. Absent
// fields keep their previous value.
func (s *Store) Update(id int, req UpdateProductRequest) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return Product{}, false
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}
	if req.Rating != nil {
		p.Rating = *req.Rating
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}

	s.products[id] = p
	return p, true
}

func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.products[id]
	if ok {
		delete(s.products, id)
	}
	return ok
}

// Categories returns the distinct category names, sorted.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.products))
	out := make([]string, 0)
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.products)
}
