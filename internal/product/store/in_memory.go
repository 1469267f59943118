package store

import (
	"context"
	"strings"
	"sync"

	"github.com/abgdnv/productapi/internal/product/errors"
)

// inMemory implements ProductStore using an ordered in-memory slice.
type inMemory struct {
	mu       sync.RWMutex
	products []Product
	nextID   int
}

// NewInMemoryStore creates a new instance of ProductStore holding a copy of seed.
// IDs of created products start after the number of seed products and are never reused.
func NewInMemoryStore(seed []Product) ProductStore {
	products := make([]Product, len(seed))
	copy(products, seed)
	return &inMemory{
		products: products,
		nextID:   len(seed) + 1,
	}
}

// SeedProducts returns the products the service starts with.
func SeedProducts() []Product {
	return []Product{
		{ID: 1, Name: "Laptop", Description: "A powerful laptop", Price: 1500, Category: "Electronics", InStock: true},
		{ID: 2, Name: "Shoes", Description: "Running shoes", Price: 80, Category: "Fashion", InStock: false},
	}
}

// FindAll retrieves all products, optionally filtered by category.
func (s *inMemory) FindAll(_ context.Context, category string) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		list = append(list, p)
	}
	return list, nil
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(_ context.Context, id int) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, errors.ErrProductNotFound
	}
	p := s.products[i]
	return &p, nil
}

// Create creates a new product and returns it.
func (s *inMemory) Create(_ context.Context, fields ProductFields) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := Product{ID: s.nextID}
	apply(&product, fields)
	s.nextID++
	s.products = append(s.products, product)

	return &product, nil
}

// Update overwrites the mutable fields of a product in place.
func (s *inMemory) Update(_ context.Context, id int, fields ProductFields) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, errors.ErrProductNotFound
	}
	apply(&s.products[i], fields)
	p := s.products[i]
	return &p, nil
}

// DeleteByID deletes a product by its ID.
func (s *inMemory) DeleteByID(_ context.Context, id int) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, errors.ErrProductNotFound
	}
	removed := s.products[i]
	s.products = append(s.products[:i], s.products[i+1:]...)
	return &removed, nil
}

// SearchByName retrieves products whose name contains query.
func (s *inMemory) SearchByName(_ context.Context, query string) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)
	list := make([]Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			list = append(list, p)
		}
	}
	return list, nil
}

// CountByCategory counts products per category.
func (s *inMemory) CountByCategory(_ context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[string]int)
	for _, p := range s.products {
		stats[p.Category]++
	}
	return stats, nil
}

// Ping always succeeds for the in-memory store.
func (s *inMemory) Ping(_ context.Context) error {
	return nil
}

// indexOf returns the position of the product with the given ID or -1. Callers must hold the lock.
func (s *inMemory) indexOf(id int) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func apply(p *Product, fields ProductFields) {
	p.Name = fields.Name
	p.Description = fields.Description
	p.Price = fields.Price
	p.Category = fields.Category
	p.InStock = fields.InStock
}
