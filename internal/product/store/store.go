// Package store provides an interface for product storage operations.
package store

import "context"

// Product represents a product entity in the store.
type Product struct {
	ID          int
	Name        string
	Description string
	Price       float64
	Category    string
	InStock     bool
}

// ProductFields holds the mutable fields of a product.
type ProductFields struct {
	Name        string
	Description string
	Price       float64
	Category    string
	InStock     bool
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations.
type ProductStore interface {
	// FindAll returns products in insertion order.
	// When category is not empty only products whose category matches it case-insensitively are returned.
	FindAll(ctx context.Context, category string) ([]Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int) (*Product, error)

	// Create adds a new product and assigns its ID.
	Create(ctx context.Context, fields ProductFields) (*Product, error)

	// Update overwrites all mutable fields of an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id int, fields ProductFields) (*Product, error)

	// DeleteByID removes a product by its ID and returns the removed product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id int) (*Product, error)

	// SearchByName returns products whose name contains query, ignoring case.
	SearchByName(ctx context.Context, query string) ([]Product, error)

	// CountByCategory returns the number of products per category.
	// Category strings are used verbatim as keys.
	CountByCategory(ctx context.Context) (map[string]int, error)

	// Ping reports whether the store is able to serve requests.
	Ping(ctx context.Context) error
}

// Paginate returns the products of the given 1-based page.
// A page beyond the end of the slice yields an empty slice.
func Paginate(products []Product, page, limit int) []Product {
	if page < 1 || limit < 1 {
		return []Product{}
	}
	offset := (page - 1) * limit
	if offset >= len(products) {
		return []Product{}
	}
	end := min(offset+limit, len(products))
	return products[offset:end]
}
