// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"fmt"
	"log/slog"

	perrors "github.com/abgdnv/productapi/internal/product/errors"
	"github.com/abgdnv/productapi/internal/product/store"
	"github.com/abgdnv/productapi/pkg/messaging"
	"github.com/abgdnv/productapi/pkg/messaging/events"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// FindAll returns one page of products, optionally filtered by category.
	FindAll(ctx context.Context, query ListQuery) (*ProductPage, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int) (*ProductDto, error)

	// Create adds a new product to the system.
	Create(ctx context.Context, payload ProductPayload) (*ProductDto, error)

	// Update replaces the details of an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id int, payload ProductPayload) (*ProductDto, error)

	// DeleteByID removes a product by its ID and returns it.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id int) (*ProductDto, error)

	// SearchByName returns products whose name contains query, ignoring case.
	// Returns ErrSearchQueryRequired if query is empty.
	SearchByName(ctx context.Context, query string) (*SearchResult, error)

	// CategoryStats returns the number of products per category.
	CategoryStats(ctx context.Context) (map[string]int, error)

	// Ping reports whether the underlying store is ready.
	Ping(ctx context.Context) error
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
	publisher  messaging.Publisher
	logger     *slog.Logger
}

// NewService creates a new instance of ProductService with the provided repository.
// Product changes are announced through publisher.
func NewService(repo store.ProductStore, publisher messaging.Publisher, logger *slog.Logger) *Service {
	return &Service{
		repository: repo,
		publisher:  publisher,
		logger:     logger.With("component", "service"),
	}
}

// ProductPayload represents the data transfer object for creating or updating a product.
// Price and InStock are pointers so that 0 and false count as present.
type ProductPayload struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"       validate:"required"`
	Category    string   `json:"category"    validate:"required"`
	InStock     *bool    `json:"inStock"     validate:"required"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

// ListQuery holds the filter and pagination parameters of a product listing.
type ListQuery struct {
	Category string
	Page     int
	Limit    int
}

// ProductPage is one page of a product listing. Total counts the filtered products before pagination.
type ProductPage struct {
	Total int          `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
	Data  []ProductDto `json:"data"`
}

// SearchResult holds the products matching a name search.
type SearchResult struct {
	TotalResults int          `json:"totalResults"`
	Data         []ProductDto `json:"data"`
}

// FindAll retrieves the requested page of products.
func (s *Service) FindAll(ctx context.Context, query ListQuery) (*ProductPage, error) {
	products, err := s.repository.FindAll(ctx, query.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return &ProductPage{
		Total: len(products),
		Page:  query.Page,
		Limit: query.Limit,
		Data:  toDtos(store.Paginate(products, query.Page, query.Limit)),
	}, nil
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
func (s *Service) FindByID(ctx context.Context, id int) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}

	return toDto(product), nil
}

// Create creates a new product and returns it as a ProductDto.
func (s *Service) Create(ctx context.Context, payload ProductPayload) (*ProductDto, error) {
	p, err := s.repository.Create(ctx, toFields(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	created := toDto(p)
	s.publish(ctx, events.ProductCreatedEvent{Product: toEventProduct(created)})
	return created, nil
}

// Update overwrites an existing product and returns the updated product as a ProductDto.
func (s *Service) Update(ctx context.Context, id int, payload ProductPayload) (*ProductDto, error) {
	p, err := s.repository.Update(ctx, id, toFields(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %d: %w", id, err)
	}

	updated := toDto(p)
	s.publish(ctx, events.ProductUpdatedEvent{Product: toEventProduct(updated)})
	return updated, nil
}

// DeleteByID deletes a product by its ID and returns the removed product.
func (s *Service) DeleteByID(ctx context.Context, id int) (*ProductDto, error) {
	p, err := s.repository.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete product with ID %d: %w", id, err)
	}

	deleted := toDto(p)
	s.publish(ctx, events.ProductDeletedEvent{ProductID: deleted.ID})
	return deleted, nil
}

// SearchByName retrieves products whose name contains query.
func (s *Service) SearchByName(ctx context.Context, query string) (*SearchResult, error) {
	if query == "" {
		return nil, perrors.ErrSearchQueryRequired
	}
	products, err := s.repository.SearchByName(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search products by name %q: %w", query, err)
	}

	return &SearchResult{
		TotalResults: len(products),
		Data:         toDtos(products),
	}, nil
}

// CategoryStats counts products per category.
func (s *Service) CategoryStats(ctx context.Context) (map[string]int, error) {
	stats, err := s.repository.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products by category: %w", err)
	}
	return stats, nil
}

// Ping checks the underlying store.
func (s *Service) Ping(ctx context.Context) error {
	return s.repository.Ping(ctx)
}

// publish sends event and logs a failure instead of returning it; the change is already applied.
func (s *Service) publish(ctx context.Context, event messaging.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish event", "subject", event.Subject(), "error", err)
	}
}

// toFields converts a validated ProductPayload to store.ProductFields.
func toFields(payload ProductPayload) store.ProductFields {
	fields := store.ProductFields{
		Name:        payload.Name,
		Description: payload.Description,
		Category:    payload.Category,
	}
	if payload.Price != nil {
		fields.Price = *payload.Price
	}
	if payload.InStock != nil {
		fields.InStock = *payload.InStock
	}
	return fields
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		InStock:     product.InStock,
	}
}

func toDtos(products []store.Product) []ProductDto {
	dtos := make([]ProductDto, len(products))
	for i := range products {
		dtos[i] = *toDto(&products[i])
	}
	return dtos
}

func toEventProduct(dto *ProductDto) events.Product {
	return events.Product{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price,
		Category:    dto.Category,
		InStock:     dto.InStock,
	}
}
