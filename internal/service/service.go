// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"errors"
	"fmt"

	perrors "github.com/abgdnv/catalog/internal/errors"
	"github.com/abgdnv/catalog/internal/pagination"
	"github.com/abgdnv/catalog/internal/store"
	"github.com/abgdnv/catalog/internal/store/db"
	"github.com/shopspring/decimal"
)

// RemovedMessage is the confirmation text returned by Remove.
const RemovedMessage = "Product deleted successfully"

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// Create adds a new product to the catalog.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// FindAll returns one page of available products with page metadata.
	FindAll(ctx context.Context, page pagination.Request) (*pagination.Result[ProductDto], error)

	// FindByID retrieves a single available product.
	// Returns a NotFoundError if the product is missing or soft-deleted.
	FindByID(ctx context.Context, id int64) (*ProductDto, error)

	// Update patches an available product. The ID itself is never changed.
	// Returns a NotFoundError if the product is missing or soft-deleted.
	Update(ctx context.Context, id int64, patch ProductUpdateDto) (*ProductDto, error)

	// Remove permanently deletes a product, available or not.
	// Returns a NotFoundError if no row exists.
	Remove(ctx context.Context, id int64) (*RemovedDto, error)

	// SoftDelete marks an available product as unavailable.
	// Returns a NotFoundError if the product is missing or already soft-deleted.
	SoftDelete(ctx context.Context, id int64) (*ProductDto, error)

	// ValidateProducts checks that every ID refers to an existing product.
	// Returns a ValidationError if any ID is unknown.
	ValidateProducts(ctx context.Context, ids []int64) ([]ProductDto, error)
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
	batch      *BatchValidator
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
		batch:      NewBatchValidator(repo),
	}
}

// ProductCreateDto represents the data transfer object for creating a new product.
// Available defaults to true when omitted.
type ProductCreateDto struct {
	Name        string          `json:"name"                  validate:"required,min=3"`
	Description *string         `json:"description,omitempty" validate:"omitempty,min=10"`
	Available   *bool           `json:"available,omitempty"`
	Price       decimal.Decimal `json:"price"                 validate:"price"`
}

// ProductUpdateDto represents a partial update. ID is accepted for compatibility
// with clients that echo the whole product back, and is always ignored.
type ProductUpdateDto struct {
	ID          *int64           `json:"id,omitempty"`
	Name        *string          `json:"name,omitempty"        validate:"omitempty,min=3"`
	Description *string          `json:"description,omitempty" validate:"omitempty,min=10"`
	Available   *bool            `json:"available,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"       validate:"omitempty,price"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
}

// RemovedDto confirms a hard delete.
type RemovedDto struct {
	Message   string `json:"message"`
	ProductID int64  `json:"product_id"`
}

// ValidateProductsDto is the request body of a batch validation.
type ValidateProductsDto struct {
	IDs []int64 `json:"ids" validate:"dive,gt=0"`
}

// Create creates a new product and returns it as a ProductDto.
func (s *Service) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	available := true
	if product.Available != nil {
		available = *product.Available
	}
	p, err := s.repository.Create(ctx, store.NewProduct{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Available:   available,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return toDto(p), nil
}

// FindAll counts the available products and returns the requested page of them.
func (s *Service) FindAll(ctx context.Context, page pagination.Request) (*pagination.Result[ProductDto], error) {
	page = page.WithDefaults()
	filter := store.AvailableOnly()

	total, err := s.repository.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	products, err := s.repository.FindAll(ctx, filter, page.Offset(), page.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return &pagination.Result[ProductDto]{
		Data: toDtos(products),
		Meta: pagination.NewMeta(page, total),
	}, nil
}

// FindByID retrieves an available product by its ID and returns it as a ProductDto.
func (s *Service) FindByID(ctx context.Context, id int64) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id, store.AvailableOnly())
	if err != nil {
		return nil, notFoundOr(id, err, "failed to fetch product by ID %d: %w")
	}

	return toDto(product), nil
}

// Update applies the patch to an available product in a single conditional write,
// so a product soft-deleted or removed concurrently is reported as not found.
func (s *Service) Update(ctx context.Context, id int64, patch ProductUpdateDto) (*ProductDto, error) {
	updated, err := s.repository.Update(ctx, id, store.Patch{
		Name:        patch.Name,
		Description: patch.Description,
		Price:       patch.Price,
		Available:   patch.Available,
	}, store.AvailableOnly())
	if err != nil {
		return nil, notFoundOr(id, err, "failed to update product with ID %d: %w")
	}

	return toDto(updated), nil
}

// Remove hard-deletes a product regardless of its availability.
func (s *Service) Remove(ctx context.Context, id int64) (*RemovedDto, error) {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return nil, notFoundOr(id, err, "failed to delete product with ID %d: %w")
	}

	return &RemovedDto{
		Message:   RemovedMessage,
		ProductID: deleted.ID,
	}, nil
}

// SoftDelete flips an available product to unavailable. Soft-deleting twice fails with NotFound.
func (s *Service) SoftDelete(ctx context.Context, id int64) (*ProductDto, error) {
	unavailable := false
	updated, err := s.repository.Update(ctx, id, store.Patch{Available: &unavailable}, store.AvailableOnly())
	if err != nil {
		return nil, notFoundOr(id, err, "failed to soft delete product with ID %d: %w")
	}

	return toDto(updated), nil
}

// ValidateProducts delegates to the batch validator and converts the rows.
func (s *Service) ValidateProducts(ctx context.Context, ids []int64) ([]ProductDto, error) {
	products, err := s.batch.Validate(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toDtos(products), nil
}

// notFoundOr turns the store's not-found sentinel into a NotFoundError carrying the ID,
// and wraps any other failure with the given format.
func notFoundOr(id int64, err error, format string) error {
	if errors.Is(err, perrors.ErrProductNotFound) {
		return perrors.NewNotFound(id)
	}
	return fmt.Errorf(format, id, err)
}

// toDto converts a db.Product to a ProductDto.
func toDto(product *db.Product) *ProductDto {
	return &ProductDto{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Available:   product.Available,
	}
}

func toDtos(products []db.Product) []ProductDto {
	productDTOs := make([]ProductDto, len(products))
	for i := range products {
		productDTOs[i] = *toDto(&products[i])
	}
	return productDTOs
}
