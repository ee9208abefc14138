// Package store provides an interface for product storage operations.
package store

import (
	"context"

	"github.com/abgdnv/catalog/internal/store/db"
	"github.com/shopspring/decimal"
)

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., pgx, gorm).
// Every failure other than a missing row is returned as a *errors.StorageError.
type ProductStore interface {
	// Create inserts a new product and returns the stored row with its generated ID.
	Create(ctx context.Context, product NewProduct) (*db.Product, error)

	// FindByID retrieves a single product matching the filter.
	// Returns ErrProductNotFound if no such row exists.
	FindByID(ctx context.Context, id int64, filter Filter) (*db.Product, error)

	// FindAll returns one page of products matching the filter, ordered by ID ascending.
	// Returns an empty slice if no products match.
	FindAll(ctx context.Context, filter Filter, offset int64, limit int32) ([]db.Product, error)

	// Count returns the number of products matching the filter.
	Count(ctx context.Context, filter Filter) (int64, error)

	// FindByIDs returns the products whose IDs are in ids, regardless of availability.
	// The result may be shorter than ids.
	FindByIDs(ctx context.Context, ids []int64) ([]db.Product, error)

	// Update applies patch to the product only if it matches the filter, in a single write.
	// Returns ErrProductNotFound if no row matched.
	Update(ctx context.Context, id int64, patch Patch, filter Filter) (*db.Product, error)

	// Delete removes a product and returns the row as it was before removal.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Delete(ctx context.Context, id int64) (*db.Product, error)
}

// Filter restricts which rows an operation can see. A nil Available matches any row.
type Filter struct {
	Available *bool
}

// AnyProduct matches every row.
func AnyProduct() Filter {
	return Filter{}
}

// AvailableOnly matches rows that have not been soft-deleted.
func AvailableOnly() Filter {
	available := true
	return Filter{Available: &available}
}

// NewProduct holds the fields of a product before it has been stored.
type NewProduct struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Available   bool
}

// Patch lists the fields to change. Nil fields are left untouched.
// The product ID is not patchable.
type Patch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Available   *bool
}
