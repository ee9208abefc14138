package service

import (
	"context"
	"slices"

	perrors "github.com/abgdnv/catalog/internal/errors"
	"github.com/abgdnv/catalog/internal/store/db"
)

// MissingProductsMessage is the ValidationError message for unknown IDs.
const MissingProductsMessage = "some products were not found"

// BatchStore is the part of the store the batch validator needs.
type BatchStore interface {
	FindByIDs(ctx context.Context, ids []int64) ([]db.Product, error)
}

// BatchValidator confirms that a set of product IDs all exist, all or nothing.
//
// Availability is deliberately not checked: a soft-deleted product still exists
// for batch validation, unlike the single-product lookups of the Service.
type BatchValidator struct {
	store BatchStore
}

func NewBatchValidator(store BatchStore) *BatchValidator {
	return &BatchValidator{store: store}
}

// Validate deduplicates ids, fetches the matching rows and fails with a
// ValidationError unless every distinct ID was found. Store failures are
// returned as a ValidationError carrying the underlying message.
func (v *BatchValidator) Validate(ctx context.Context, ids []int64) ([]db.Product, error) {
	unique := dedupe(ids)

	products, err := v.store.FindByIDs(ctx, unique)
	if err != nil {
		return nil, &perrors.ValidationError{Message: err.Error(), Err: err}
	}
	if len(products) != len(unique) {
		return nil, perrors.NewValidation(MissingProductsMessage, missing(unique, products))
	}
	return products, nil
}

// dedupe keeps the first occurrence of every ID.
func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

func missing(requested []int64, found []db.Product) []int64 {
	foundIDs := make([]int64, len(found))
	for i := range found {
		foundIDs[i] = found[i].ID
	}
	var out []int64
	for _, id := range requested {
		if !slices.Contains(foundIDs, id) {
			out = append(out, id)
		}
	}
	return out
}
