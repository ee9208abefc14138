package store

import (
	"context"
	"errors"

	perrors "github.com/abgdnv/catalog/internal/errors"
	"github.com/abgdnv/catalog/internal/store/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore implements ProductStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
	q  *db.Queries
}

// NewPgStore creates a new instance of ProductStore using a PostgreSQL connection pool.
// The pool is owned by the caller, which closes it on shutdown.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{
		db: dbp,
		q:  db.New(dbp),
	}
}

// Create adds a new product to the system.
func (p *PgStore) Create(ctx context.Context, product NewProduct) (*db.Product, error) {
	created, err := p.q.Create(ctx, db.CreateParams{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Available:   product.Available,
	})
	if err != nil {
		return nil, perrors.NewStorage("create product", err)
	}
	return &created, nil
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product matches the ID and filter.
func (p *PgStore) FindByID(ctx context.Context, id int64, filter Filter) (*db.Product, error) {
	product, err := p.q.FindByID(ctx, db.FindByIDParams{ID: id, Available: filter.Available})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, perrors.NewStorage("find product by ID", err)
	}
	return &product, nil
}

// FindAll retrieves one page of products ordered by ID.
func (p *PgStore) FindAll(ctx context.Context, filter Filter, offset int64, limit int32) ([]db.Product, error) {
	products, err := p.q.FindAll(ctx, db.FindAllParams{Available: filter.Available, Off: offset, Lim: limit})
	if err != nil {
		return nil, perrors.NewStorage("find all products", err)
	}
	return products, nil
}

// Count returns the number of products matching the filter.
func (p *PgStore) Count(ctx context.Context, filter Filter) (int64, error) {
	total, err := p.q.Count(ctx, filter.Available)
	if err != nil {
		return 0, perrors.NewStorage("count products", err)
	}
	return total, nil
}

// FindByIDs retrieves products by IDs.
// It returns a slice of products, which may be shorter than ids.
func (p *PgStore) FindByIDs(ctx context.Context, ids []int64) ([]db.Product, error) {
	products, err := p.q.FindByIDs(ctx, ids)
	if err != nil {
		return nil, perrors.NewStorage("find products by IDs", err)
	}
	return products, nil
}

// Update modifies a product in one conditional statement.
// Returns ErrProductNotFound if no product matches the ID and filter.
func (p *PgStore) Update(ctx context.Context, id int64, patch Patch, filter Filter) (*db.Product, error) {
	product, err := p.q.Update(ctx, db.UpdateParams{
		Name:         patch.Name,
		Description:  patch.Description,
		Price:        patch.Price,
		SetAvailable: patch.Available,
		ID:           id,
		Available:    filter.Available,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, perrors.NewStorage("update product", err)
	}
	return &product, nil
}

// Delete removes a product by its unique identifier and returns the removed row.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) Delete(ctx context.Context, id int64) (*db.Product, error) {
	product, err := p.q.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, perrors.NewStorage("delete product", err)
	}
	return &product, nil
}
