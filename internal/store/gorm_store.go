package store

import (
	"context"
	"errors"
	"time"

	perrors "github.com/abgdnv/catalog/internal/errors"
	"github.com/abgdnv/catalog/internal/store/db"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// productRecord is the GORM mapping of the products table.
// Available has no gorm default tag: GORM would skip an explicit false on insert.
type productRecord struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null"`
	Description *string
	Price       decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Available   bool            `gorm:"not null;index:idx_products_available_id,priority:1"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

func (productRecord) TableName() string {
	return "products"
}

func (r *productRecord) toProduct() db.Product {
	return db.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Available:   r.Available,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// GormStore implements ProductStore on top of GORM, so the service can run
// against any dialect GORM supports (PostgreSQL, SQLite).
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new instance of ProductStore using a GORM connection.
func NewGormStore(gdb *gorm.DB) *GormStore {
	return &GormStore{db: gdb}
}

// AutoMigrate creates or updates the products table for the current dialect.
func (s *GormStore) AutoMigrate() error {
	if err := s.db.AutoMigrate(&productRecord{}); err != nil {
		return perrors.NewStorage("migrate products table", err)
	}
	return nil
}

func (s *GormStore) scoped(ctx context.Context, filter Filter) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&productRecord{})
	if filter.Available != nil {
		q = q.Where("available = ?", *filter.Available)
	}
	return q
}

// Create adds a new product to the system.
func (s *GormStore) Create(ctx context.Context, product NewProduct) (*db.Product, error) {
	rec := productRecord{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Available:   product.Available,
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, perrors.NewStorage("create product", err)
	}
	p := rec.toProduct()
	return &p, nil
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product matches the ID and filter.
func (s *GormStore) FindByID(ctx context.Context, id int64, filter Filter) (*db.Product, error) {
	var rec productRecord
	if err := s.scoped(ctx, filter).Where("id = ?", id).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, perrors.NewStorage("find product by ID", err)
	}
	p := rec.toProduct()
	return &p, nil
}

// FindAll retrieves one page of products ordered by ID.
func (s *GormStore) FindAll(ctx context.Context, filter Filter, offset int64, limit int32) ([]db.Product, error) {
	var recs []productRecord
	err := s.scoped(ctx, filter).
		Order("id").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&recs).Error
	if err != nil {
		return nil, perrors.NewStorage("find all products", err)
	}
	return toProducts(recs), nil
}

// Count returns the number of products matching the filter.
func (s *GormStore) Count(ctx context.Context, filter Filter) (int64, error) {
	var total int64
	if err := s.scoped(ctx, filter).Count(&total).Error; err != nil {
		return 0, perrors.NewStorage("count products", err)
	}
	return total, nil
}

// FindByIDs retrieves products by IDs.
func (s *GormStore) FindByIDs(ctx context.Context, ids []int64) ([]db.Product, error) {
	if len(ids) == 0 {
		return []db.Product{}, nil
	}
	var recs []productRecord
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&recs).Error; err != nil {
		return nil, perrors.NewStorage("find products by IDs", err)
	}
	return toProducts(recs), nil
}

// Update modifies a product inside one transaction; the filtered UPDATE decides
// whether the product is still eligible.
// Returns ErrProductNotFound if no product matches the ID and filter.
func (s *GormStore) Update(ctx context.Context, id int64, patch Patch, filter Filter) (*db.Product, error) {
	changes := map[string]any{"updated_at": time.Now()}
	if patch.Name != nil {
		changes["name"] = *patch.Name
	}
	if patch.Description != nil {
		changes["description"] = *patch.Description
	}
	if patch.Price != nil {
		changes["price"] = *patch.Price
	}
	if patch.Available != nil {
		changes["available"] = *patch.Available
	}

	var rec productRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&productRecord{}).Where("id = ?", id)
		if filter.Available != nil {
			q = q.Where("available = ?", *filter.Available)
		}
		res := q.Updates(changes)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return perrors.ErrProductNotFound
		}
		return tx.Where("id = ?", id).Take(&rec).Error
	})
	if err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, perrors.NewStorage("update product", err)
	}
	p := rec.toProduct()
	return &p, nil
}

// Delete removes a product by its unique identifier and returns the removed row.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *GormStore) Delete(ctx context.Context, id int64) (*db.Product, error) {
	var rec productRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).Take(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return perrors.ErrProductNotFound
			}
			return err
		}
		return tx.Delete(&productRecord{}, id).Error
	})
	if err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, perrors.NewStorage("delete product", err)
	}
	p := rec.toProduct()
	return &p, nil
}

func toProducts(recs []productRecord) []db.Product {
	products := make([]db.Product, len(recs))
	for i := range recs {
		products[i] = recs[i].toProduct()
	}
	return products
}
