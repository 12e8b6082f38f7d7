package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/unicart/unicart/internal/models"
)

// ProductFilter narrows catalog reads. The active flag is not part of the
// filter: inactive products are unconditionally excluded.
type ProductFilter struct {
	Featured     bool
	CategorySlug string
}

func (r *GormRepo) ListProducts(ctx context.Context, filter ProductFilter, offset, limit int) ([]models.Product, int64, error) {
	base := r.DB.WithContext(ctx).Model(&models.Product{}).Where("products.is_active = ?", true)
	if filter.Featured {
		base = base.Where("products.is_featured = ?", true)
	}
	if filter.CategorySlug != "" {
		base = base.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ? AND categories.is_active = ?", filter.CategorySlug, true)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Product
	err := base.Session(&gorm.Session{}).
		Preload("Images", "is_primary = ?", true).
		Preload("Category").
		Preload("Reviews").
		Order("products.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ProductByID loads the full detail regardless of the active flag; hiding
// inactive products is the service's policy.
func (r *GormRepo) ProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.DB.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Category").
		Preload("Variants", "is_active = ?", true).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Reviews.User").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ActiveProductByID is the lookup used by cart/wishlist adds: an inactive
// product is indistinguishable from a missing one.
func (r *GormRepo) ActiveProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.DB.WithContext(ctx).
		Preload("Images", "is_primary = ?", true).
		Where("id = ? AND is_active = ?", id, true).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormRepo) CountActiveProducts(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("category_id = ? AND is_active = ?", categoryID, true).
		Count(&count).Error
	return count, err
}

func (r *GormRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Create(product).Error
}

func (r *GormRepo) SaveProduct(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Save(product).Error
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
