package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ReemOthm/home-decor-backend/internal/apperr"
	"github.com/ReemOthm/home-decor-backend/internal/models"
)

type ProductFilter struct {
	CategorySlug string
	Keyword      string
	MinPrice     *float64
	MaxPrice     *float64
}

func (r *Repo) CreateProduct(ctx context.Context, p *models.Product) error {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("slug = ?", p.Slug).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("a product with this name already exists")
	}
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *Repo) ProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Preload("Category").
		Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product does not exist")
		}
		return nil, err
	}
	return &product, nil
}

func (r *Repo) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Preload("Category").
		Where("slug = ?", slug).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product does not exist")
		}
		return nil, err
	}
	return &product, nil
}

func (r *Repo) ListProducts(ctx context.Context, f ProductFilter, offset, limit int) ([]models.Product, int64, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{})
	if f.CategorySlug != "" {
		q = q.Where("category_id IN (?)",
			r.DB.Model(&models.Category{}).Select("id").Where("slug = ?", f.CategorySlug))
	}
	if f.Keyword != "" {
		q = q.Where("lower(name) LIKE ?", "%"+f.Keyword+"%")
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var products []models.Product
	if err := q.Preload("Category").
		Order("created_at DESC").Offset(offset).Limit(limit).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *Repo) UpdateProduct(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Save(p).Error
}

func (r *Repo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("product does not exist")
	}
	return nil
}
