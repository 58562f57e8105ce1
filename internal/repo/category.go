package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ReemOthm/home-decor-backend/internal/apperr"
	"github.com/ReemOthm/home-decor-backend/internal/models"
)

func (r *Repo) CreateCategory(ctx context.Context, c *models.Category) error {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Category{}).
		Where("slug = ?", c.Slug).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("a category with this name already exists")
	}
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *Repo) CategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category does not exist")
		}
		return nil, err
	}
	return &category, nil
}

func (r *Repo) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := r.DB.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category does not exist")
		}
		return nil, err
	}
	return &category, nil
}

func (r *Repo) ListCategories(ctx context.Context, offset, limit int) ([]models.Category, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var categories []models.Category
	if err := r.DB.WithContext(ctx).
		Order("created_at ASC").Offset(offset).Limit(limit).
		Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// ProductsByCategory is the one-directional lookup: the category row holds
// no product list of its own.
func (r *Repo) ProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *Repo) UpdateCategory(ctx context.Context, c *models.Category) error {
	return r.DB.WithContext(ctx).Save(c).Error
}

func (r *Repo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("category does not exist")
	}
	return nil
}
