package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ReemOthm/home-decor-backend/internal/apperr"
	"github.com/ReemOthm/home-decor-backend/internal/models"
	"github.com/ReemOthm/home-decor-backend/internal/repo"
	"github.com/ReemOthm/home-decor-backend/internal/util"
)

type CategoryService struct {
	Repo *repo.Repo
}

func (s *CategoryService) Create(ctx context.Context, name, description string) (*models.Category, error) {
	if name == "" {
		return nil, apperr.BadRequest("category name is required")
	}
	category := &models.Category{
		Name:        name,
		Slug:        util.Slugify(name),
		Description: description,
	}
	if err := s.Repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, page, size int) ([]models.Category, util.Meta, error) {
	offset, limit := util.Calculate(page, size)
	categories, total, err := s.Repo.ListCategories(ctx, offset, limit)
	if err != nil {
		return nil, util.Meta{}, err
	}
	return categories, util.MetaFor(page, size, total), nil
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.Repo.CategoryBySlug(ctx, slug)
}

func (s *CategoryService) Products(ctx context.Context, slug string) ([]models.Product, error) {
	category, err := s.Repo.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.Repo.ProductsByCategory(ctx, category.ID)
}

func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, name, description *string) (*models.Category, error) {
	category, err := s.Repo.CategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != nil && *name != "" {
		category.Name = *name
		category.Slug = util.Slugify(*name)
	}
	if description != nil {
		category.Description = *description
	}
	if err := s.Repo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.Repo.DeleteCategory(ctx, id)
}
