package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ReemOthm/home-decor-backend/internal/apperr"
	"github.com/ReemOthm/home-decor-backend/internal/models"
	"github.com/ReemOthm/home-decor-backend/internal/repo"
	"github.com/ReemOthm/home-decor-backend/internal/service/search"
	"github.com/ReemOthm/home-decor-backend/internal/util"
)

// ProductService keeps the search index in sync with catalog writes.
// Indexer may be nil; catalog writes then skip indexing.
type ProductService struct {
	Repo    *repo.Repo
	Indexer *search.Indexer
}

type ProductInput struct {
	Name        string
	Description string
	Image       string
	Quantity    int
	Price       float64
	CategoryID  uuid.UUID
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	if in.Name == "" {
		return nil, apperr.BadRequest("product name is required")
	}
	if in.Quantity < 0 {
		return nil, apperr.BadRequest("quantity cannot be negative")
	}
	if in.Price < 0 {
		return nil, apperr.BadRequest("price cannot be negative")
	}
	if _, err := s.Repo.CategoryByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Slug:        util.Slugify(in.Name),
		Image:       in.Image,
		Quantity:    in.Quantity,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
	}
	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	s.Indexer.IndexProduct(ctx, product)
	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.Repo.ProductByID(ctx, id)
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return s.Repo.ProductBySlug(ctx, slug)
}

func (s *ProductService) List(ctx context.Context, f repo.ProductFilter, page, size int) ([]models.Product, util.Meta, error) {
	f.Keyword = strings.ToLower(strings.TrimSpace(f.Keyword))
	offset, limit := util.Calculate(page, size)
	products, total, err := s.Repo.ListProducts(ctx, f, offset, limit)
	if err != nil {
		return nil, util.Meta{}, err
	}
	return products, util.MetaFor(page, size, total), nil
}

type ProductUpdate struct {
	Name        *string
	Description *string
	Image       *string
	Quantity    *int
	Price       *float64
	CategoryID  *uuid.UUID
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, in ProductUpdate) (*models.Product, error) {
	product, err := s.Repo.ProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil && *in.Name != "" {
		product.Name = *in.Name
		product.Slug = util.Slugify(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, apperr.BadRequest("quantity cannot be negative")
		}
		product.Quantity = *in.Quantity
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, apperr.BadRequest("price cannot be negative")
		}
		product.Price = *in.Price
	}
	if in.CategoryID != nil {
		if _, err := s.Repo.CategoryByID(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *in.CategoryID
		product.Category = nil
	}
	if err := s.Repo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	s.Indexer.IndexProduct(ctx, product)
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.Indexer.DeleteProduct(ctx, id.String())
	return nil
}

func (s *ProductService) Search(ctx context.Context, query string, page, size int) (int64, []models.Product, error) {
	if s.Indexer == nil {
		return 0, nil, apperr.BadRequest("search is not available")
	}
	from, limit := util.Calculate(page, size)
	return s.Indexer.Search(ctx, query, from, limit)
}
