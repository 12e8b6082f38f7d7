package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/unicart/unicart/internal/events"
	"github.com/unicart/unicart/internal/logging"
	"github.com/unicart/unicart/internal/models"
	"github.com/unicart/unicart/internal/repo"
	"github.com/unicart/unicart/internal/search"
	"github.com/unicart/unicart/internal/transport"
)

type CatalogService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
	Search   *search.Index
}

func (s *CatalogService) ListProducts(ctx context.Context, filter repo.ProductFilter, offset, limit int) ([]models.Product, int64, error) {
	return s.Repo.ListProducts(ctx, filter, offset, limit)
}

// GetProduct hides inactive products: they 404 exactly like missing ones.
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.Repo.ProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product not found: %w", ErrNotFound)
		}
		return nil, err
	}
	if !product.IsActive {
		return nil, fmt.Errorf("product not found: %w", ErrNotFound)
	}
	return product, nil
}

// SearchProducts queries the search index; a nil index reports
// search.ErrUnavailable.
func (s *CatalogService) SearchProducts(ctx context.Context, query string, offset, limit int) (int64, []search.Doc, error) {
	return s.Search.Search(ctx, query, offset, limit)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]transport.CategoryView, error) {
	categories, err := s.Repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]transport.CategoryView, 0, len(categories))
	for _, c := range categories {
		count, err := s.Repo.CountActiveProducts(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, transport.CategoryView{
			ID:           c.ID,
			Name:         c.Name,
			Slug:         c.Slug,
			Description:  c.Description,
			Image:        c.Image,
			Icon:         c.Icon,
			ProductCount: count,
			CreatedAt:    c.CreatedAt,
			UpdatedAt:    c.UpdatedAt,
		})
	}
	return views, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.Price <= 0 {
		return fmt.Errorf("price must be positive: %w", ErrValidation)
	}
	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return err
	}
	s.afterWrite(ctx, product, "product.created")
	return nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, req transport.UpdateProductRequest) (*models.Product, error) {
	product, err := s.Repo.ProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product not found: %w", ErrNotFound)
		}
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Slug != nil {
		product.Slug = *req.Slug
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.ShortDescription != nil {
		product.ShortDescription = req.ShortDescription
	}
	if req.SKU != nil {
		product.SKU = req.SKU
	}
	if req.Brand != nil {
		product.Brand = req.Brand
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, fmt.Errorf("price must be positive: %w", ErrValidation)
		}
		product.Price = *req.Price
	}
	if req.ComparePrice != nil {
		product.ComparePrice = req.ComparePrice
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.TrackQuantity != nil {
		product.TrackQuantity = *req.TrackQuantity
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}

	if err := s.Repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	s.afterWrite(ctx, product, "product.updated")
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product not found: %w", ErrNotFound)
		}
		return err
	}

	l := logging.FromContext(ctx)
	if err := s.Search.Remove(ctx, id.String()); err != nil {
		l.Error("search index delete error", "product_id", id, "error", err)
	}
	if err := s.Producer.PublishEvent(ctx, events.TopicProductEvents, id.String(), map[string]any{
		"type":      "product.deleted",
		"productId": id,
	}); err != nil {
		l.Error("event publish error", "error", err)
	}
	return nil
}

// afterWrite keeps the search index and the event stream in sync with admin
// writes, best-effort.
func (s *CatalogService) afterWrite(ctx context.Context, product *models.Product, eventType string) {
	l := logging.FromContext(ctx)
	if err := s.Search.Put(ctx, product); err != nil {
		l.Error("search index error", "product_id", product.ID, "error", err)
	}
	if err := s.Producer.PublishEvent(ctx, events.TopicProductEvents, product.ID.String(), map[string]any{
		"type":      eventType,
		"productId": product.ID,
		"name":      product.Name,
	}); err != nil {
		l.Error("event publish error", "error", err)
	}
}
