package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/unicart/unicart/internal/models"
	"github.com/unicart/unicart/internal/repo"
)

type WishlistService struct {
	Repo *repo.GormRepo
}

func (s *WishlistService) List(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error) {
	return s.Repo.WishlistItems(ctx, userID)
}

// Add is strict set insertion: a product already present is a conflict, not
// an upsert.
func (s *WishlistService) Add(ctx context.Context, userID, productID uuid.UUID) (*models.WishlistItem, error) {
	product, err := s.Repo.ActiveProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product not found or inactive: %w", ErrNotFound)
		}
		return nil, err
	}

	exists, err := s.Repo.WishlistItemExists(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("product already in wishlist: %w", ErrConflict)
	}

	item := models.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.Repo.CreateWishlistItem(ctx, &item); err != nil {
		return nil, err
	}
	item.Product = *product
	return &item, nil
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	err := s.Repo.DeleteWishlistItem(ctx, userID, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("wishlist item not found: %w", ErrNotFound)
	}
	return err
}
