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
	"github.com/unicart/unicart/internal/pricing"
	"github.com/unicart/unicart/internal/repo"
	"github.com/unicart/unicart/internal/transport"
)

type CartService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

// List returns the user's rows joined with live product data plus the
// summary derived from snapshot prices.
func (s *CartService) List(ctx context.Context, userID uuid.UUID) ([]models.CartItem, transport.CartSummary, error) {
	items, err := s.Repo.CartItems(ctx, userID)
	if err != nil {
		return nil, transport.CartSummary{}, err
	}

	lines := make([]pricing.Line, len(items))
	for i, item := range items {
		lines[i] = pricing.Line{Price: item.Price, Quantity: item.Quantity}
	}
	return items, pricing.Summarize(lines), nil
}

// Add validates against the live product and upserts the (user, product)
// row. The stock check uses the requested quantity only, not the sum with
// any existing row; re-adding never re-validates the new total.
func (s *CartService) Add(ctx context.Context, userID, productID uuid.UUID, qty int) (*models.CartItem, error) {
	if qty < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}

	product, err := s.Repo.ActiveProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product not found or inactive: %w", ErrNotFound)
		}
		return nil, err
	}

	if product.TrackQuantity && product.StockQuantity < qty {
		return nil, fmt.Errorf("insufficient stock: %w", ErrInsufficientStock)
	}

	if _, err := s.Repo.AddOrIncrement(ctx, userID, productID, qty, product.Price); err != nil {
		return nil, err
	}

	item, err := s.Repo.CartItemDetail(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if err := s.Producer.PublishEvent(ctx, events.TopicCartEvents, userID.String(), map[string]any{
		"type":      "cart.item_added",
		"userId":    userID,
		"productId": productID,
		"quantity":  qty,
	}); err != nil {
		logging.FromContext(ctx).Error("event publish error", "error", err)
	}

	return item, nil
}

// SetQuantity overwrites an existing row's quantity. Zero is a validation
// error, not an implicit removal, and the price snapshot stays untouched.
func (s *CartService) SetQuantity(ctx context.Context, userID, productID uuid.UUID, qty int) (*models.CartItem, error) {
	if qty < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}

	if _, err := s.Repo.SetQuantity(ctx, userID, productID, qty); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item not found: %w", ErrNotFound)
		}
		return nil, err
	}
	return s.Repo.CartItemDetail(ctx, userID, productID)
}

// Remove deletes the row; removing an absent row reports not-found rather
// than succeeding silently.
func (s *CartService) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	err := s.Repo.DeleteCartItem(ctx, userID, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("cart item not found: %w", ErrNotFound)
	}
	return err
}
