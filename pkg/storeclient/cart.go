package storeclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/unicart/unicart/internal/transport"
)

// CartStore mirrors the server-side cart. Items and Summary hold the last
// confirmed state: a failed mutation leaves them untouched, a successful one
// replaces them wholesale from a fresh fetch.
type CartStore struct {
	client *Client

	Items   []transport.CartItemView
	Summary transport.CartSummary
}

func NewCartStore(client *Client) *CartStore {
	return &CartStore{client: client}
}

// Fetch refreshes the mirror. Without a token it resolves to an empty cart
// rather than a 401: an anonymous visitor simply has nothing in the cart yet.
func (s *CartStore) Fetch(ctx context.Context) error {
	if s.client.Token() == "" {
		s.Items = nil
		s.Summary = transport.CartSummary{}
		return nil
	}

	var resp transport.CartResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/api/cart", nil, &resp); err != nil {
		return err
	}
	s.Items = resp.Items
	s.Summary = resp.Summary
	return nil
}

func (s *CartStore) Add(ctx context.Context, productID uuid.UUID, quantity int) error {
	req := transport.AddToCartRequest{ProductID: productID, Quantity: &quantity}
	if err := s.client.doJSON(ctx, http.MethodPost, "/api/cart", req, nil); err != nil {
		return err
	}
	return s.Fetch(ctx)
}

func (s *CartStore) UpdateQuantity(ctx context.Context, productID uuid.UUID, quantity int) error {
	req := transport.UpdateCartRequest{Quantity: quantity}
	path := fmt.Sprintf("/api/cart/%s", productID)
	if err := s.client.doJSON(ctx, http.MethodPut, path, req, nil); err != nil {
		return err
	}
	return s.Fetch(ctx)
}

func (s *CartStore) Remove(ctx context.Context, productID uuid.UUID) error {
	path := fmt.Sprintf("/api/cart/%s", productID)
	if err := s.client.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}
	return s.Fetch(ctx)
}

// Clear removes items one by one. Not atomic: a mid-way failure leaves the
// remaining items in the cart and in the mirror.
func (s *CartStore) Clear(ctx context.Context) error {
	for _, item := range s.Items {
		if err := s.Remove(ctx, item.ProductID); err != nil {
			return err
		}
	}
	return nil
}

func (s *CartStore) Count() int {
	n := 0
	for _, item := range s.Items {
		n += item.Quantity
	}
	return n
}
