package storeclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/unicart/unicart/internal/transport"
)

// WishlistStore mirrors the server-side wishlist with the same contract as
// CartStore: confirmed state only, replaced wholesale after each mutation.
type WishlistStore struct {
	client *Client

	Items []transport.WishlistItemView
}

func NewWishlistStore(client *Client) *WishlistStore {
	return &WishlistStore{client: client}
}

func (s *WishlistStore) Fetch(ctx context.Context) error {
	if s.client.Token() == "" {
		s.Items = nil
		return nil
	}

	var resp struct {
		Items []transport.WishlistItemView `json:"items"`
	}
	if err := s.client.doJSON(ctx, http.MethodGet, "/api/wishlist", nil, &resp); err != nil {
		return err
	}
	s.Items = resp.Items
	return nil
}

func (s *WishlistStore) Add(ctx context.Context, productID uuid.UUID) error {
	req := transport.AddToWishlistRequest{ProductID: productID}
	if err := s.client.doJSON(ctx, http.MethodPost, "/api/wishlist", req, nil); err != nil {
		return err
	}
	return s.Fetch(ctx)
}

func (s *WishlistStore) Remove(ctx context.Context, productID uuid.UUID) error {
	path := fmt.Sprintf("/api/wishlist/%s", productID)
	if err := s.client.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}
	return s.Fetch(ctx)
}

func (s *WishlistStore) Contains(productID uuid.UUID) bool {
	for _, item := range s.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

func (s *WishlistStore) Clear(ctx context.Context) error {
	for _, item := range s.Items {
		if err := s.Remove(ctx, item.ProductID); err != nil {
			return err
		}
	}
	return nil
}
