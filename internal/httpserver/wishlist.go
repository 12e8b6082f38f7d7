package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/unicart/unicart/internal/logging"
	mwauth "github.com/unicart/unicart/internal/middleware/auth"
	"github.com/unicart/unicart/internal/service"
	"github.com/unicart/unicart/internal/transport"
)

type WishlistHTTP struct {
	Svc *service.WishlistService
}

func (h *WishlistHTTP) GetWishlist(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.get")

	id, ok := mwauth.CurrentUser(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "authentication required")
	}

	items, err := h.Svc.List(ctx, id.UserID)
	if err != nil {
		l.Error("get_wishlist_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Internal server error")
	}

	views := make([]transport.WishlistItemView, len(items))
	for i := range items {
		views[i] = transport.NewWishlistItemView(&items[i])
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"items":   views,
	})
}

func (h *WishlistHTTP) AddToWishlist(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.add")

	id, ok := mwauth.CurrentUser(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "authentication required")
	}

	var req transport.AddToWishlistRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_wishlist_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if fields := transport.Validate(req); fields != nil {
		l.Warn("add_to_wishlist_error", "status", 400, "reason", "validation failed")
		return respondValidation(c, fields)
	}

	item, err := h.Svc.Add(ctx, id.UserID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("add_to_wishlist_error", "status", 404, "product_id", req.ProductID)
			return respondError(c, http.StatusNotFound, "Product not found or inactive")
		case errors.Is(err, service.ErrConflict):
			l.Warn("add_to_wishlist_error", "status", 409, "product_id", req.ProductID)
			return respondError(c, http.StatusConflict, "Product already in wishlist")
		default:
			l.Error("add_to_wishlist_error", "status", 500, "error", err)
			return respondError(c, http.StatusInternalServerError, "Internal server error")
		}
	}

	l.Info("wishlist item added", "product_id", req.ProductID)
	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"item":    transport.NewWishlistItemView(item),
	})
}

func (h *WishlistHTTP) DeleteWishlistItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.delete")

	id, ok := mwauth.CurrentUser(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "authentication required")
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return respondError(c, http.StatusNotFound, "Wishlist item not found")
	}

	if err := h.Svc.Remove(ctx, id.UserID, productID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_wishlist_error", "status", 404, "product_id", productID)
			return respondError(c, http.StatusNotFound, "Wishlist item not found")
		}
		l.Error("delete_wishlist_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Internal server error")
	}

	l.Info("wishlist item removed", "product_id", productID)
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Wishlist item removed successfully",
	})
}
