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

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	id, ok := mwauth.CurrentUser(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "authentication required")
	}

	items, summary, err := h.Svc.List(ctx, id.UserID)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Internal server error")
	}

	views := make([]transport.CartItemView, len(items))
	for i := range items {
		views[i] = transport.NewCartItemView(&items[i])
	}

	return c.JSON(http.StatusOK, transport.CartResponse{
		Success: true,
		Items:   views,
		Summary: summary,
	})
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	id, ok := mwauth.CurrentUser(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "authentication required")
	}

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if fields := transport.Validate(req); fields != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "validation failed")
		return respondValidation(c, fields)
	}

	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	item, err := h.Svc.Add(ctx, id.UserID, req.ProductID, qty)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("add_to_cart_error", "status", 404, "product_id", req.ProductID)
			return respondError(c, http.StatusNotFound, "Product not found or inactive")
		case errors.Is(err, service.ErrInsufficientStock):
			l.Warn("add_to_cart_error", "status", 400, "reason", "insufficient stock", "product_id", req.ProductID)
			return respondError(c, http.StatusBadRequest, "Insufficient stock")
		case errors.Is(err, service.ErrValidation):
			l.Warn("add_to_cart_error", "status", 400, "error", err)
			return respondError(c, http.StatusBadRequest, "Quantity must be at least 1")
		default:
			l.Error("add_to_cart_error", "status", 500, "error", err)
			return respondError(c, http.StatusInternalServerError, "Internal server error")
		}
	}

	l.Info("cart item added", "product_id", req.ProductID, "quantity", qty)
	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"item":    transport.NewCartItemView(item),
	})
}

func (h *CartHTTP) UpdateCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")

	id, ok := mwauth.CurrentUser(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "authentication required")
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return respondError(c, http.StatusNotFound, "Cart item not found")
	}

	var req transport.UpdateCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if fields := transport.Validate(req); fields != nil {
		l.Warn("update_cart_error", "status", 400, "reason", "validation failed")
		return respondValidation(c, fields)
	}

	item, err := h.Svc.SetQuantity(ctx, id.UserID, productID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("update_cart_error", "status", 404, "product_id", productID)
			return respondError(c, http.StatusNotFound, "Cart item not found")
		case errors.Is(err, service.ErrValidation):
			l.Warn("update_cart_error", "status", 400, "error", err)
			return respondError(c, http.StatusBadRequest, "Quantity must be at least 1")
		default:
			l.Error("update_cart_error", "status", 500, "error", err)
			return respondError(c, http.StatusInternalServerError, "Internal server error")
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"item":    transport.NewCartItemView(item),
	})
}

func (h *CartHTTP) DeleteCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.delete")

	id, ok := mwauth.CurrentUser(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "authentication required")
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return respondError(c, http.StatusNotFound, "Cart item not found")
	}

	if err := h.Svc.Remove(ctx, id.UserID, productID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_cart_error", "status", 404, "product_id", productID)
			return respondError(c, http.StatusNotFound, "Cart item not found")
		}
		l.Error("delete_cart_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Internal server error")
	}

	l.Info("cart item removed", "product_id", productID)
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Cart item removed successfully",
	})
}
