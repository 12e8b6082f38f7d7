package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/unicart/unicart/internal/logging"
	"github.com/unicart/unicart/internal/models"
	"github.com/unicart/unicart/internal/service"
	"github.com/unicart/unicart/internal/transport"
)

// Admin product CRUD. Routes are mounted behind RequireAdmin; handlers do
// not re-check the role.

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if fields := transport.Validate(req); fields != nil {
		l.Warn("create_product_error", "status", 400, "reason", "validation failed")
		return respondValidation(c, fields)
	}

	product := models.Product{
		Name:             req.Name,
		Slug:             req.Slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		SKU:              req.SKU,
		Brand:            req.Brand,
		Price:            req.Price,
		ComparePrice:     req.ComparePrice,
		StockQuantity:    req.StockQuantity,
		TrackQuantity:    true,
		IsActive:         true,
		CategoryID:       req.CategoryID,
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

	if err := h.Svc.CreateProduct(ctx, &product); err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_product_error", "status", 400, "error", err)
			return respondError(c, http.StatusBadRequest, "Invalid product data")
		}
		l.Error("create_product_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Internal server error")
	}

	l.Info("product created", "product_id", product.ID)
	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"product": product,
	})
}

func (h *CatalogHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.update_product")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusNotFound, "Product not found")
	}

	var req transport.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_product_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if fields := transport.Validate(req); fields != nil {
		l.Warn("update_product_error", "status", 400, "reason", "validation failed")
		return respondValidation(c, fields)
	}

	product, err := h.Svc.UpdateProduct(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("update_product_error", "status", 404, "product_id", id)
			return respondError(c, http.StatusNotFound, "Product not found")
		case errors.Is(err, service.ErrValidation):
			l.Warn("update_product_error", "status", 400, "error", err)
			return respondError(c, http.StatusBadRequest, "Invalid product data")
		default:
			l.Error("update_product_error", "status", 500, "error", err)
			return respondError(c, http.StatusInternalServerError, "Internal server error")
		}
	}

	l.Info("product updated", "product_id", id)
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"product": product,
	})
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.delete_product")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusNotFound, "Product not found")
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_product_error", "status", 404, "product_id", id)
			return respondError(c, http.StatusNotFound, "Product not found")
		}
		l.Error("delete_product_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Internal server error")
	}

	l.Info("product deleted", "product_id", id)
	return c.NoContent(http.StatusNoContent)
}
