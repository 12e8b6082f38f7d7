package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/unicart/unicart/internal/logging"
	"github.com/unicart/unicart/internal/models"
	"github.com/unicart/unicart/internal/repo"
	"github.com/unicart/unicart/internal/search"
	"github.com/unicart/unicart/internal/service"
	"github.com/unicart/unicart/internal/transport"
	"github.com/unicart/unicart/internal/util"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_products")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	if page < 1 {
		page = 1
	}
	offset, limit := util.Calculate(page, util.ParseIntDefault(c.QueryParam("limit"), util.DefaultPageSize))

	filter := repo.ProductFilter{
		Featured:     c.QueryParam("featured") == "true",
		CategorySlug: c.QueryParam("category"),
	}

	items, total, err := h.Svc.ListProducts(ctx, filter, offset, limit)
	if err != nil {
		l.Error("get_products_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Internal server error")
	}

	views := make([]transport.ProductListItem, len(items))
	for i := range items {
		views[i] = transport.NewProductListItem(&items[i])
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"products": views,
		"pagination": transport.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + int64(limit) - 1) / int64(limit),
		},
	})
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_product")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// A malformed id cannot name a product; indistinguishable from absent.
		return respondError(c, http.StatusNotFound, "Product not found")
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_product_not_found", "status", 404, "product_id", id)
			return respondError(c, http.StatusNotFound, "Product not found")
		}
		l.Error("get_product_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"product": productDetail(product),
	})
}

func (h *CatalogHTTP) GetCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_categories")

	categories, err := h.Svc.ListCategories(ctx)
	if err != nil {
		l.Error("get_categories_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":    true,
		"categories": categories,
	})
}

func (h *CatalogHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.search_products")

	q := c.QueryParam("q")
	if q == "" {
		return respondError(c, http.StatusBadRequest, "Query parameter q is required")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	offset, limit := util.Calculate(page, util.ParseIntDefault(c.QueryParam("limit"), util.DefaultPageSize))

	total, docs, err := h.Svc.SearchProducts(ctx, q, offset, limit)
	if err != nil {
		if errors.Is(err, search.ErrUnavailable) {
			return respondError(c, http.StatusServiceUnavailable, "Search is not available")
		}
		l.Error("search_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"total":    total,
		"products": docs,
	})
}

// productDetail is the full single-product payload: ordered images, active
// variants, reviews with reviewer profiles and the derived rating.
func productDetail(p *models.Product) map[string]any {
	reviews := make([]map[string]any, len(p.Reviews))
	for i, r := range p.Reviews {
		reviews[i] = map[string]any{
			"id":        r.ID,
			"rating":    r.Rating,
			"title":     r.Title,
			"comment":   r.Comment,
			"createdAt": r.CreatedAt,
			"user": map[string]any{
				"id":        r.User.ID,
				"firstName": r.User.FirstName,
				"lastName":  r.User.LastName,
				"email":     r.User.Email,
			},
		}
	}

	return map[string]any{
		"id":               p.ID,
		"name":             p.Name,
		"slug":             p.Slug,
		"description":      p.Description,
		"shortDescription": p.ShortDescription,
		"sku":              p.SKU,
		"brand":            p.Brand,
		"price":            p.Price,
		"comparePrice":     p.ComparePrice,
		"stockQuantity":    p.StockQuantity,
		"trackQuantity":    p.TrackQuantity,
		"isFeatured":       p.IsFeatured,
		"images":           p.Images,
		"category":         transport.NewCategoryRef(&p.Category),
		"variants":         p.Variants,
		"reviews":          reviews,
		"rating":           transport.Rating(p.Reviews),
		"reviewsCount":     len(p.Reviews),
		"createdAt":        p.CreatedAt,
		"updatedAt":        p.UpdatedAt,
	}
}
