package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unicart/unicart/internal/models"
)

func TestGetProducts_ExcludesInactiveAndPaginates(t *testing.T) {
	env := newTestEnv(t)
	category := env.seedCategory("Gadgets", "gadgets", 0, true)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	env.seedProduct(models.Product{
		Name: "Old", Slug: "old", Description: "d", Price: 10,
		TrackQuantity: true, IsActive: true, CategoryID: category.ID,
		CreatedAt: base,
	})
	env.seedProduct(models.Product{
		Name: "New", Slug: "new", Description: "d", Price: 10,
		TrackQuantity: true, IsActive: true, CategoryID: category.ID,
		CreatedAt: base.Add(time.Hour),
	})
	env.seedProduct(models.Product{
		Name: "Hidden", Slug: "hidden", Description: "d", Price: 10,
		TrackQuantity: true, IsActive: false, CategoryID: category.ID,
		CreatedAt: base.Add(2 * time.Hour),
	})

	rec := env.do(http.MethodGet, "/api/products", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := env.decode(rec)
	products := resp["products"].([]any)
	require.Len(t, products, 2)
	assert.Equal(t, "New", products[0].(map[string]any)["name"])
	assert.Equal(t, "Old", products[1].(map[string]any)["name"])

	pagination := resp["pagination"].(map[string]any)
	assert.EqualValues(t, 1, pagination["page"])
	assert.EqualValues(t, 20, pagination["limit"])
	assert.EqualValues(t, 2, pagination["total"])
	assert.EqualValues(t, 1, pagination["totalPages"])

	rec = env.do(http.MethodGet, "/api/products?page=2&limit=1", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp = env.decode(rec)
	products = resp["products"].([]any)
	require.Len(t, products, 1)
	assert.Equal(t, "Old", products[0].(map[string]any)["name"])
	assert.EqualValues(t, 2, resp["pagination"].(map[string]any)["totalPages"])
}

func TestGetProducts_Filters(t *testing.T) {
	env := newTestEnv(t)
	gadgets := env.seedCategory("Gadgets", "gadgets", 0, true)
	books := env.seedCategory("Books", "books", 1, true)
	hidden := env.seedCategory("Hidden", "hidden", 2, false)

	env.seedProduct(models.Product{
		Name: "Featured Gadget", Slug: "featured-gadget", Description: "d", Price: 10,
		TrackQuantity: true, IsActive: true, IsFeatured: true, CategoryID: gadgets.ID,
	})
	env.seedProduct(models.Product{
		Name: "Plain Gadget", Slug: "plain-gadget", Description: "d", Price: 10,
		TrackQuantity: true, IsActive: true, CategoryID: gadgets.ID,
	})
	env.seedProduct(models.Product{
		Name: "Novel", Slug: "novel", Description: "d", Price: 10,
		TrackQuantity: true, IsActive: true, CategoryID: books.ID,
	})
	env.seedProduct(models.Product{
		Name: "Hidden Category Item", Slug: "hidden-item", Description: "d", Price: 10,
		TrackQuantity: true, IsActive: true, CategoryID: hidden.ID,
	})

	rec := env.do(http.MethodGet, "/api/products?featured=true", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	products := env.decode(rec)["products"].([]any)
	require.Len(t, products, 1)
	assert.Equal(t, "Featured Gadget", products[0].(map[string]any)["name"])

	rec = env.do(http.MethodGet, "/api/products?category=gadgets", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, env.decode(rec)["products"], 2)

	// A category that exists but is inactive hides its products from the
	// category filter.
	rec = env.do(http.MethodGet, "/api/products?category=hidden", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, env.decode(rec)["products"], 0)
}

func TestGetProduct_DetailAndRating(t *testing.T) {
	env := newTestEnv(t)
	category := env.seedCategory("Gadgets", "gadgets", 0, true)
	product := env.seedProduct(models.Product{
		Name: "Widget", Slug: "widget", Description: "a widget", Price: 10,
		TrackQuantity: true, IsActive: true, CategoryID: category.ID,
	})

	reviewer, _ := env.createUser("reviewer@example.com", models.RoleCustomer, true)
	for _, rating := range []int{4, 5, 5} {
		require.NoError(t, env.DB.Create(&models.Review{
			ProductID: product.ID,
			UserID:    reviewer.ID,
			Rating:    rating,
		}).Error)
	}

	rec := env.do(http.MethodGet, "/api/products/"+product.ID.String(), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	detail := env.decode(rec)["product"].(map[string]any)
	assert.Equal(t, "Widget", detail["name"])
	assert.Equal(t, "gadgets", detail["category"].(map[string]any)["slug"])
	assert.EqualValues(t, 3, detail["reviewsCount"])
	// (4+5+5)/3 = 4.666..., rounded to one decimal.
	assert.EqualValues(t, 4.7, detail["rating"])
	assert.Equal(t, "reviewer@example.com", detail["reviews"].([]any)[0].(map[string]any)["user"].(map[string]any)["email"])
}

func TestGetProduct_NotFoundCases(t *testing.T) {
	env := newTestEnv(t)
	category := env.seedCategory("Gadgets", "gadgets", 0, true)
	inactive := env.seedProduct(models.Product{
		Name: "Ghost", Slug: "ghost", Description: "d", Price: 10,
		TrackQuantity: true, IsActive: false, CategoryID: category.ID,
	})

	for _, path := range []string{
		"/api/products/" + uuid.NewString(),
		"/api/products/" + inactive.ID.String(),
		"/api/products/not-a-uuid",
	} {
		rec := env.do(http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, "Product not found", env.decode(rec)["error"])
	}
}

func TestGetCategories_OrderedWithLiveCounts(t *testing.T) {
	env := newTestEnv(t)
	second := env.seedCategory("Second", "second", 2, true)
	first := env.seedCategory("First", "first", 1, true)
	env.seedCategory("Inactive", "inactive", 0, false)

	env.seedProduct(models.Product{
		Name: "A", Slug: "a", Description: "d", Price: 10,
		TrackQuantity: true, IsActive: true, CategoryID: first.ID,
	})
	env.seedProduct(models.Product{
		Name: "B", Slug: "b", Description: "d", Price: 10,
		TrackQuantity: true, IsActive: false, CategoryID: first.ID,
	})
	_ = second

	rec := env.do(http.MethodGet, "/api/categories", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	categories := env.decode(rec)["categories"].([]any)
	require.Len(t, categories, 2)

	assert.Equal(t, "first", categories[0].(map[string]any)["slug"])
	assert.EqualValues(t, 1, categories[0].(map[string]any)["productCount"])
	assert.Equal(t, "second", categories[1].(map[string]any)["slug"])
	assert.EqualValues(t, 0, categories[1].(map[string]any)["productCount"])
}

func TestSearchProducts_Unconfigured(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/products/search?q=widget", nil, "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Search is not available", env.decode(rec)["error"])

	rec = env.do(http.MethodGet, "/api/products/search", nil, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
