package httpserver

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unicart/unicart/internal/models"
)

func TestWishlist_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/wishlist", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "authentication required", env.decode(rec)["error"])

	rec = env.do(http.MethodPost, "/api/wishlist", nil, "not-a-token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid or expired token", env.decode(rec)["error"])
}

func TestAddToWishlist_DuplicateConflicts(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser("wish@example.com", models.RoleCustomer, true)
	product := env.seedCatalogProduct("Widget", "widget", 25, 10)

	rec := env.do(http.MethodPost, "/api/wishlist", map[string]any{"productId": product.ID}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	item := env.decode(rec)["item"].(map[string]any)
	assert.Equal(t, product.ID.String(), item["productId"])
	assert.Equal(t, "Widget", item["product"].(map[string]any)["name"])

	rec = env.do(http.MethodPost, "/api/wishlist", map[string]any{"productId": product.ID}, token)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Product already in wishlist", env.decode(rec)["error"])
}

func TestAddToWishlist_MissingOrInactiveProduct(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser("wishmissing@example.com", models.RoleCustomer, true)

	category := env.seedCategory("Hidden", "hidden", 0, true)
	inactive := env.seedProduct(models.Product{
		Name:          "Ghost",
		Slug:          "ghost",
		Description:   "inactive",
		Price:         5,
		StockQuantity: 10,
		TrackQuantity: true,
		IsActive:      false,
		CategoryID:    category.ID,
	})

	for _, productID := range []uuid.UUID{uuid.New(), inactive.ID} {
		rec := env.do(http.MethodPost, "/api/wishlist", map[string]any{"productId": productID}, token)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Product not found or inactive", env.decode(rec)["error"])
	}
}

func TestGetWishlist_ReturnsProductProjection(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser("wishlist@example.com", models.RoleCustomer, true)

	category := env.seedCategory("Gadgets", "gadgets", 0, true)
	product := env.seedProduct(models.Product{
		Name:          "Widget",
		Slug:          "widget",
		Description:   "a widget",
		Price:         25,
		StockQuantity: 10,
		TrackQuantity: true,
		IsActive:      true,
		CategoryID:    category.ID,
	})
	require.NoError(t, env.DB.Create(&models.ProductImage{
		ProductID: product.ID,
		URL:       "https://img.example.com/widget-side.jpg",
		SortOrder: 1,
	}).Error)
	require.NoError(t, env.DB.Create(&models.ProductImage{
		ProductID: product.ID,
		URL:       "https://img.example.com/widget-front.jpg",
		SortOrder: 2,
		IsPrimary: true,
	}).Error)

	rec := env.do(http.MethodPost, "/api/wishlist", map[string]any{"productId": product.ID}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodGet, "/api/wishlist", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	items := env.decode(rec)["items"].([]any)
	require.Len(t, items, 1)

	view := items[0].(map[string]any)["product"].(map[string]any)
	assert.Equal(t, "Widget", view["name"])
	assert.EqualValues(t, 25, view["price"])
	assert.Equal(t, "gadgets", view["category"].(map[string]any)["slug"])
	// The primary image wins over lower sort orders.
	assert.Equal(t, "https://img.example.com/widget-front.jpg", view["image"])
}

func TestDeleteWishlistItem(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser("wishdelete@example.com", models.RoleCustomer, true)
	product := env.seedCatalogProduct("Widget", "widget", 25, 10)

	rec := env.do(http.MethodPost, "/api/wishlist", map[string]any{"productId": product.ID}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodDelete, "/api/wishlist/"+product.ID.String(), nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Wishlist item removed successfully", env.decode(rec)["message"])

	rec = env.do(http.MethodDelete, "/api/wishlist/"+product.ID.String(), nil, token)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Wishlist item not found", env.decode(rec)["error"])
}
