package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/unicart/unicart/internal/hash"
	mwauth "github.com/unicart/unicart/internal/middleware/auth"
	"github.com/unicart/unicart/internal/models"
	"github.com/unicart/unicart/internal/repo"
	"github.com/unicart/unicart/internal/service"
	"github.com/unicart/unicart/internal/tokens"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	DB     *gorm.DB
	Repo   *repo.GormRepo
	Tokens *tokens.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	tokenSvc, err := tokens.NewService([]byte("test-jwt-secret"), tokens.DefaultTTL)
	require.NoError(t, err)

	r := &repo.GormRepo{DB: db}

	e := echo.New()
	Register(e, &Deps{
		Auth:     &AuthHTTP{Svc: &service.AuthService{Repo: r, Tokens: tokenSvc}},
		Catalog:  &CatalogHTTP{Svc: &service.CatalogService{Repo: r}},
		Cart:     &CartHTTP{Svc: &service.CartService{Repo: r}},
		Wishlist: &WishlistHTTP{Svc: &service.WishlistService{Repo: r}},
		Gate:     &mwauth.Gate{Tokens: tokenSvc, Repo: r},
	})

	return &testEnv{T: t, E: e, DB: db, Repo: r, Tokens: tokenSvc}
}

// do runs a request through the full router, middleware included.
func (env *testEnv) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	env.T.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(env.T, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) decode(rec *httptest.ResponseRecorder) map[string]any {
	env.T.Helper()

	var resp map[string]any
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (env *testEnv) createUser(email, role string, active bool) (models.User, string) {
	env.T.Helper()

	pwHash, err := hash.HashPassword("Secret123")
	require.NoError(env.T, err)

	user := models.User{
		Email:        email,
		PasswordHash: pwHash,
		Role:         role,
		IsActive:     active,
	}
	require.NoError(env.T, env.DB.Create(&user).Error)
	if !active {
		// The column default is true and zero-value bools are omitted on
		// insert, so deactivation has to be an explicit update.
		require.NoError(env.T, env.DB.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)
		user.IsActive = false
	}

	token, err := env.Tokens.Issue(user.ID, user.Email, user.Role)
	require.NoError(env.T, err)
	return user, token
}

func (env *testEnv) seedCategory(name, slug string, sortOrder int, active bool) models.Category {
	env.T.Helper()

	category := models.Category{
		Name:      name,
		Slug:      slug,
		IsActive:  active,
		SortOrder: sortOrder,
	}
	require.NoError(env.T, env.DB.Create(&category).Error)
	if !active {
		require.NoError(env.T, env.DB.Model(&models.Category{}).Where("id = ?", category.ID).Update("is_active", false).Error)
		category.IsActive = false
	}
	return category
}

func (env *testEnv) seedProduct(p models.Product) models.Product {
	env.T.Helper()

	active, track := p.IsActive, p.TrackQuantity
	require.NoError(env.T, env.DB.Create(&p).Error)

	updates := map[string]any{}
	if !active {
		updates["is_active"] = false
	}
	if !track {
		updates["track_quantity"] = false
	}
	if len(updates) > 0 {
		require.NoError(env.T, env.DB.Model(&models.Product{}).Where("id = ?", p.ID).Updates(updates).Error)
		p.IsActive, p.TrackQuantity = active, track
	}
	return p
}
