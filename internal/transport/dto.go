package transport

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email     string  `json:"email"     validate:"required,email"`
	Password  string  `json:"password"  validate:"required,min=6"`
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName"  validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	User    UserView `json:"user"`
}

type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FirstName *string    `json:"firstName"`
	LastName  *string    `json:"lastName"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
}

// AddToCartRequest leaves Quantity optional; an omitted quantity means 1,
// an explicit zero is a validation failure.
type AddToCartRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  *int      `json:"quantity"  validate:"omitempty,gte=1"`
}

type UpdateCartRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

type AddToWishlistRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
}

type CreateProductRequest struct {
	Name             string    `json:"name"             validate:"required"`
	Slug             string    `json:"slug"             validate:"required"`
	Description      string    `json:"description"      validate:"required"`
	ShortDescription *string   `json:"shortDescription"`
	SKU              *string   `json:"sku"`
	Brand            *string   `json:"brand"`
	Price            float64   `json:"price"            validate:"required,gt=0"`
	ComparePrice     *float64  `json:"comparePrice"     validate:"omitempty,gt=0"`
	StockQuantity    int       `json:"stockQuantity"    validate:"gte=0"`
	TrackQuantity    *bool     `json:"trackQuantity"`
	IsActive         *bool     `json:"isActive"`
	IsFeatured       *bool     `json:"isFeatured"`
	CategoryID       uuid.UUID `json:"categoryId"       validate:"required"`
}

type UpdateProductRequest struct {
	Name             *string    `json:"name"`
	Slug             *string    `json:"slug"`
	Description      *string    `json:"description"`
	ShortDescription *string    `json:"shortDescription"`
	SKU              *string    `json:"sku"`
	Brand            *string    `json:"brand"`
	Price            *float64   `json:"price"         validate:"omitempty,gt=0"`
	ComparePrice     *float64   `json:"comparePrice"  validate:"omitempty,gt=0"`
	StockQuantity    *int       `json:"stockQuantity" validate:"omitempty,gte=0"`
	TrackQuantity    *bool      `json:"trackQuantity"`
	IsActive         *bool      `json:"isActive"`
	IsFeatured       *bool      `json:"isFeatured"`
	CategoryID       *uuid.UUID `json:"categoryId"`
}

// ProductSummary is the minimal live-product projection attached to cart rows.
type ProductSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stockQuantity"`
	Image         *string   `json:"image"`
	ImageAlt      *string   `json:"imageAlt"`
}

// CartItemView pairs the stored snapshot price with the live product data;
// the two prices may legitimately differ.
type CartItemView struct {
	ID        uuid.UUID      `json:"id"`
	ProductID uuid.UUID      `json:"productId"`
	Quantity  int            `json:"quantity"`
	Price     float64        `json:"price"`
	Product   ProductSummary `json:"product"`
}

type CartSummary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type CartResponse struct {
	Success bool           `json:"success"`
	Items   []CartItemView `json:"items"`
	Summary CartSummary    `json:"summary"`
}

type CategoryView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  *string   `json:"description"`
	Image        *string   `json:"image"`
	Icon         *string   `json:"icon"`
	ProductCount int64     `json:"productCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// ProductListItem is the catalog list projection with primary image and
// derived rating.
type ProductListItem struct {
	ID               uuid.UUID   `json:"id"`
	Name             string      `json:"name"`
	Slug             string      `json:"slug"`
	Description      string      `json:"description"`
	ShortDescription *string     `json:"shortDescription"`
	Brand            *string     `json:"brand"`
	Price            float64     `json:"price"`
	ComparePrice     *float64    `json:"comparePrice"`
	StockQuantity    int         `json:"stockQuantity"`
	IsFeatured       bool        `json:"isFeatured"`
	Image            *string     `json:"image"`
	ImageAlt         *string     `json:"imageAlt"`
	Category         CategoryRef `json:"category"`
	Rating           float64     `json:"rating"`
	ReviewsCount     int         `json:"reviewsCount"`
	CreatedAt        time.Time   `json:"createdAt"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

type WishlistProductView struct {
	ID               uuid.UUID   `json:"id"`
	Name             string      `json:"name"`
	Slug             string      `json:"slug"`
	Description      string      `json:"description"`
	ShortDescription *string     `json:"shortDescription"`
	Brand            *string     `json:"brand"`
	Price            float64     `json:"price"`
	ComparePrice     *float64    `json:"comparePrice"`
	StockQuantity    int         `json:"stockQuantity"`
	IsFeatured       bool        `json:"isFeatured"`
	Image            *string     `json:"image"`
	ImageAlt         *string     `json:"imageAlt"`
	Category         CategoryRef `json:"category"`
	Rating           float64     `json:"rating"`
	ReviewsCount     int         `json:"reviewsCount"`
}

type WishlistItemView struct {
	ID        uuid.UUID           `json:"id"`
	ProductID uuid.UUID           `json:"productId"`
	CreatedAt time.Time           `json:"createdAt"`
	Product   WishlistProductView `json:"product"`
}
