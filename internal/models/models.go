package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
	RoleVendor   = "VENDOR"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"      json:"id"`
	Email        string     `gorm:"uniqueIndex;not null"      json:"email"`
	PasswordHash string     `gorm:"not null"                  json:"-"`
	FirstName    *string    `json:"firstName"`
	LastName     *string    `json:"lastName"`
	Role         string     `gorm:"not null;default:CUSTOMER" json:"role"`
	IsActive     bool       `gorm:"not null;default:true"     json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"  json:"id"`
	Name        string    `gorm:"not null"              json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null"  json:"slug"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Icon        *string   `json:"icon"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	SortOrder   int       `gorm:"not null;default:0"    json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Product struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"     json:"id"`
	Name              string    `gorm:"not null"                 json:"name"`
	Slug              string    `gorm:"uniqueIndex;not null"     json:"slug"`
	Description       string    `gorm:"not null"                 json:"description"`
	ShortDescription  *string   `json:"shortDescription"`
	SKU               *string   `gorm:"column:sku"               json:"sku"`
	Brand             *string   `json:"brand"`
	Price             float64   `gorm:"not null"                 json:"price"`
	ComparePrice      *float64  `json:"comparePrice"`
	StockQuantity     int       `gorm:"not null;default:0"       json:"stockQuantity"`
	LowStockThreshold int       `gorm:"not null;default:5"       json:"lowStockThreshold"`
	TrackQuantity     bool      `gorm:"not null;default:true"    json:"trackQuantity"`
	IsActive          bool      `gorm:"not null;default:true"    json:"isActive"`
	IsFeatured        bool      `gorm:"not null;default:false"   json:"isFeatured"`
	CategoryID        uuid.UUID `gorm:"type:uuid;index;not null" json:"categoryId"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`

	Category Category         `json:"category"`
	Images   []ProductImage   `json:"images"`
	Variants []ProductVariant `json:"variants"`
	Reviews  []Review         `json:"reviews"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type ProductImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"     json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null" json:"productId"`
	URL       string    `gorm:"not null"                 json:"url"`
	Alt       *string   `json:"alt"`
	SortOrder int       `gorm:"not null;default:0"       json:"sortOrder"`
	IsPrimary bool      `gorm:"not null;default:false"   json:"isPrimary"`
}

func (i *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

type ProductVariant struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"     json:"id"`
	ProductID     uuid.UUID `gorm:"type:uuid;index;not null" json:"productId"`
	Name          string    `gorm:"not null"                 json:"name"`
	SKU           *string   `gorm:"column:sku"               json:"sku"`
	Price         *float64  `json:"price"`
	StockQuantity int       `gorm:"not null;default:0"       json:"stockQuantity"`
	Attributes    *string   `json:"attributes"`
	IsActive      bool      `gorm:"not null;default:true"    json:"isActive"`
}

func (v *ProductVariant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"     json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null" json:"productId"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	Rating    int       `gorm:"not null;check:rating>=1 AND rating<=5" json:"rating"`
	Title     *string   `json:"title"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`

	User User `json:"user"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// CartItem keeps at most one row per (user, product). Price is the snapshot
// taken when the row was created or last incremented, not the live price.
type CartItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"                                 json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_user_product;not null" json:"userId"`
	ProductID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_user_product;not null" json:"productId"`
	Quantity  int       `gorm:"not null;default:1;check:quantity>0"                  json:"quantity"`
	Price     float64   `gorm:"not null"                                             json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Product Product `json:"product"`
}

func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (CartItem) TableName() string {
	return "cart_items"
}

type WishlistItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"                                     json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_wishlist_user_product;not null" json:"userId"`
	ProductID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_wishlist_user_product;not null" json:"productId"`
	CreatedAt time.Time `json:"createdAt"`

	Product Product `json:"product"`
}

func (w *WishlistItem) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}

// All lists every model for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&Category{},
		&Product{},
		&ProductImage{},
		&ProductVariant{},
		&Review{},
		&CartItem{},
		&WishlistItem{},
	}
}
