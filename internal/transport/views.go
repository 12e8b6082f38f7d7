package transport

import (
	"math"

	"github.com/unicart/unicart/internal/models"
)

func NewUserView(u *models.User) UserView {
	return UserView{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

// Rating is the derived aggregate: mean review rating rounded to one
// decimal, 0 when there are no reviews.
func Rating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return math.Round(avg*10) / 10
}

func primaryImage(images []models.ProductImage) (*string, *string) {
	if len(images) == 0 {
		return nil, nil
	}
	return &images[0].URL, images[0].Alt
}

func NewProductSummary(p *models.Product) ProductSummary {
	url, alt := primaryImage(p.Images)
	return ProductSummary{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Image:         url,
		ImageAlt:      alt,
	}
}

func NewCartItemView(item *models.CartItem) CartItemView {
	return CartItemView{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Price:     item.Price,
		Product:   NewProductSummary(&item.Product),
	}
}

func NewCategoryRef(c *models.Category) CategoryRef {
	return CategoryRef{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

func NewProductListItem(p *models.Product) ProductListItem {
	url, alt := primaryImage(p.Images)
	return ProductListItem{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Brand:            p.Brand,
		Price:            p.Price,
		ComparePrice:     p.ComparePrice,
		StockQuantity:    p.StockQuantity,
		IsFeatured:       p.IsFeatured,
		Image:            url,
		ImageAlt:         alt,
		Category:         NewCategoryRef(&p.Category),
		Rating:           Rating(p.Reviews),
		ReviewsCount:     len(p.Reviews),
		CreatedAt:        p.CreatedAt,
	}
}

func NewWishlistItemView(item *models.WishlistItem) WishlistItemView {
	p := &item.Product
	url, alt := primaryImage(p.Images)
	return WishlistItemView{
		ID:        item.ID,
		ProductID: item.ProductID,
		CreatedAt: item.CreatedAt,
		Product: WishlistProductView{
			ID:               p.ID,
			Name:             p.Name,
			Slug:             p.Slug,
			Description:      p.Description,
			ShortDescription: p.ShortDescription,
			Brand:            p.Brand,
			Price:            p.Price,
			ComparePrice:     p.ComparePrice,
			StockQuantity:    p.StockQuantity,
			IsFeatured:       p.IsFeatured,
			Image:            url,
			ImageAlt:         alt,
			Category:         NewCategoryRef(&p.Category),
			Rating:           Rating(p.Reviews),
			ReviewsCount:     len(p.Reviews),
		},
	}
}
