package repository

import (
	"fmt"
	"time"

	"storefront/internal/models"
)

// SeedDemo fills r with a small catalog for local development: marketplace
// products, open, scheduled and closed auctions, and the home page promotions.
func SeedDemo(r *MemoryRepo, now time.Time) {
	categories := []models.Category{
		{CategoriesID: 1, Name: "Electronics", Icon: "cpu"},
		{CategoriesID: 2, Name: "Fashion", Icon: "shirt"},
		{CategoriesID: 3, Name: "Collectibles", Icon: "gem"},
	}
	for _, c := range categories {
		r.AddCategory(c)
	}
	phones := int64(1)
	r.AddCategory(models.Category{CategoriesID: 4, Name: "Phones", Icon: "phone", ParentID: &phones})

	market := []struct {
		id, title, category string
		price               float64
	}{
		{"prod-headphones", "Wireless Headphones", "Electronics", 129.99},
		{"prod-sneakers", "Running Sneakers", "Fashion", 89.50},
		{"prod-phone", "Refurbished Smartphone", "Electronics/Phones", 349.00},
		{"prod-jacket", "Denim Jacket", "Fashion", 64.00},
	}
	for i, m := range market {
		r.AddProduct(models.Product{
			ProductID:   m.id,
			Title:       m.title,
			Description: fmt.Sprintf("%s in great condition", m.title),
			Price:       m.price,
			Category:    m.category,
			UID:         "seller-demo",
			Status:      "active",
			CreatedAt:   now.Add(-time.Duration(i) * time.Hour),
		}, fmt.Sprintf("https://img.example.com/%s/1.jpg", m.id), fmt.Sprintf("https://img.example.com/%s/2.jpg", m.id))
	}

	auctions := []struct {
		id, title, category string
		start               float64
		opensIn, closesIn   time.Duration
	}{
		{"auc-watch", "Vintage Watch", "Collectibles", 90, -2 * time.Hour, 3 * time.Hour},
		{"auc-camera", "Film Camera", "Electronics", 45, -30 * time.Minute, 26 * time.Hour},
		{"auc-coin", "Silver Coin Set", "Collectibles", 120, time.Hour, 48 * time.Hour},
		{"auc-guitar", "Acoustic Guitar", "Collectibles", 200, -72 * time.Hour, -time.Hour},
	}
	for _, a := range auctions {
		productID := "prod-" + a.id
		r.AddProduct(models.Product{
			ProductID:   productID,
			Title:       a.title,
			Description: fmt.Sprintf("%s, auction only", a.title),
			Price:       a.start,
			Category:    a.category,
			UID:         "seller-demo",
			IsAuction:   true,
			Status:      "active",
			CreatedAt:   now.Add(a.opensIn),
		}, fmt.Sprintf("https://img.example.com/%s/1.jpg", productID))
		r.AddAuction(models.Auction{
			AuctionID:  a.id,
			ProductID:  productID,
			StartPrice: a.start,
			StartTime:  now.Add(a.opensIn),
			EndTime:    now.Add(a.closesIn),
		})
	}

	r.AddBanner(models.Banner{BannerID: 1, ImageURL: "https://img.example.com/banners/sale.jpg", LinkURL: "/category/fashion", Priority: 1, Active: true})
	r.AddBanner(models.Banner{BannerID: 2, ImageURL: "https://img.example.com/banners/auctions.jpg", LinkURL: "/auctions", Priority: 2, Active: true})
	r.AddBanner(models.Banner{BannerID: 3, ImageURL: "https://img.example.com/banners/old.jpg", LinkURL: "/", Priority: 0, Active: false})

	r.AddFlashDeal(1, "prod-headphones", 25)
	r.AddFlashDeal(2, "prod-jacket", 40)

	r.AddBestSeller(1, "prod-sneakers")
	r.AddBestSeller(2, "prod-headphones")
	r.AddBestSeller(3, "prod-phone")
}
