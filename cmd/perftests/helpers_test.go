package perftests

import (
	"context"
	"fmt"
	"time"

	bidding "storefront/internal/biddingService"
	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/storage"
	"storefront/internal/store"
)

// setupRepo creates a repository and bidding service with numAuctions open auctions
func setupRepo(numAuctions int, startPrice float64) (*repository.MemoryRepo, *bidding.BiddingService) {
	repo := repository.NewMemoryRepo()
	svc := bidding.NewBiddingService(repo, 1)
	now := time.Now().UTC()
	for i := 0; i < numAuctions; i++ {
		productID := fmt.Sprintf("prod_%d", i)
		repo.AddProduct(models.Product{
			ProductID: productID,
			Title:     fmt.Sprintf("title_%d", i),
			Price:     startPrice,
			IsAuction: true,
			Status:    "active",
			CreatedAt: now,
		})
		repo.AddAuction(models.Auction{
			AuctionID:  auctionID(i),
			ProductID:  productID,
			StartPrice: startPrice,
			StartTime:  now.Add(-time.Hour),
			EndTime:    now.Add(24 * time.Hour),
		})
	}
	return repo, svc
}

func auctionID(i int) string {
	return fmt.Sprintf("auction_%d", i)
}

// bidder opens a signed-in client store over its own in-memory KV
func bidder(id string) *store.Store {
	st := store.Open(context.Background(), storage.NewMemoryKV(), store.Options{})
	st.SetSession(&models.Session{ID: id, Email: id + "@example.com", DisplayName: id})
	return st
}
