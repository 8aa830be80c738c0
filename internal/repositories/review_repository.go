package repository

import (
	"context"
	"sync"

	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
)

type ReviewRepository interface {
	ListReviewsByProduct(ctx context.Context, productID int) ([]models.Review, error)
	CreateReview(ctx context.Context, review *models.Review) error
}

type memoryReviewRepository struct {
	mu      sync.RWMutex
	reviews []models.Review
}

// NewMemoryReviewRepo starts from the seeded reviews of the wedding arch.
func NewMemoryReviewRepo() ReviewRepository {
	return &memoryReviewRepository{reviews: seedReviews()}
}

func (r *memoryReviewRepository) ListReviewsByProduct(ctx context.Context, productID int) ([]models.Review, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := make([]models.Review, 0)

	for _, review := range r.reviews {
		if review.ProductID == productID {
			reviews = append(reviews, review)
		}
	}

	return reviews, nil
}

func (r *memoryReviewRepository) CreateReview(ctx context.Context, review *models.Review) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	r.reviews = append(r.reviews, *review)
	r.mu.Unlock()

	return nil
}

func seedReviews() []models.Review {
	return []models.Review{
		{
			ID:         "1",
			ProductID:  1,
			UserID:     "user1",
			UserName:   "Sarah Johnson",
			UserAvatar: "https://images.unsplash.com/photo-1494790108755-2616b612b5bc?w=150&h=150&fit=crop",
			Rating:     5,
			Title:      "Perfect for our outdoor wedding!",
			Comment:    "This arch was absolutely stunning and exactly what we needed for our garden wedding. The setup was professional and the quality was excellent. Our guests couldn't stop complimenting it!",
			Date:       "2024-09-15",
			EventType:  "Wedding",
			Helpful:    12,
			Verified:   true,
		},
		{
			ID:         "2",
			ProductID:  1,
			UserID:     "user2",
			UserName:   "Michael Chen",
			UserAvatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop",
			Rating:     4,
			Title:      "Great quality, minor setup issues",
			Comment:    "The arch itself is beautiful and well-made. The flowers were fresh and the design was elegant. Had a small delay with setup but the team resolved it quickly.",
			Date:       "2024-08-22",
			EventType:  "Anniversary",
			Helpful:    8,
			Verified:   true,
		},
		{
			ID:         "3",
			ProductID:  1,
			UserID:     "user3",
			UserName:   "Emily Rodriguez",
			UserAvatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop",
			Rating:     5,
			Title:      "Exceeded expectations!",
			Comment:    "Absolutely gorgeous! The photos came out amazing and it was the perfect backdrop for our ceremony. Highly recommend for any outdoor event.",
			Date:       "2024-07-10",
			EventType:  "Wedding",
			Helpful:    15,
			Verified:   false,
		},
	}
}
