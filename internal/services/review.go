package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/papela-rentals/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/papela-rentals/internal/errors"
	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	repository "github.com/aaravmahajanofficial/papela-rentals/internal/repositories"
	"github.com/aaravmahajanofficial/papela-rentals/internal/utils"
	"github.com/google/uuid"
)

type ReviewService interface {
	Summary(ctx context.Context, productID int) (*models.ReviewSummary, error)
	Submit(ctx context.Context, identity *models.Identity, productID int, req *models.CreateReviewRequest) (*models.Review, error)
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	now         func() time.Time
}

func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, productRepo: productRepo, now: time.Now}
}

func (s *reviewService) Summary(ctx context.Context, productID int) (*models.ReviewSummary, error) {

	reviews, err := s.reviewRepo.ListReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, appErrors.InternalError("Failed to list reviews").WithError(err)
	}

	return Summarize(productID, reviews), nil
}

// Summarize computes the average rating (0 with no reviews) and the share
// of each star value from 5 down to 1.
func Summarize(productID int, reviews []models.Review) *models.ReviewSummary {

	summary := &models.ReviewSummary{
		ProductID:    productID,
		Reviews:      reviews,
		Distribution: make([]models.RatingBucket, 0, 5),
	}

	counts := make(map[int]int, 5)
	sum := 0

	for _, r := range reviews {
		counts[r.Rating]++
		sum += r.Rating
	}

	if len(reviews) > 0 {
		summary.AverageRating = float64(sum) / float64(len(reviews))
	}

	for star := 5; star >= 1; star-- {

		bucket := models.RatingBucket{Star: star, Count: counts[star]}
		if len(reviews) > 0 {
			bucket.Percentage = float64(counts[star]) / float64(len(reviews)) * 100
		}

		summary.Distribution = append(summary.Distribution, bucket)
	}

	return summary
}

func (s *reviewService) Submit(ctx context.Context, identity *models.Identity, productID int, req *models.CreateReviewRequest) (*models.Review, error) {

	logger := middleware.LoggerFromContext(ctx)

	if identity == nil {
		return nil, appErrors.UnauthorizedError("Please sign in to write a review")
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, appErrors.AddValidationError("rating", "must be between 1 and 5")
	}

	title := utils.SanitizeText(req.Title)
	comment := utils.SanitizeText(req.Comment)

	if title == "" || comment == "" {
		return nil, appErrors.ValidationError("Please fill in all fields")
	}

	if _, err := s.productRepo.GetProductByID(ctx, productID); err != nil {
		return nil, appErrors.NotFoundError("Product not found").WithError(err)
	}

	review := &models.Review{
		ID:         uuid.NewString(),
		ProductID:  productID,
		UserID:     identity.ID,
		UserName:   identity.Name,
		UserAvatar: identity.AvatarRef,
		Rating:     req.Rating,
		Title:      title,
		Comment:    comment,
		Date:       s.now().UTC().Format(time.DateOnly),
		EventType:  utils.SanitizeText(req.EventType),
		Helpful:    0,
		Verified:   false,
	}

	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		return nil, appErrors.InternalError("Failed to save review").WithError(err)
	}

	logger.Info("Review submitted", slog.Int("product_id", productID), slog.String("user_id", identity.ID))

	return review, nil
}
