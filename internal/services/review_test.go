package service_test

import (
	"testing"

	appErrors "github.com/aaravmahajanofficial/papela-rentals/internal/errors"
	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	repository "github.com/aaravmahajanofficial/papela-rentals/internal/repositories"
	service "github.com/aaravmahajanofficial/papela-rentals/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Run("Success - Seeded reviews", func(t *testing.T) {
		reviews := []models.Review{{Rating: 5}, {Rating: 4}, {Rating: 5}}

		summary := service.Summarize(1, reviews)

		assert.InDelta(t, 14.0/3.0, summary.AverageRating, 1e-9)
		require.Len(t, summary.Distribution, 5)
		assert.Equal(t, 5, summary.Distribution[0].Star)
		assert.Equal(t, 2, summary.Distribution[0].Count)
		assert.InDelta(t, 66.666, summary.Distribution[0].Percentage, 0.01)
		assert.Equal(t, 1, summary.Distribution[1].Count)
		assert.Equal(t, 1, summary.Distribution[4].Star)
		assert.Zero(t, summary.Distribution[4].Count)
	})

	t.Run("Success - No reviews", func(t *testing.T) {
		summary := service.Summarize(2, []models.Review{})

		assert.Zero(t, summary.AverageRating)
		require.Len(t, summary.Distribution, 5)
		for _, bucket := range summary.Distribution {
			assert.Zero(t, bucket.Percentage)
		}
	})
}

func TestReviewSubmit(t *testing.T) {
	identity := &models.Identity{ID: "1", Name: "Demo User"}
	valid := &models.CreateReviewRequest{Rating: 4, Title: "Lovely", Comment: "<script>x</script>Great arch", EventType: "Wedding"}

	t.Run("Success - Review stored", func(t *testing.T) {
		// Arrange
		reviewRepo := repository.NewMemoryReviewRepo()
		reviewService := service.NewReviewService(reviewRepo, repository.NewCatalogRepo())

		// Act
		review, err := reviewService.Submit(t.Context(), identity, 1, valid)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Great arch", review.Comment)
		assert.Equal(t, "Demo User", review.UserName)
		assert.False(t, review.Verified)

		summary, err := reviewService.Summary(t.Context(), 1)
		require.NoError(t, err)
		assert.Len(t, summary.Reviews, 4)
		assert.InDelta(t, 4.5, summary.AverageRating, 1e-9)
	})

	t.Run("Failure - Anonymous", func(t *testing.T) {
		reviewService := service.NewReviewService(repository.NewMemoryReviewRepo(), repository.NewCatalogRepo())

		review, err := reviewService.Submit(t.Context(), nil, 1, valid)

		assert.Nil(t, review)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, appErr.Code)
	})

	t.Run("Failure - Markup only comment", func(t *testing.T) {
		reviewService := service.NewReviewService(repository.NewMemoryReviewRepo(), repository.NewCatalogRepo())

		review, err := reviewService.Submit(t.Context(), identity, 1, &models.CreateReviewRequest{Rating: 3, Title: "Hi", Comment: "<b></b>"})

		assert.Nil(t, review)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
	})

	t.Run("Failure - Unknown product", func(t *testing.T) {
		reviewService := service.NewReviewService(repository.NewMemoryReviewRepo(), repository.NewCatalogRepo())

		review, err := reviewService.Submit(t.Context(), identity, 99, valid)

		assert.Nil(t, review)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}
