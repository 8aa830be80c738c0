package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	repository "github.com/aaravmahajanofficial/papela-rentals/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupInquiryRepoTest(t *testing.T) (repository.InquiryRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewPostgresInquiryRepo(db), mock
}

func sampleInquiry() *models.Inquiry {
	return &models.Inquiry{
		ID: uuid.New(),
		Form: models.ContactInquiry{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Message: "Do you deliver to Round Rock?",
		},
		Status:    models.InquiryStatusPending,
		CreatedAt: time.Now(),
	}
}

func TestPostgresCreateInquiry(t *testing.T) {
	insertQuery := regexp.QuoteMeta(`INSERT INTO inquiries (id, email, form, status, error_message, created_at, updated_at)`)

	t.Run("Success - Inquiry stored", func(t *testing.T) {
		// Arrange
		repo, mock := setupInquiryRepoTest(t)
		inquiry := sampleInquiry()

		mock.ExpectExec(insertQuery).
			WithArgs(inquiry.ID.String(), inquiry.Form.Email, sqlmock.AnyArg(), "pending", "", inquiry.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.CreateInquiry(t.Context(), inquiry)

		// Assert
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Database error", func(t *testing.T) {
		// Arrange
		repo, mock := setupInquiryRepoTest(t)
		mock.ExpectExec(insertQuery).WillReturnError(errors.New("disk full"))

		// Act
		err := repo.CreateInquiry(t.Context(), sampleInquiry())

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create inquiry")
	})
}

func TestPostgresUpdateInquiryStatus(t *testing.T) {
	updateQuery := regexp.QuoteMeta(`UPDATE inquiries SET status = $1, error_message = $2, updated_at = $3`)

	t.Run("Success - Status updated", func(t *testing.T) {
		// Arrange
		repo, mock := setupInquiryRepoTest(t)
		id := uuid.New()

		mock.ExpectExec(updateQuery).
			WithArgs("sent", "", sqlmock.AnyArg(), id.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.UpdateInquiryStatus(t.Context(), id, models.InquiryStatusSent, "")

		// Assert
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unknown inquiry", func(t *testing.T) {
		// Arrange
		repo, mock := setupInquiryRepoTest(t)
		id := uuid.New()

		mock.ExpectExec(updateQuery).
			WithArgs("failed", "bounced", sqlmock.AnyArg(), id.String()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		err := repo.UpdateInquiryStatus(t.Context(), id, models.InquiryStatusFailed, "bounced")

		// Assert
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("Failure - Database error", func(t *testing.T) {
		// Arrange
		repo, mock := setupInquiryRepoTest(t)
		mock.ExpectExec(updateQuery).WillReturnError(errors.New("connection reset"))

		// Act
		err := repo.UpdateInquiryStatus(t.Context(), uuid.New(), models.InquiryStatusSent, "")

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to update inquiry status")
	})
}

func TestMemoryInquiryRepository(t *testing.T) {
	t.Run("Success - Create then update", func(t *testing.T) {
		repo := repository.NewMemoryInquiryRepo()
		inquiry := sampleInquiry()

		require.NoError(t, repo.CreateInquiry(t.Context(), inquiry))
		assert.NoError(t, repo.UpdateInquiryStatus(t.Context(), inquiry.ID, models.InquiryStatusSent, ""))
	})

	t.Run("Failure - Update of unknown inquiry", func(t *testing.T) {
		repo := repository.NewMemoryInquiryRepo()

		err := repo.UpdateInquiryStatus(t.Context(), uuid.New(), models.InquiryStatusFailed, "boom")

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
