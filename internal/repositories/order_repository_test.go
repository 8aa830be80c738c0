package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	repository "github.com/aaravmahajanofficial/papela-rentals/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOrderRepoTest(t *testing.T) (repository.OrderRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewPostgresOrderRepo(db), mock
}

func sampleOrder(now time.Time) *models.Order {
	return &models.Order{
		ID:      "order-1718000000000",
		OwnerID: "1",
		Items: []models.OrderLine{
			{ItemID: 4, Name: "Birthday Party Package", UnitPrice: decimal.NewFromInt(50), Category: "birthday", Quantity: 2, DurationDays: 1, EventDate: "2025-07-04"},
		},
		Total:           decimal.NewFromInt(100),
		Status:          models.OrderStatusPending,
		EventDate:       "2025-07-04",
		DeliveryAddress: "12 Rose Lane, Austin, 73301",
		OrderDate:       now,
	}
}

func TestPostgresCreateOrder(t *testing.T) {
	insertQuery := regexp.QuoteMeta(`INSERT INTO orders (id, owner_id, items, total, status, event_date, delivery_address, order_date, special_instructions)`)

	t.Run("Success - Order inserted", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)
		order := sampleOrder(time.Now())

		mock.ExpectExec(insertQuery).
			WithArgs(order.ID, order.OwnerID, sqlmock.AnyArg(), sqlmock.AnyArg(), string(order.Status),
				order.EventDate, order.DeliveryAddress, order.OrderDate, order.SpecialInstructions).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.CreateOrder(t.Context(), order)

		// Assert
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Database error", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)
		dbErr := errors.New("connection reset")

		mock.ExpectExec(insertQuery).WillReturnError(dbErr)

		// Act
		err := repo.CreateOrder(t.Context(), sampleOrder(time.Now()))

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresListOrdersByOwner(t *testing.T) {
	selectQuery := regexp.QuoteMeta(`FROM orders`) + `\s+` + regexp.QuoteMeta(`WHERE owner_id = $1`)
	columns := []string{"id", "owner_id", "items", "total", "status", "event_date", "delivery_address", "order_date", "special_instructions"}

	t.Run("Success - Orders decoded", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)
		now := time.Now().UTC().Truncate(time.Second)
		order := sampleOrder(now)

		items, err := json.Marshal(order.Items)
		require.NoError(t, err)

		rows := sqlmock.NewRows(columns).
			AddRow(order.ID, order.OwnerID, items, "100.00", "pending", order.EventDate, order.DeliveryAddress, now, "")

		mock.ExpectQuery(selectQuery).WithArgs("1").WillReturnRows(rows)

		// Act
		orders, err := repo.ListOrdersByOwner(t.Context(), "1")

		// Assert
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, order.ID, orders[0].ID)
		assert.Equal(t, models.OrderStatusPending, orders[0].Status)
		assert.True(t, decimal.NewFromInt(100).Equal(orders[0].Total))
		require.Len(t, orders[0].Items, 1)
		assert.Equal(t, 2, orders[0].Items[0].Quantity)
		assert.True(t, decimal.NewFromInt(50).Equal(orders[0].Items[0].UnitPrice))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - No orders", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)
		mock.ExpectQuery(selectQuery).WithArgs("42").WillReturnRows(sqlmock.NewRows(columns))

		// Act
		orders, err := repo.ListOrdersByOwner(t.Context(), "42")

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
	})

	t.Run("Failure - Corrupt items column", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)
		rows := sqlmock.NewRows(columns).
			AddRow("order-1", "1", []byte("{not json"), "10", "pending", "2025-01-01", "a, b, c", time.Now(), "")
		mock.ExpectQuery(selectQuery).WithArgs("1").WillReturnRows(rows)

		// Act
		orders, err := repo.ListOrdersByOwner(t.Context(), "1")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, orders)
		assert.Contains(t, err.Error(), "failed to unmarshal order items")
	})

	t.Run("Failure - Query error", func(t *testing.T) {
		// Arrange
		repo, mock := setupOrderRepoTest(t)
		mock.ExpectQuery(selectQuery).WillReturnError(errors.New("timeout"))

		// Act
		_, err := repo.ListOrdersByOwner(t.Context(), "1")

		// Assert
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list orders")
	})
}

func TestReferenceOrderRepo(t *testing.T) {
	repo := repository.NewReferenceOrderRepo()

	t.Run("Success - Demo user owns both reference orders", func(t *testing.T) {
		orders, err := repo.ListOrdersByOwner(t.Context(), repository.DemoUserID)

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "order-001", orders[0].ID)
		assert.Equal(t, models.OrderStatusCompleted, orders[0].Status)
		assert.True(t, decimal.NewFromInt(750).Equal(orders[0].Total))
		assert.Equal(t, "order-002", orders[1].ID)
		assert.Equal(t, models.OrderStatusConfirmed, orders[1].Status)
		assert.True(t, decimal.NewFromInt(120).Equal(orders[1].Total))
	})

	t.Run("Success - Other owners have none", func(t *testing.T) {
		orders, err := repo.ListOrdersByOwner(t.Context(), "1700000000000")

		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("Success - Returned slices are copies", func(t *testing.T) {
		first, err := repo.ListOrdersByOwner(t.Context(), repository.DemoUserID)
		require.NoError(t, err)

		first[0].Status = models.OrderStatusCancelled

		second, err := repo.ListOrdersByOwner(t.Context(), repository.DemoUserID)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCompleted, second[0].Status)
	})

	t.Run("Failure - Cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		assert.ErrorIs(t, repo.CreateOrder(ctx, &models.Order{}), context.Canceled)
	})
}

func TestLayeredOrderRepo(t *testing.T) {
	selectQuery := regexp.QuoteMeta(`FROM orders`) + `\s+` + regexp.QuoteMeta(`WHERE owner_id = $1`)
	insertQuery := regexp.QuoteMeta(`INSERT INTO orders`)
	columns := []string{"id", "owner_id", "items", "total", "status", "event_date", "delivery_address", "order_date", "special_instructions"}

	t.Run("Success - Demo history with an empty database", func(t *testing.T) {
		// Arrange
		store, mock := setupOrderRepoTest(t)
		repo := repository.NewLayeredOrderRepo(repository.NewReferenceOrderRepo(), store)

		mock.ExpectQuery(selectQuery).WithArgs(repository.DemoUserID).WillReturnRows(sqlmock.NewRows(columns))

		// Act
		orders, err := repo.ListOrdersByOwner(t.Context(), repository.DemoUserID)

		// Assert
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "order-001", orders[0].ID)
		assert.Equal(t, "order-002", orders[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Stored orders listed first", func(t *testing.T) {
		// Arrange
		store, mock := setupOrderRepoTest(t)
		repo := repository.NewLayeredOrderRepo(repository.NewReferenceOrderRepo(), store)

		now := time.Now().UTC().Truncate(time.Second)
		order := sampleOrder(now)
		items, err := json.Marshal(order.Items)
		require.NoError(t, err)

		rows := sqlmock.NewRows(columns).
			AddRow(order.ID, order.OwnerID, items, "100.00", "pending", order.EventDate, order.DeliveryAddress, now, "")
		mock.ExpectQuery(selectQuery).WithArgs(repository.DemoUserID).WillReturnRows(rows)

		// Act
		orders, err := repo.ListOrdersByOwner(t.Context(), repository.DemoUserID)

		// Assert
		require.NoError(t, err)
		require.Len(t, orders, 3)
		assert.Equal(t, order.ID, orders[0].ID)
		assert.Equal(t, "order-001", orders[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - New orders go to the database", func(t *testing.T) {
		// Arrange
		store, mock := setupOrderRepoTest(t)
		repo := repository.NewLayeredOrderRepo(repository.NewReferenceOrderRepo(), store)

		mock.ExpectExec(insertQuery).WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.CreateOrder(t.Context(), sampleOrder(time.Now()))

		// Assert
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Database error", func(t *testing.T) {
		// Arrange
		store, mock := setupOrderRepoTest(t)
		repo := repository.NewLayeredOrderRepo(repository.NewReferenceOrderRepo(), store)
		dbErr := errors.New("connection reset")

		mock.ExpectQuery(selectQuery).WillReturnError(dbErr)

		// Act
		orders, err := repo.ListOrdersByOwner(t.Context(), repository.DemoUserID)

		// Assert
		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, orders)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
