package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	"github.com/aaravmahajanofficial/papela-rentals/internal/utils"
)

type OrderRepository interface {
	ListOrdersByOwner(ctx context.Context, ownerID string) ([]models.Order, error)
	CreateOrder(ctx context.Context, order *models.Order) error
}

// referenceOrderRepository serves the seeded order history. New orders are
// not written anywhere: they live in the visitor's session until it ends.
type referenceOrderRepository struct {
	orders []models.Order
}

func NewReferenceOrderRepo() OrderRepository {
	return &referenceOrderRepository{orders: referenceOrders()}
}

func (r *referenceOrderRepository) ListOrdersByOwner(ctx context.Context, ownerID string) ([]models.Order, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0)

	for _, order := range r.orders {
		if order.OwnerID == ownerID {
			order.Items = append([]models.OrderLine(nil), order.Items...)
			orders = append(orders, order)
		}
	}

	return orders, nil
}

func (r *referenceOrderRepository) CreateOrder(ctx context.Context, _ *models.Order) error {
	return ctx.Err()
}

// layeredOrderRepository lists stored orders ahead of the fixed reference
// history, so demo accounts keep their seeded orders when a database is
// configured. New orders are written to the store only.
type layeredOrderRepository struct {
	reference OrderRepository
	store     OrderRepository
}

func NewLayeredOrderRepo(reference, store OrderRepository) OrderRepository {
	return &layeredOrderRepository{reference: reference, store: store}
}

func (r *layeredOrderRepository) ListOrdersByOwner(ctx context.Context, ownerID string) ([]models.Order, error) {

	stored, err := r.store.ListOrdersByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	seeded, err := r.reference.ListOrdersByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(stored)+len(seeded))
	seen := make(map[string]struct{}, len(stored))

	for _, order := range stored {
		seen[order.ID] = struct{}{}
		orders = append(orders, order)
	}

	for _, order := range seeded {
		if _, ok := seen[order.ID]; !ok {
			orders = append(orders, order)
		}
	}

	return orders, nil
}

func (r *layeredOrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.store.CreateOrder(ctx, order)
}

type postgresOrderRepository struct {
	DB *sql.DB
}

func NewPostgresOrderRepo(db *sql.DB) OrderRepository {
	return &postgresOrderRepository{DB: db}
}

func (r *postgresOrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	query := `
		INSERT INTO orders (id, owner_id, items, total, status, event_date, delivery_address, order_date, special_instructions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.DB.ExecContext(dbCtx, query, order.ID, order.OwnerID, items, order.Total, order.Status,
		order.EventDate, order.DeliveryAddress, order.OrderDate, order.SpecialInstructions)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

// Newest first, matching the order in which a session prepends new orders.
func (r *postgresOrderRepository) ListOrdersByOwner(ctx context.Context, ownerID string) ([]models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, owner_id, items, total, status, event_date, delivery_address, order_date, special_instructions
		FROM orders
		WHERE owner_id = $1
		ORDER BY order_date DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)

	for rows.Next() {

		var order models.Order
		var items []byte

		if err := rows.Scan(&order.ID, &order.OwnerID, &items, &order.Total, &order.Status, &order.EventDate,
			&order.DeliveryAddress, &order.OrderDate, &order.SpecialInstructions); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}

		if err := json.Unmarshal(items, &order.Items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}

	return orders, nil
}
