package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/papela-rentals/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/papela-rentals/internal/errors"
	"github.com/aaravmahajanofficial/papela-rentals/internal/metrics"
	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	"github.com/aaravmahajanofficial/papela-rentals/internal/utils"
	"github.com/shopspring/decimal"
)

type CheckoutService interface {
	CommitOrder(ctx context.Context, cart *CartStore, session *SessionStore, req *models.CheckoutRequest) (*models.Order, error)
}

type checkoutService struct {
	latency time.Duration
	now     func() time.Time
}

// latency stands in for payment processing and runs before anything changes.
func NewCheckoutService(latency time.Duration) CheckoutService {
	return &checkoutService{latency: latency, now: time.Now}
}

var errEmptyCart = appErrors.BadRequestError("Cannot create order with empty cart")

// CommitOrder turns the cart into a pending order. Adding the order and
// emptying the cart happen under the cart lock: either both happen or the
// cart is left as it was.
func (s *checkoutService) CommitOrder(ctx context.Context, cart *CartStore, session *SessionStore, req *models.CheckoutRequest) (*models.Order, error) {

	logger := middleware.LoggerFromContext(ctx)

	if !session.IsAuthenticated() {
		return nil, appErrors.UnauthorizedError("Please sign in to complete your order")
	}

	if cart.TotalItems() == 0 {
		return nil, appErrors.BadRequestError("Cannot create order with empty cart")
	}

	if err := utils.Wait(ctx, s.latency); err != nil {
		return nil, appErrors.RequestCancelledError("Checkout cancelled").WithError(err)
	}

	var placed *models.Order

	err := cart.Commit(func(lines []models.CartLine, total decimal.Decimal) error {

		if len(lines) == 0 {
			return errEmptyCart
		}

		draft := s.buildDraft(lines, total, req)

		order, err := session.AddOrder(ctx, draft)
		if err != nil {
			return appErrors.DatabaseError("Failed to place order").WithError(err)
		}

		// signed out while payment was processing
		if order == nil {
			return appErrors.UnauthorizedError("Please sign in to complete your order")
		}

		placed = order

		return nil
	})

	if err != nil {
		if errors.Is(err, errEmptyCart) {
			return nil, appErrors.BadRequestError("Cannot create order with empty cart")
		}

		logger.Warn("Checkout failed, cart kept", slog.String("error", err.Error()))
		return nil, err
	}

	metrics.OrdersCommitted.Inc()
	logger.Info("Order placed",
		slog.String("order_id", placed.ID),
		slog.String("owner_id", placed.OwnerID),
		slog.String("total", placed.Total.StringFixed(2)),
	)

	return placed, nil
}

func (s *checkoutService) buildDraft(lines []models.CartLine, total decimal.Decimal, req *models.CheckoutRequest) models.OrderDraft {

	eventDate := lines[0].EventDate
	if eventDate == "" {
		eventDate = s.now().UTC().Format(time.DateOnly)
	}

	items := make([]models.OrderLine, 0, len(lines))

	for _, l := range lines {

		lineDate := l.EventDate
		if lineDate == "" {
			lineDate = eventDate
		}

		items = append(items, models.OrderLine{
			ItemID:       l.ItemID,
			Name:         l.Name,
			UnitPrice:    l.UnitPrice,
			ImageRef:     l.ImageRef,
			Category:     l.Category,
			Quantity:     l.Quantity,
			DurationDays: l.EffectiveDuration(),
			EventDate:    lineDate,
		})
	}

	return models.OrderDraft{
		Items:     items,
		Total:     total,
		Status:    models.OrderStatusPending,
		EventDate: eventDate,
		DeliveryAddress: fmt.Sprintf("%s, %s, %s",
			utils.SanitizeText(req.Address), utils.SanitizeText(req.City), utils.SanitizeText(req.Zip)),
		SpecialInstructions: utils.SanitizeText(req.SpecialInstructions),
	}
}
