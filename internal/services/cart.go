package service

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/aaravmahajanofficial/papela-rentals/internal/errors"
	"github.com/aaravmahajanofficial/papela-rentals/internal/metrics"
	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	repository "github.com/aaravmahajanofficial/papela-rentals/internal/repositories"
)

type CartService interface {
	AddItem(ctx context.Context, cart *CartStore, req *models.AddItemRequest) (*models.CartView, error)
	UpdateQuantity(ctx context.Context, cart *CartStore, itemID int, req *models.UpdateQuantityRequest) (*models.CartView, error)
	RemoveItem(ctx context.Context, cart *CartStore, itemID int, eventDate *string) (*models.CartView, error)
	ClearCart(ctx context.Context, cart *CartStore) (*models.CartView, error)
}

type cartService struct {
	productRepo repository.ProductRepository
}

func NewCartService(productRepo repository.ProductRepository) CartService {
	return &cartService{productRepo: productRepo}
}

// AddItem prices the line from the catalog, never from the request.
func (s *cartService) AddItem(ctx context.Context, cart *CartStore, req *models.AddItemRequest) (*models.CartView, error) {

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {

		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.InternalError("Failed to retrieve product").WithError(err)
	}

	cart.AddToCart(models.CartLine{
		ItemID:       product.ID,
		Name:         product.Name,
		UnitPrice:    product.Price,
		ImageRef:     product.ImageRef,
		Category:     product.Category,
		EventDate:    req.EventDate,
		DurationDays: req.DurationDays,
		Quantity:     req.Quantity,
	})

	metrics.CartMutations.WithLabelValues("add").Inc()

	return cart.View(), nil
}

// With an event date only that line changes. Without one every line of the
// product does.
func (s *cartService) UpdateQuantity(_ context.Context, cart *CartStore, itemID int, req *models.UpdateQuantityRequest) (*models.CartView, error) {

	if req.EventDate != nil {
		cart.UpdateLineQuantity(models.LineKey{ItemID: itemID, EventDate: *req.EventDate}, req.Quantity)
	} else {
		cart.UpdateQuantity(itemID, req.Quantity)
	}

	metrics.CartMutations.WithLabelValues("update").Inc()

	return cart.View(), nil
}

func (s *cartService) RemoveItem(_ context.Context, cart *CartStore, itemID int, eventDate *string) (*models.CartView, error) {

	if eventDate != nil {
		cart.RemoveLine(models.LineKey{ItemID: itemID, EventDate: *eventDate})
	} else {
		cart.RemoveFromCart(itemID)
	}

	metrics.CartMutations.WithLabelValues("remove").Inc()

	return cart.View(), nil
}

func (s *cartService) ClearCart(_ context.Context, cart *CartStore) (*models.CartView, error) {

	cart.ClearCart()

	metrics.CartMutations.WithLabelValues("clear").Inc()

	return cart.View(), nil
}
