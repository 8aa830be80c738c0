package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/papela-rentals/internal/api/middleware"
	"github.com/aaravmahajanofficial/papela-rentals/internal/errors"
	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	service "github.com/aaravmahajanofficial/papela-rentals/internal/services"
	"github.com/aaravmahajanofficial/papela-rentals/internal/utils"
	"github.com/aaravmahajanofficial/papela-rentals/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	registry        *service.VisitorRegistry
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewOrderHandler(registry *service.VisitorRegistry, checkoutService service.CheckoutService) *OrderHandler {
	return &OrderHandler{registry: registry, checkoutService: checkoutService, validator: validator.New()}
}

// Checkout godoc
//
//	@Summary		Place an order from the cart
//	@Description	Creates a pending order from every cart line and empties the cart. Requires a signed-in session.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			delivery	body		models.CheckoutRequest	true	"Delivery details"
//	@Success		201			{object}	models.OrderResponse
//	@Failure		400			{object}	response.ErrorResponse	"Validation error or empty cart"
//	@Failure		401			{object}	response.ErrorResponse	"Not signed in"
//	@Router			/checkout [post]
func (h *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		visitor, ok := visitorFrom(w, r, h.registry)
		if !ok {
			return
		}

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		order, err := h.checkoutService.CommitOrder(r.Context(), visitor.Cart, visitor.Session, &req)
		if err != nil {
			logger.Warn("Checkout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout completed", slog.String("order_id", order.ID))
		response.Success(w, http.StatusCreated, models.OrderResponse{Order: order})
	}
}

// ListOrders godoc
//
//	@Summary	Order history of the signed-in user, newest first
//	@Tags		Orders
//	@Produce	json
//	@Success	200	{object}	models.OrderHistoryResponse
//	@Failure	401	{object}	response.ErrorResponse
//	@Router		/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		visitor, ok := visitorFrom(w, r, h.registry)
		if !ok {
			return
		}

		if !visitor.Session.IsAuthenticated() {
			response.Error(w, errors.UnauthorizedError("Please sign in to view your orders"))
			return
		}

		orders := visitor.Session.Orders()

		response.Success(w, http.StatusOK, models.OrderHistoryResponse{Orders: orders, Total: len(orders)})
	}
}

// GetOrder godoc
//
//	@Summary	One order of the signed-in user
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path		string	true	"Order ID"
//	@Success	200	{object}	models.Order
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/orders/{id} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		visitor, ok := visitorFrom(w, r, h.registry)
		if !ok {
			return
		}

		if !visitor.Session.IsAuthenticated() {
			response.Error(w, errors.UnauthorizedError("Please sign in to view your orders"))
			return
		}

		id := r.PathValue("id")

		order, found := visitor.Session.GetOrderByID(id)
		if !found {
			logger.Warn("Order not found", slog.String("order_id", id))
			response.Error(w, errors.NotFoundError("Order not found"))
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}
