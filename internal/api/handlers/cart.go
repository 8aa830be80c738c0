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

type CartHandler struct {
	registry    *service.VisitorRegistry
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(registry *service.VisitorRegistry, cartService service.CartService) *CartHandler {
	return &CartHandler{registry: registry, cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//
//	@Summary	Current cart with totals
//	@Tags		Cart
//	@Produce	json
//	@Success	200	{object}	models.CartView
//	@Router		/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		visitor, ok := visitorFrom(w, r, h.registry)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, visitor.Cart.View())
	}
}

// AddItem godoc
//
//	@Summary	Add a rental to the cart
//	@Tags		Cart
//	@Accept		json
//	@Produce	json
//	@Param		item	body		models.AddItemRequest	true	"Product and rental dates"
//	@Success	200		{object}	models.CartView
//	@Failure	404		{object}	response.ErrorResponse	"Product not found"
//	@Router		/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		visitor, ok := visitorFrom(w, r, h.registry)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), visitor.Cart, &req)
		if err != nil {
			logger.Warn("Failed to add item", slog.Int("product_id", req.ProductID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.Int("product_id", req.ProductID), slog.Int("total_items", cart.TotalItems))
		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateQuantity godoc
//
//	@Summary	Set the quantity of a cart item
//	@Description	A quantity of zero or less removes the item. With event_date only that line changes.
//	@Tags		Cart
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Product ID"
//	@Param		body	body		models.UpdateQuantityRequest	true	"Quantity"
//	@Success	200		{object}	models.CartView
//	@Router		/cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		visitor, ok := visitorFrom(w, r, h.registry)
		if !ok {
			return
		}

		itemID, err := utils.ParseIntID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update quantity input")
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), visitor.Cart, itemID, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveItem godoc
//
//	@Summary	Remove an item from the cart
//	@Tags		Cart
//	@Produce	json
//	@Param		id			path		int		true	"Product ID"
//	@Param		event_date	query		string	false	"Only remove the line for this date"
//	@Success	200			{object}	models.CartView
//	@Router		/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		visitor, ok := visitorFrom(w, r, h.registry)
		if !ok {
			return
		}

		itemID, err := utils.ParseIntID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var eventDate *string
		if r.URL.Query().Has("event_date") {
			d := r.URL.Query().Get("event_date")
			if d != "" && h.validator.Var(d, "datetime=2006-01-02") != nil {
				response.Error(w, errors.BadRequestError("Invalid event_date").WithDetail(d))
				return
			}
			eventDate = &d
		}

		cart, err := h.cartService.RemoveItem(r.Context(), visitor.Cart, itemID, eventDate)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// ClearCart godoc
//
//	@Summary	Empty the cart
//	@Tags		Cart
//	@Produce	json
//	@Success	200	{object}	models.CartView
//	@Router		/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		visitor, ok := visitorFrom(w, r, h.registry)
		if !ok {
			return
		}

		cart, err := h.cartService.ClearCart(r.Context(), visitor.Cart)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}
