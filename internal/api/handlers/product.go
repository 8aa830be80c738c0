package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/papela-rentals/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/papela-rentals/internal/errors"
	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	service "github.com/aaravmahajanofficial/papela-rentals/internal/services"
	"github.com/aaravmahajanofficial/papela-rentals/internal/utils"
	"github.com/aaravmahajanofficial/papela-rentals/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	registry       *service.VisitorRegistry
	catalogService service.CatalogService
	reviewService  service.ReviewService
	validator      *validator.Validate
}

func NewProductHandler(registry *service.VisitorRegistry, catalogService service.CatalogService, reviewService service.ReviewService) *ProductHandler {
	return &ProductHandler{registry: registry, catalogService: catalogService, reviewService: reviewService, validator: validator.New()}
}

// ListProducts godoc
//
//	@Summary	Browse the rental catalog
//	@Tags		Products
//	@Produce	json
//	@Param		category	query		string	false	"Category id, or all"
//	@Param		search		query		string	false	"Matches name or description"
//	@Param		price_range	query		string	false	"all, low, medium or high"
//	@Success	200			{object}	models.ProductListResponse
//	@Router		/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		query := r.URL.Query()
		filter := &models.ProductFilter{
			Category:   query.Get("category"),
			Search:     query.Get("search"),
			PriceRange: models.PriceRange(query.Get("price_range")),
		}

		if err := utils.ValidateStruct(h.validator, filter); err != nil {

			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) {
				response.ValidationError(w, validationErrs)
				return
			}

			response.Error(w, appErrors.BadRequestError("Invalid filter"))
			return
		}

		products, err := h.catalogService.ListProducts(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// GetProduct godoc
//
//	@Summary	Product details
//	@Tags		Products
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	models.Product
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseIntID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		product, err := h.catalogService.GetProduct(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// ListCategories godoc
//
//	@Summary	Catalog categories with product counts
//	@Tags		Products
//	@Produce	json
//	@Success	200	{array}	models.Category
//	@Router		/categories [get]
func (h *ProductHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.catalogService.ListCategories(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

// ListReviews godoc
//
//	@Summary	Reviews and rating breakdown of a product
//	@Tags		Reviews
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	models.ReviewSummary
//	@Router		/products/{id}/reviews [get]
func (h *ProductHandler) ListReviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseIntID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		summary, err := h.reviewService.Summary(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

// CreateReview godoc
//
//	@Summary	Review a product
//	@Tags		Reviews
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Product ID"
//	@Param		review	body		models.CreateReviewRequest	true	"Review"
//	@Success	201		{object}	models.Review
//	@Failure	401		{object}	response.ErrorResponse	"Not signed in"
//	@Router		/products/{id}/reviews [post]
func (h *ProductHandler) CreateReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		visitor, ok := visitorFrom(w, r, h.registry)
		if !ok {
			return
		}

		id, err := utils.ParseIntID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.CreateReviewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid review input")
			return
		}

		review, err := h.reviewService.Submit(r.Context(), visitor.Session.Identity(), id, &req)
		if err != nil {
			logger.Warn("Failed to submit review", slog.Int("product_id", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, review)
	}
}
