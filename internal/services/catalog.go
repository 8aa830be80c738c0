package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	appErrors "github.com/aaravmahajanofficial/papela-rentals/internal/errors"
	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	repository "github.com/aaravmahajanofficial/papela-rentals/internal/repositories"
	"github.com/shopspring/decimal"
)

var (
	lowPriceCeiling = decimal.NewFromInt(200)
	highPriceFloor  = decimal.NewFromInt(300)
)

type CatalogService interface {
	ListProducts(ctx context.Context, filter *models.ProductFilter) (*models.ProductListResponse, error)
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type catalogService struct {
	repo repository.ProductRepository
}

func NewCatalogService(repo repository.ProductRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) ListProducts(ctx context.Context, filter *models.ProductFilter) (*models.ProductListResponse, error) {

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, appErrors.InternalError("Failed to list products").WithError(err)
	}

	matched := make([]models.Product, 0, len(products))

	for _, p := range products {
		if MatchesFilter(p, filter) {
			matched = append(matched, p)
		}
	}

	return &models.ProductListResponse{
		Products: matched,
		Shown:    len(matched),
		Total:    len(products),
	}, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {

		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.InternalError("Failed to retrieve product").WithError(err)
	}

	return product, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, appErrors.InternalError("Failed to list categories").WithError(err)
	}

	return categories, nil
}

// MatchesFilter applies category, case-insensitive search over name and
// description, and the price band. Empty fields match everything.
func MatchesFilter(p models.Product, filter *models.ProductFilter) bool {

	if filter == nil {
		return true
	}

	if filter.Category != "" && filter.Category != models.CategoryAll && p.Category != filter.Category {
		return false
	}

	if term := strings.ToLower(filter.Search); term != "" {
		if !strings.Contains(strings.ToLower(p.Name), term) && !strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}

	switch filter.PriceRange {
	case models.PriceRangeLow:
		return p.Price.LessThan(lowPriceCeiling)
	case models.PriceRangeMedium:
		return p.Price.GreaterThanOrEqual(lowPriceCeiling) && p.Price.LessThan(highPriceFloor)
	case models.PriceRangeHigh:
		return p.Price.GreaterThanOrEqual(highPriceFloor)
	}

	return true
}
