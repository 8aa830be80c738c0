package repository

import (
	"context"
	"database/sql"

	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	"github.com/shopspring/decimal"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id int) (*models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// catalogRepository is the fixed rental catalog.
type catalogRepository struct {
	products   []models.Product
	categories []models.Category
}

func NewCatalogRepo() ProductRepository {

	products := catalogProducts()

	categories := []models.Category{
		{ID: models.CategoryAll, Name: "All Categories"},
		{ID: "wedding", Name: "Wedding"},
		{ID: "corporate", Name: "Corporate"},
		{ID: "birthday", Name: "Birthday"},
		{ID: "anniversary", Name: "Anniversary"},
		{ID: "graduation", Name: "Graduation"},
	}

	for i := range categories {
		for _, p := range products {
			if categories[i].ID == models.CategoryAll || categories[i].ID == p.Category {
				categories[i].Count++
			}
		}
	}

	return &catalogRepository{products: products, categories: categories}
}

func (r *catalogRepository) ListProducts(ctx context.Context) ([]models.Product, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return append([]models.Product(nil), r.products...), nil
}

// Returns sql.ErrNoRows when the id is unknown, like the SQL-backed repositories.
func (r *catalogRepository) GetProductByID(ctx context.Context, id int) (*models.Product, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}

	return nil, sql.ErrNoRows
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return append([]models.Category(nil), r.categories...), nil
}

func catalogProducts() []models.Product {
	return []models.Product{
		{
			ID:              1,
			Name:            "Elegant Wedding Arch",
			Category:        "wedding",
			Price:           decimal.NewFromInt(250),
			Rating:          4.9,
			Reviews:         47,
			ImageRef:        "https://images.unsplash.com/photo-1519741497674-611481863552?w=400&h=300&fit=crop",
			Description:     "Beautiful white wooden arch perfect for outdoor weddings",
			FullDescription: "Our elegant wedding arch is handcrafted from premium white wood and adorned with fresh seasonal flowers. Perfect for outdoor ceremonies, this arch creates a stunning focal point that will make your special day unforgettable. The arch is weather-resistant and can be customized with your choice of flowers and decorative elements.",
			Features:        []string{"White wooden frame", "Includes floral decorations", "Delivery & setup included", "Weather-resistant finish", "Customizable flower arrangements"},
			Availability:    "Available",
			Dimensions:      "8ft W x 8ft H x 2ft D",
			Weight:          "45 lbs",
		},
		{
			ID:              2,
			Name:            "Crystal Chandelier Set",
			Category:        "wedding",
			Price:           decimal.NewFromInt(400),
			Rating:          5.0,
			Reviews:         32,
			ImageRef:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=300&fit=crop",
			Description:     "Stunning crystal chandeliers for elegant venues",
			FullDescription: "Transform your venue with our exquisite crystal chandelier set. Each set includes three chandeliers of varying sizes, featuring premium crystal drops and energy-efficient LED lighting. Perfect for creating an elegant atmosphere for weddings, galas, and special events.",
			Features:        []string{"Set of 3 chandeliers", "LED lighting", "Professional installation", "Dimming controls", "Premium crystal drops"},
			Availability:    "Available",
			Dimensions:      `Large: 36" diameter, Medium: 24" diameter, Small: 18" diameter`,
			Weight:          "120 lbs total",
		},
		{
			ID:              3,
			Name:            "Corporate Backdrop",
			Category:        "corporate",
			Price:           decimal.NewFromInt(180),
			Rating:          4.8,
			Reviews:         23,
			ImageRef:        "https://images.unsplash.com/photo-1511578314322-379afb476865?w=400&h=300&fit=crop",
			Description:     "Professional backdrop for corporate events and conferences",
			FullDescription: "Create a professional atmosphere with our customizable corporate backdrop. Perfect for conferences, product launches, and business events. The backdrop can be branded with your company logo and colors, and includes professional lighting setup.",
			Features:        []string{"Customizable branding", "10ft x 8ft size", "Step & repeat design", "Professional lighting", "Easy assembly"},
			Availability:    "Available",
			Dimensions:      "10ft W x 8ft H",
			Weight:          "35 lbs",
		},
		{
			ID:              4,
			Name:            "Birthday Party Package",
			Category:        "birthday",
			Price:           decimal.NewFromInt(120),
			Rating:          4.7,
			Reviews:         56,
			ImageRef:        "https://images.unsplash.com/photo-1530103862676-de8c9debad1d?w=400&h=300&fit=crop",
			Description:     "Complete birthday decoration package with balloons and banners",
			FullDescription: "Make any birthday celebration special with our comprehensive party package. Includes balloon arrangements, custom banners, table decorations, and party favors. Perfect for children and adult birthday parties.",
			Features:        []string{"Balloon arrangements", "Birthday banners", "Table decorations", "Party favors", "Customizable themes"},
			Availability:    "Available",
			Dimensions:      "Various sizes",
			Weight:          "15 lbs",
		},
		{
			ID:              5,
			Name:            "Luxury Lounge Set",
			Category:        "corporate",
			Price:           decimal.NewFromInt(350),
			Rating:          4.9,
			Reviews:         28,
			ImageRef:        "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=300&fit=crop",
			Description:     "Elegant lounge furniture for networking events",
			FullDescription: "Create a sophisticated networking area with our luxury lounge set. Features premium upholstered seating, stylish coffee tables, and ambient lighting. Perfect for corporate events, cocktail parties, and VIP areas.",
			Features:        []string{"4-piece seating set", "Premium upholstery", "Coffee table included", "Ambient lighting", "Modular design"},
			Availability:    "Available",
			Dimensions:      "Configurable layout",
			Weight:          "200 lbs total",
		},
		{
			ID:              6,
			Name:            "Romantic Anniversary Setup",
			Category:        "anniversary",
			Price:           decimal.NewFromInt(200),
			Rating:          5.0,
			Reviews:         19,
			ImageRef:        "https://images.unsplash.com/photo-1464366400600-7168b8af9bc3?w=400&h=300&fit=crop",
			Description:     "Intimate setup perfect for anniversary celebrations",
			FullDescription: "Celebrate your love with our romantic anniversary setup. Includes elegant table settings, candles, fresh flowers, and soft lighting to create the perfect intimate atmosphere for your special celebration.",
			Features:        []string{"Candlelit ambiance", "Floral centerpieces", "Romantic lighting", "Table settings", "Custom music playlist"},
			Availability:    "Available",
			Dimensions:      "Various configurations",
			Weight:          "25 lbs",
		},
		{
			ID:              7,
			Name:            "Graduation Stage Setup",
			Category:        "graduation",
			Price:           decimal.NewFromInt(300),
			Rating:          4.8,
			Reviews:         15,
			ImageRef:        "https://images.unsplash.com/photo-1523050854058-8df90110c9f1?w=400&h=300&fit=crop",
			Description:     "Professional stage setup for graduation ceremonies",
			FullDescription: "Honor your graduates with our professional stage setup. Includes podium, banner displays, seating arrangements, and sound system setup. Perfect for school graduations, corporate recognition events, and award ceremonies.",
			Features:        []string{"Podium included", "Banner display", "Sound system ready", "Seating arrangements", "Professional lighting"},
			Availability:    "Limited",
			Dimensions:      "12ft W x 8ft D x 3ft H",
			Weight:          "150 lbs",
		},
		{
			ID:              8,
			Name:            "Garden Party Decor",
			Category:        "birthday",
			Price:           decimal.NewFromInt(160),
			Rating:          4.6,
			Reviews:         34,
			ImageRef:        "https://images.unsplash.com/photo-1527529482837-4698179dc6ce?w=400&h=300&fit=crop",
			Description:     "Fresh and vibrant decorations for outdoor parties",
			FullDescription: "Bring your garden party to life with our fresh and vibrant decoration package. Features weather-resistant materials, colorful bunting, table settings, and natural elements perfect for outdoor celebrations.",
			Features:        []string{"Weather-resistant materials", "Colorful bunting", "Table settings", "Natural elements", "Outdoor lighting"},
			Availability:    "Available",
			Dimensions:      "Various sizes",
			Weight:          "20 lbs",
		},
	}
}
