package repository

import (
	"time"

	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	"github.com/shopspring/decimal"
)

// Seed data shipped with the storefront. The demo account and its two past
// orders let a visitor try the order history without a backend.

const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "password123"
	DemoUserID   = "1"
)

func demoIdentity() models.Identity {
	return models.Identity{
		ID:        DemoUserID,
		Email:     DemoEmail,
		Name:      "Demo User",
		AvatarRef: "https://images.unsplash.com/photo-1494790108755-2616b612b5bc?w=150&h=150&fit=crop",
		CreatedAt: time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
		Preferences: models.Preferences{
			Newsletter:    true,
			Notifications: true,
		},
	}
}

func referenceOrders() []models.Order {
	return []models.Order{
		{
			ID:      "order-001",
			OwnerID: DemoUserID,
			Items: []models.OrderLine{
				{
					ItemID:       1,
					Name:         "Elegant Wedding Arch",
					UnitPrice:    decimal.NewFromInt(250),
					ImageRef:     "https://images.unsplash.com/photo-1519741497674-611481863552?w=400&h=300&fit=crop",
					Category:     "wedding",
					Quantity:     1,
					DurationDays: 3,
					EventDate:    "2024-08-15",
				},
			},
			Total:               decimal.NewFromInt(750),
			Status:              models.OrderStatusCompleted,
			EventDate:           "2024-08-15",
			DeliveryAddress:     "123 Main St, Los Angeles, CA 90210",
			OrderDate:           time.Date(2024, time.July, 20, 14, 30, 0, 0, time.UTC),
			SpecialInstructions: "Please set up by 2 PM",
		},
		{
			ID:      "order-002",
			OwnerID: DemoUserID,
			Items: []models.OrderLine{
				{
					ItemID:       4,
					Name:         "Birthday Party Package",
					UnitPrice:    decimal.NewFromInt(120),
					ImageRef:     "https://images.unsplash.com/photo-1530103862676-de8c9debad1d?w=400&h=300&fit=crop",
					Category:     "birthday",
					Quantity:     1,
					DurationDays: 1,
					EventDate:    "2024-12-25",
				},
			},
			Total:           decimal.NewFromInt(120),
			Status:          models.OrderStatusConfirmed,
			EventDate:       "2024-12-25",
			DeliveryAddress: "456 Oak Ave, Beverly Hills, CA 90210",
			OrderDate:       time.Date(2024, time.December, 1, 9, 15, 0, 0, time.UTC),
		},
	}
}
