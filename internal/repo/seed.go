package repo

import (
	"time"

	"github.com/Skotchmaster/astrion_panel/internal/models"
)

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedProducts returns the initial catalog in list order.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:             "p-1",
			Name:           "Wireless Headphones Pro",
			Description:    "Premium over-ear headphones with active noise cancelling and 32 hours of battery life.",
			Price:          5499,
			Category:       models.CategoryElectronics,
			ImageURL:       "https://images.unsplash.com/photo-1583394838336-acd977736f90?auto=format&fit=crop&w=800&q=60",
			InventoryCount: 25,
			CreatedAt:      mustTime("2024-08-14T09:00:00Z"),
		},
		{
			ID:             "p-2",
			Name:           "Smart Fitness Watch",
			Description:    "Next-gen wearable with 12 sport modes, GPS, and advanced sleep tracking.",
			Price:          2999,
			Category:       models.CategoryElectronics,
			ImageURL:       "https://images.unsplash.com/photo-1489515217757-5fd1be406fef?auto=format&fit=crop&w=800&q=60",
			InventoryCount: 42,
			CreatedAt:      mustTime("2024-07-02T11:30:00Z"),
		},
		{
			ID:             "p-3",
			Name:           "Minimalist Sofa Set",
			Description:    "Water-resistant fabric, beech wood legs, and an ergonomic silhouette for modern living rooms.",
			Price:          12499,
			Category:       models.CategoryHome,
			ImageURL:       "https://images.unsplash.com/photo-1484100356142-db6ab6244067?auto=format&fit=crop&w=800&q=60",
			InventoryCount: 8,
			CreatedAt:      mustTime("2024-05-20T14:15:00Z"),
		},
		{
			ID:             "p-4",
			Name:           "Aero Running Shoes",
			Description:    "Breathable mesh upper, lightweight midsole, and ideal support for mid-distance runs.",
			Price:          1899,
			Category:       models.CategorySports,
			ImageURL:       "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?auto=format&fit=crop&w=800&q=60",
			InventoryCount: 63,
			CreatedAt:      mustTime("2024-04-10T08:45:00Z"),
		},
		{
			ID:             "p-5",
			Name:           "Modern Reading Lamp",
			Description:    "Energy-efficient LED desk lamp with three brightness levels and a minimalist profile.",
			Price:          749,
			Category:       models.CategoryHome,
			ImageURL:       "https://images.unsplash.com/photo-1467043153537-a4f570f14c15?auto=format&fit=crop&w=800&q=60",
			InventoryCount: 37,
			CreatedAt:      mustTime("2024-03-18T17:20:00Z"),
		},
		{
			ID:             "p-6",
			Name:           "Leading in Business",
			Description:    "Best-selling business book packed with inspirational leadership stories and practical frameworks.",
			Price:          389,
			Category:       models.CategoryBooks,
			ImageURL:       "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?auto=format&fit=crop&w=800&q=60",
			InventoryCount: 120,
			CreatedAt:      mustTime("2024-01-12T09:40:00Z"),
		},
	}
}

// SeedUsers returns the initial user directory in list order.
func SeedUsers() []models.User {
	return []models.User{
		{
			ID:         "u-1",
			FullName:   "Maya Collins",
			Email:      "maya@astrionpanel.com",
			Phone:      "+1 555 123 4567",
			Role:       models.RoleAdmin,
			Status:     models.StatusActive,
			Location:   "New York, USA",
			Department: "Product Management",
			Bio:        "Product leader with eight years of experience in UX research and experimentation.",
			CreatedAt:  mustTime("2023-11-12T10:00:00Z"),
		},
		{
			ID:         "u-2",
			FullName:   "Ethan Reid",
			Email:      "ethan@astrionpanel.com",
			Phone:      "+1 512 555 9876",
			Role:       models.RoleEditor,
			Status:     models.StatusActive,
			Location:   "Austin, USA",
			Department: "Marketing",
			Bio:        "Content strategist focused on brand storytelling and lifecycle campaigns.",
			CreatedAt:  mustTime("2024-01-05T09:30:00Z"),
		},
		{
			ID:         "u-3",
			FullName:   "Lena Hart",
			Email:      "lena@astrionpanel.com",
			Phone:      "+44 20 7946 0200",
			Role:       models.RoleViewer,
			Status:     models.StatusInactive,
			Location:   "London, UK",
			Department: "Support",
			Bio:        "Customer advocate who specializes in building empathetic support journeys.",
			CreatedAt:  mustTime("2022-09-22T14:15:00Z"),
		},
		{
			ID:         "u-4",
			FullName:   "Aaron Wells",
			Email:      "aaron@astrionpanel.com",
			Phone:      "+1 650 555 7788",
			Role:       models.RoleEditor,
			Status:     models.StatusActive,
			Location:   "San Francisco, USA",
			Department: "Operations",
			Bio:        "Operations manager driving process optimization across logistics programs.",
			CreatedAt:  mustTime("2024-03-03T08:50:00Z"),
		},
	}
}
