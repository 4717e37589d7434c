package store

import (
	"time"

	"garinhca/models"
)

// SeedTenders - стартовые тендеры. Используются, когда коллекция
// отсутствует в хранилище или не читается.
func SeedTenders() []models.Tender {
	return []models.Tender{
		{
			ID:          "1",
			Title:       "Web Development Project",
			Category:    models.CategoryPrivate,
			Email:       "company@example.com",
			Location:    "Remote",
			Budget:      "$5,000 - $10,000",
			ExpiryDate:  time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
			Description: "Looking for skilled web developers to create a modern e-commerce website.",
			PosterName:  "Tech Solutions Inc.",
			PosterID:    "poster123",
			CreatedAt:   time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
			Status:      models.StatusOpen,
			ImageURL:    "https://images.unsplash.com/photo-1487058792275-0ad4aaf24ca7",
		},
		{
			ID:          "2",
			Title:       "Road Construction Tender",
			Category:    models.CategoryGovernment,
			Email:       "gov@example.gov",
			Location:    "Central Region",
			Budget:      "$500,000 - $750,000",
			ExpiryDate:  time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC),
			Description: "Government tender for the construction of a 5km road with proper drainage.",
			PosterName:  "Department of Infrastructure",
			PosterID:    "gov456",
			CreatedAt:   time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC),
			Status:      models.StatusOpen,
			ImageURL:    "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158",
		},
		{
			ID:          "3",
			Title:       "Office Renovation Project",
			Category:    models.CategoryPrivate,
			Email:       "corporate@example.com",
			Location:    "Downtown",
			Budget:      "$20,000 - $30,000",
			ExpiryDate:  time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
			Description: "Seeking contractors for a complete office renovation including furniture and fixtures.",
			PosterName:  "Corporate Services Ltd.",
			PosterID:    "corp789",
			CreatedAt:   time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC),
			Status:      models.StatusOpen,
			ImageURL:    "https://images.unsplash.com/photo-1488590528505-98d2b5aba04b",
		},
	}
}
