package dto

import "github.com/dbicalho1/TempleCals/internal/model"

// ── catalog requests ──

// MealListRequest holds the optional meal list filters. Listing is always
// additionally restricted to available meals.
type MealListRequest struct {
	DiningHallID uint   `form:"dining_hall_id"`
	CategoryID   uint   `form:"category_id"`
	Search       string `form:"search" binding:"omitempty,max=100"`
}

// ── catalog responses ──

// DiningHallResponse is the public view of a dining hall.
type DiningHallResponse struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Location    string        `json:"location"`
	Description string        `json:"description"`
	Hours       model.JSONMap `json:"hours"`
	CreatedAt   string        `json:"created_at"`
}

// MealCategoryResponse is the public view of a meal category.
type MealCategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MealResponse is the public view of a meal, denormalized with its dining
// hall and category names.
type MealResponse struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Calories       *int     `json:"calories"`
	Protein        *float64 `json:"protein"`
	Carbs          *float64 `json:"carbs"`
	Fat            *float64 `json:"fat"`
	Sodium         *float64 `json:"sodium"`
	Price          float64  `json:"price"`
	Allergens      []string `json:"allergens"`
	DietaryTags    []string `json:"dietary_tags"`
	AvailableStart *string  `json:"available_start"`
	AvailableEnd   *string  `json:"available_end"`
	IsAvailable    bool     `json:"is_available"`
	DiningHall     string   `json:"dining_hall"`
	Category       string   `json:"category"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}
