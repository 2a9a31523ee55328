package repository

import "gorm.io/gorm"

// Repository aggregates all entity repositories.
type Repository struct {
	DiningHall   DiningHallRepository
	MealCategory MealCategoryRepository
	Meal         MealRepository
	User         UserRepository
	UserMeal     UserMealRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		DiningHall:   NewDiningHallRepo(db),
		MealCategory: NewMealCategoryRepo(db),
		Meal:         NewMealRepo(db),
		User:         NewUserRepo(db),
		UserMeal:     NewUserMealRepo(db),
	}
}
