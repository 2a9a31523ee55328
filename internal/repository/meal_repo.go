package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/dbicalho1/TempleCals/internal/model"
)

// MealFilters are the optional filters of the meal list query.
type MealFilters struct {
	DiningHallID uint
	CategoryID   uint
	Search       string // case-insensitive substring on name
}

// MealRepository is the meal data access interface.
type MealRepository interface {
	Create(ctx context.Context, meal *model.Meal) error
	// GetByID returns the meal regardless of availability.
	GetByID(ctx context.Context, id uint) (*model.Meal, error)
	// ListAvailable returns available meals matching the filters.
	ListAvailable(ctx context.Context, filters *MealFilters) ([]model.Meal, error)
}

type mealRepo struct {
	db *gorm.DB
}

// NewMealRepo creates the GORM implementation.
func NewMealRepo(db *gorm.DB) MealRepository {
	return &mealRepo{db: db}
}

func (r *mealRepo) Create(ctx context.Context, meal *model.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *mealRepo) GetByID(ctx context.Context, id uint) (*model.Meal, error) {
	var meal model.Meal
	err := r.db.WithContext(ctx).
		Preload("DiningHall").
		Preload("Category").
		First(&meal, id).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepo) ListAvailable(ctx context.Context, filters *MealFilters) ([]model.Meal, error) {
	db := r.db.WithContext(ctx).
		Preload("DiningHall").
		Preload("Category").
		Where("is_available = ?", true)

	if filters != nil {
		if filters.DiningHallID != 0 {
			db = db.Where("dining_hall_id = ?", filters.DiningHallID)
		}
		if filters.CategoryID != 0 {
			db = db.Where("category_id = ?", filters.CategoryID)
		}
		if s := strings.TrimSpace(filters.Search); s != "" {
			db = db.Where("name ILIKE ?", "%"+s+"%")
		}
	}

	var meals []model.Meal
	if err := db.Order("name ASC").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}
