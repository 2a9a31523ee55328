package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dbicalho1/TempleCals/internal/model"
)

// MealCategoryRepository is the meal category data access interface.
type MealCategoryRepository interface {
	Create(ctx context.Context, category *model.MealCategory) error
	GetByID(ctx context.Context, id uint) (*model.MealCategory, error)
	GetByName(ctx context.Context, name string) (*model.MealCategory, error)
	List(ctx context.Context) ([]model.MealCategory, error)
}

type mealCategoryRepo struct {
	db *gorm.DB
}

// NewMealCategoryRepo creates the GORM implementation.
func NewMealCategoryRepo(db *gorm.DB) MealCategoryRepository {
	return &mealCategoryRepo{db: db}
}

func (r *mealCategoryRepo) Create(ctx context.Context, category *model.MealCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *mealCategoryRepo) GetByID(ctx context.Context, id uint) (*model.MealCategory, error) {
	var category model.MealCategory
	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *mealCategoryRepo) GetByName(ctx context.Context, name string) (*model.MealCategory, error) {
	var category model.MealCategory
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *mealCategoryRepo) List(ctx context.Context) ([]model.MealCategory, error) {
	var categories []model.MealCategory
	err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
