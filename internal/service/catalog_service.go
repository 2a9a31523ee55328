package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dbicalho1/TempleCals/internal/dto"
	"github.com/dbicalho1/TempleCals/internal/model"
	"github.com/dbicalho1/TempleCals/internal/repository"
)

// ── catalog errors ──

var (
	ErrDiningHallNotFound = errors.New("dining hall not found")
	ErrMealNotFound       = errors.New("meal not found")
)

// CatalogService serves the read-only reference data: dining halls,
// categories and meals. No side effects.
type CatalogService interface {
	ListDiningHalls(ctx context.Context) ([]dto.DiningHallResponse, error)
	GetDiningHall(ctx context.Context, id uint) (*dto.DiningHallResponse, error)
	ListCategories(ctx context.Context) ([]dto.MealCategoryResponse, error)
	// ListMeals applies the optional filters on top of is_available=true.
	ListMeals(ctx context.Context, req *dto.MealListRequest) ([]dto.MealResponse, error)
	// GetMeal returns a meal by id regardless of availability.
	GetMeal(ctx context.Context, id uint) (*dto.MealResponse, error)
}

type catalogService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCatalogService creates the CatalogService implementation.
func NewCatalogService(repo *repository.Repository, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, logger: logger}
}

func (s *catalogService) ListDiningHalls(ctx context.Context) ([]dto.DiningHallResponse, error) {
	halls, err := s.repo.DiningHall.List(ctx)
	if err != nil {
		s.logger.Error("listing dining halls failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DiningHallResponse, 0, len(halls))
	for i := range halls {
		result = append(result, *toDiningHallResponse(&halls[i]))
	}
	return result, nil
}

func (s *catalogService) GetDiningHall(ctx context.Context, id uint) (*dto.DiningHallResponse, error) {
	hall, err := s.repo.DiningHall.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiningHallNotFound
		}
		s.logger.Error("getting dining hall failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toDiningHallResponse(hall), nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]dto.MealCategoryResponse, error) {
	categories, err := s.repo.MealCategory.List(ctx)
	if err != nil {
		s.logger.Error("listing meal categories failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.MealCategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, dto.MealCategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		})
	}
	return result, nil
}

func (s *catalogService) ListMeals(ctx context.Context, req *dto.MealListRequest) ([]dto.MealResponse, error) {
	filters := &repository.MealFilters{
		DiningHallID: req.DiningHallID,
		CategoryID:   req.CategoryID,
		Search:       req.Search,
	}

	meals, err := s.repo.Meal.ListAvailable(ctx, filters)
	if err != nil {
		s.logger.Error("listing meals failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.MealResponse, 0, len(meals))
	for i := range meals {
		result = append(result, *toMealResponse(&meals[i]))
	}
	return result, nil
}

func (s *catalogService) GetMeal(ctx context.Context, id uint) (*dto.MealResponse, error) {
	meal, err := s.repo.Meal.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		s.logger.Error("getting meal failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toMealResponse(meal), nil
}

// ── response mapping ──

func toDiningHallResponse(hall *model.DiningHall) *dto.DiningHallResponse {
	return &dto.DiningHallResponse{
		ID:          hall.ID,
		Name:        hall.Name,
		Location:    hall.Location,
		Description: hall.Description,
		Hours:       hall.Hours,
		CreatedAt:   hall.CreatedAt.Format(time.RFC3339),
	}
}

func toMealResponse(meal *model.Meal) *dto.MealResponse {
	resp := &dto.MealResponse{
		ID:             meal.ID,
		Name:           meal.Name,
		Description:    meal.Description,
		Calories:       meal.Calories,
		Protein:        meal.Protein,
		Carbs:          meal.Carbs,
		Fat:            meal.Fat,
		Sodium:         meal.Sodium,
		Price:          meal.Price,
		Allergens:      meal.Allergens,
		DietaryTags:    meal.DietaryTags,
		AvailableStart: meal.AvailableStart,
		AvailableEnd:   meal.AvailableEnd,
		IsAvailable:    meal.IsAvailable,
		CreatedAt:      meal.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      meal.UpdatedAt.Format(time.RFC3339),
	}
	if meal.DiningHall != nil {
		resp.DiningHall = meal.DiningHall.Name
	}
	if meal.Category != nil {
		resp.Category = meal.Category.Name
	}
	return resp
}
