package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/dbicalho1/TempleCals/internal/dto"
	"github.com/dbicalho1/TempleCals/internal/model"
	"github.com/dbicalho1/TempleCals/internal/repository"
)

func setupTestCatalogService() (CatalogService, *repository.Repository) {
	repo := newMockRepository()
	return NewCatalogService(repo, zap.NewNop()), repo
}

func TestListDiningHalls(t *testing.T) {
	svc, repo := setupTestCatalogService()
	_ = repo.DiningHall.Create(context.Background(), &model.DiningHall{Name: "Johnson & Hardwick Hall"})
	_ = repo.DiningHall.Create(context.Background(), &model.DiningHall{Name: "Morgan's Hall"})

	halls, err := svc.ListDiningHalls(context.Background())
	if err != nil {
		t.Fatalf("ListDiningHalls failed: %v", err)
	}
	if len(halls) != 2 {
		t.Errorf("got %d halls, want 2", len(halls))
	}
}

func TestGetDiningHallNotFound(t *testing.T) {
	svc, _ := setupTestCatalogService()

	_, err := svc.GetDiningHall(context.Background(), 42)
	if !errors.Is(err, ErrDiningHallNotFound) {
		t.Errorf("got %v, want ErrDiningHallNotFound", err)
	}
}

func TestListMealsExcludesUnavailable(t *testing.T) {
	svc, repo := setupTestCatalogService()
	_ = repo.Meal.Create(context.Background(), &model.Meal{Name: "Pancakes", IsAvailable: true, DiningHallID: 1, CategoryID: 1})
	_ = repo.Meal.Create(context.Background(), &model.Meal{Name: "Retired Dish", IsAvailable: false, DiningHallID: 1, CategoryID: 1})

	meals, err := svc.ListMeals(context.Background(), &dto.MealListRequest{})
	if err != nil {
		t.Fatalf("ListMeals failed: %v", err)
	}
	if len(meals) != 1 {
		t.Fatalf("got %d meals, want only the available one", len(meals))
	}
	if meals[0].Name != "Pancakes" {
		t.Errorf("meal = %q, want Pancakes", meals[0].Name)
	}
}

func TestListMealsFilters(t *testing.T) {
	svc, repo := setupTestCatalogService()
	_ = repo.Meal.Create(context.Background(), &model.Meal{Name: "Grilled Chicken Breast", IsAvailable: true, DiningHallID: 1, CategoryID: 2})
	_ = repo.Meal.Create(context.Background(), &model.Meal{Name: "Caesar Salad", IsAvailable: true, DiningHallID: 1, CategoryID: 2})
	_ = repo.Meal.Create(context.Background(), &model.Meal{Name: "Chicken Quesadilla", IsAvailable: true, DiningHallID: 2, CategoryID: 3})

	byHall, err := svc.ListMeals(context.Background(), &dto.MealListRequest{DiningHallID: 2})
	if err != nil {
		t.Fatalf("ListMeals failed: %v", err)
	}
	if len(byHall) != 1 || byHall[0].Name != "Chicken Quesadilla" {
		t.Errorf("hall filter got %+v", byHall)
	}

	bySearch, err := svc.ListMeals(context.Background(), &dto.MealListRequest{Search: "chicken"})
	if err != nil {
		t.Fatalf("ListMeals failed: %v", err)
	}
	if len(bySearch) != 2 {
		t.Errorf("case-insensitive search got %d meals, want 2", len(bySearch))
	}
}

func TestGetMealReturnsUnavailable(t *testing.T) {
	svc, repo := setupTestCatalogService()
	meal := &model.Meal{Name: "Retired Dish", IsAvailable: false, DiningHallID: 1, CategoryID: 1}
	_ = repo.Meal.Create(context.Background(), meal)

	// Direct lookup ignores availability so logged history stays resolvable.
	resp, err := svc.GetMeal(context.Background(), meal.ID)
	if err != nil {
		t.Fatalf("GetMeal failed: %v", err)
	}
	if resp.IsAvailable {
		t.Error("is_available = true, want false")
	}

	_, err = svc.GetMeal(context.Background(), 999)
	if !errors.Is(err, ErrMealNotFound) {
		t.Errorf("got %v, want ErrMealNotFound", err)
	}
}

func TestListCategories(t *testing.T) {
	svc, repo := setupTestCatalogService()
	_ = repo.MealCategory.Create(context.Background(), &model.MealCategory{Name: "Breakfast"})
	_ = repo.MealCategory.Create(context.Background(), &model.MealCategory{Name: "Lunch"})

	categories, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(categories) != 2 {
		t.Errorf("got %d categories, want 2", len(categories))
	}
}
