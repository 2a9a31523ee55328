//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dbicalho1/TempleCals/internal/model"
	"github.com/dbicalho1/TempleCals/internal/repository"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=postgres password=postgres dbname=templecals_test sslmode=disable TimeZone=America/New_York"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "connecting to the test database failed: %v\n", err)
		os.Exit(1)
	}

	err = testDB.AutoMigrate(
		&model.DiningHall{},
		&model.MealCategory{},
		&model.Meal{},
		&model.User{},
		&model.UserMeal{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate failed: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

func setupTestData(t *testing.T) (hall *model.DiningHall, category *model.MealCategory, meal *model.Meal, user *model.User, cleanup func()) {
	t.Helper()
	ctx := context.Background()
	suffix := time.Now().UnixNano()

	hall = &model.DiningHall{
		Name:     fmt.Sprintf("Test Hall %d", suffix),
		Location: "Test Campus",
	}
	if err := testDB.WithContext(ctx).Create(hall).Error; err != nil {
		t.Fatalf("creating dining hall failed: %v", err)
	}

	category = &model.MealCategory{Name: fmt.Sprintf("Test Category %d", suffix)}
	if err := testDB.WithContext(ctx).Create(category).Error; err != nil {
		t.Fatalf("creating category failed: %v", err)
	}

	calories := 140
	meal = &model.Meal{
		Name:         "Test Scrambled Eggs",
		Calories:     &calories,
		IsAvailable:  true,
		DiningHallID: hall.ID,
		CategoryID:   category.ID,
	}
	if err := testDB.WithContext(ctx).Create(meal).Error; err != nil {
		t.Fatalf("creating meal failed: %v", err)
	}

	user = &model.User{
		Email:            fmt.Sprintf("test%d@temple.edu", suffix),
		PasswordHash:     "$2a$10$placeholder",
		FirstName:        "Test",
		LastName:         "User",
		DailyCalorieGoal: 2000,
		DailyProteinGoal: 150,
		DailyCarbGoal:    250,
		DailyFatGoal:     65,
	}
	if err := testDB.WithContext(ctx).Create(user).Error; err != nil {
		t.Fatalf("creating user failed: %v", err)
	}

	cleanup = func() {
		testDB.Where("user_id = ?", user.ID).Delete(&model.UserMeal{})
		testDB.Delete(user)
		testDB.Delete(meal)
		testDB.Delete(category)
		testDB.Delete(hall)
	}
	return hall, category, meal, user, cleanup
}

func TestUserRepoDuplicateEmail(t *testing.T) {
	_, _, _, user, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewUserRepo(testDB)
	dup := &model.User{
		Email:        user.Email,
		PasswordHash: "$2a$10$placeholder",
		FirstName:    "Dup",
		LastName:     "User",
	}
	err := repo.Create(context.Background(), dup)
	if err == nil {
		t.Fatal("duplicate email accepted")
	}
	if err != gorm.ErrDuplicatedKey {
		t.Errorf("got %v, want gorm.ErrDuplicatedKey", err)
	}
}

func TestUserMealRepoPreloadsMeal(t *testing.T) {
	_, _, meal, user, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewUserMealRepo(testDB)
	entry := &model.UserMeal{
		UserID:            user.ID,
		MealID:            &meal.ID,
		ServingMultiplier: 1,
	}
	entry.SetConsumedAt(time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC))
	if err := repo.Create(context.Background(), entry); err != nil {
		t.Fatalf("creating entry failed: %v", err)
	}

	got, err := repo.GetByID(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Meal == nil || got.Meal.Name != meal.Name {
		t.Errorf("meal not preloaded: %+v", got.Meal)
	}
	if got.Meal.DiningHall == nil {
		t.Error("dining hall not preloaded")
	}
	if got.DateConsumed.Format("2006-01-02") != "2024-03-01" {
		t.Errorf("date_consumed = %v", got.DateConsumed)
	}
}

func TestUserMealRepoDeletedMealNullsReference(t *testing.T) {
	hall, category, _, user, cleanup := setupTestData(t)
	defer cleanup()

	calories := 500
	doomed := &model.Meal{
		Name:         "Doomed Dish",
		Calories:     &calories,
		IsAvailable:  true,
		DiningHallID: hall.ID,
		CategoryID:   category.ID,
	}
	if err := testDB.Create(doomed).Error; err != nil {
		t.Fatalf("creating meal failed: %v", err)
	}

	repo := repository.NewUserMealRepo(testDB)
	entry := &model.UserMeal{UserID: user.ID, MealID: &doomed.ID, ServingMultiplier: 1}
	entry.SetConsumedAt(time.Now())
	if err := repo.Create(context.Background(), entry); err != nil {
		t.Fatalf("creating entry failed: %v", err)
	}

	if err := testDB.Delete(doomed).Error; err != nil {
		t.Fatalf("deleting meal failed: %v", err)
	}

	got, err := repo.GetByID(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("entry gone after catalog deletion: %v", err)
	}
	if got.MealID != nil {
		t.Errorf("meal_id = %v, want null after ON DELETE SET NULL", *got.MealID)
	}
}

func TestMealRepoListAvailableFilters(t *testing.T) {
	hall, category, meal, _, cleanup := setupTestData(t)
	defer cleanup()

	hidden := &model.Meal{
		Name:         "Hidden Dish",
		IsAvailable:  false,
		DiningHallID: hall.ID,
		CategoryID:   category.ID,
	}
	if err := testDB.Create(hidden).Error; err != nil {
		t.Fatalf("creating meal failed: %v", err)
	}
	defer testDB.Delete(hidden)

	repo := repository.NewMealRepo(testDB)
	meals, err := repo.ListAvailable(context.Background(), &repository.MealFilters{DiningHallID: hall.ID})
	if err != nil {
		t.Fatalf("ListAvailable failed: %v", err)
	}
	if len(meals) != 1 || meals[0].ID != meal.ID {
		t.Errorf("got %d meals, want only the available one", len(meals))
	}

	// ILIKE search is case-insensitive.
	found, err := repo.ListAvailable(context.Background(), &repository.MealFilters{
		DiningHallID: hall.ID,
		Search:       "SCRAMBLED",
	})
	if err != nil {
		t.Fatalf("ListAvailable failed: %v", err)
	}
	if len(found) != 1 {
		t.Errorf("case-insensitive search got %d meals, want 1", len(found))
	}
}
