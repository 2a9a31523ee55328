package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dbicalho1/TempleCals/internal/dto"
	"github.com/dbicalho1/TempleCals/internal/model"
	"github.com/dbicalho1/TempleCals/internal/repository"
)

// ── test helpers ──

func setupTestMealLogService() (*mealLogService, *repository.Repository) {
	repo := newMockRepository()
	svc := &mealLogService{
		repo:   repo,
		logger: zap.NewNop(),
		now:    func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
	return svc, repo
}

func createTestMeal(repo *repository.Repository, name string, calories *int, protein, carbs, fat *float64) *model.Meal {
	meal := &model.Meal{
		Name:        name,
		Calories:    calories,
		Protein:     protein,
		Carbs:       carbs,
		Fat:         fat,
		IsAvailable: true,
		DiningHall:  &model.DiningHall{ID: 1, Name: "Johnson & Hardwick Hall"},
		Category:    &model.MealCategory{ID: 1, Name: "Breakfast"},
	}
	_ = repo.Meal.Create(context.Background(), meal)
	return meal
}

func createTestAccount(repo *repository.Repository) *model.User {
	user := &model.User{
		Email:            "owl@temple.edu",
		PasswordHash:     "x",
		FirstName:        "Hooter",
		LastName:         "Owl",
		DailyCalorieGoal: 2000,
		DailyProteinGoal: 150,
		DailyCarbGoal:    250,
		DailyFatGoal:     65,
	}
	_ = repo.User.Create(context.Background(), user)
	return user
}

// ── logging meals ──

func TestLogMealDefaults(t *testing.T) {
	svc, repo := setupTestMealLogService()
	user := createTestAccount(repo)
	meal := createTestMeal(repo, "Scrambled Eggs", intPtr(140), floatPtr(12), floatPtr(2), floatPtr(10))

	resp, err := svc.LogMeal(context.Background(), user.ID, &dto.LogMealRequest{MealID: meal.ID})
	if err != nil {
		t.Fatalf("LogMeal failed: %v", err)
	}
	if resp.ServingMultiplier != 1.0 {
		t.Errorf("serving_multiplier = %v, want default 1.0", resp.ServingMultiplier)
	}
	if resp.DateConsumed != "2024-03-01" {
		t.Errorf("date_consumed = %q, want 2024-03-01 from the clock", resp.DateConsumed)
	}
	if resp.Meal == nil || resp.Meal.Name != "Scrambled Eggs" {
		t.Errorf("response meal = %+v, want the referenced meal", resp.Meal)
	}
}

func TestLogMealMissingMealID(t *testing.T) {
	svc, repo := setupTestMealLogService()
	user := createTestAccount(repo)

	_, err := svc.LogMeal(context.Background(), user.ID, &dto.LogMealRequest{})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("got %v, want a validation error", err)
	}
}

func TestLogMealUnknownMeal(t *testing.T) {
	svc, repo := setupTestMealLogService()
	user := createTestAccount(repo)

	_, err := svc.LogMeal(context.Background(), user.ID, &dto.LogMealRequest{MealID: 42})
	if !errors.Is(err, ErrMealNotFound) {
		t.Errorf("got %v, want ErrMealNotFound", err)
	}
}

func TestLogMealUnavailableMealStillLoggable(t *testing.T) {
	svc, repo := setupTestMealLogService()
	user := createTestAccount(repo)
	meal := createTestMeal(repo, "Seasonal Special", intPtr(300), nil, nil, nil)
	meal.IsAvailable = false

	// Unavailable means hidden from the list, not un-loggable.
	if _, err := svc.LogMeal(context.Background(), user.ID, &dto.LogMealRequest{MealID: meal.ID}); err != nil {
		t.Errorf("logging an unavailable meal failed: %v", err)
	}
}

func TestLogMealExplicitTimestamp(t *testing.T) {
	svc, repo := setupTestMealLogService()
	user := createTestAccount(repo)
	meal := createTestMeal(repo, "Pancakes", intPtr(220), nil, nil, nil)

	resp, err := svc.LogMeal(context.Background(), user.ID, &dto.LogMealRequest{
		MealID:     meal.ID,
		ConsumedAt: strPtr("2024-03-01T08:30:00"),
	})
	if err != nil {
		t.Fatalf("LogMeal failed: %v", err)
	}
	if resp.DateConsumed != "2024-03-01" {
		t.Errorf("date_consumed = %q, want derived 2024-03-01", resp.DateConsumed)
	}

	_, err = svc.LogMeal(context.Background(), user.ID, &dto.LogMealRequest{
		MealID:     meal.ID,
		ConsumedAt: strPtr("yesterday morning"),
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("malformed timestamp: got %v, want a validation error", err)
	}
}

// ── history ──

func TestGetHistoryOrderAndLimit(t *testing.T) {
	svc, repo := setupTestMealLogService()
	user := createTestAccount(repo)
	meal := createTestMeal(repo, "Caesar Salad", intPtr(170), nil, nil, nil)

	for _, ts := range []string{"2024-03-01T08:00:00", "2024-03-01T12:00:00", "2024-03-02T18:00:00"} {
		if _, err := svc.LogMeal(context.Background(), user.ID, &dto.LogMealRequest{
			MealID:     meal.ID,
			ConsumedAt: strPtr(ts),
		}); err != nil {
			t.Fatalf("LogMeal failed: %v", err)
		}
	}

	resp, err := svc.GetHistory(context.Background(), user.ID, &dto.HistoryRequest{})
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if resp.Count != 3 {
		t.Fatalf("count = %d, want 3", resp.Count)
	}
	if resp.Entries[0].DateConsumed != "2024-03-02" {
		t.Errorf("first entry date = %q, want the most recent", resp.Entries[0].DateConsumed)
	}

	limited, err := svc.GetHistory(context.Background(), user.ID, &dto.HistoryRequest{Limit: 2})
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if limited.Count != 2 {
		t.Errorf("limited count = %d, want 2", limited.Count)
	}

	byDate, err := svc.GetHistory(context.Background(), user.ID, &dto.HistoryRequest{Date: "2024-03-01"})
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if byDate.Count != 2 {
		t.Errorf("filtered count = %d, want 2", byDate.Count)
	}

	_, err = svc.GetHistory(context.Background(), user.ID, &dto.HistoryRequest{Date: "03/01/2024"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("malformed date: got %v, want a validation error", err)
	}
}

// ── daily summary ──

func TestGetDailySummaryTotals(t *testing.T) {
	svc, repo := setupTestMealLogService()
	user := createTestAccount(repo)
	mealA := createTestMeal(repo, "Scrambled Eggs", intPtr(140), floatPtr(12), floatPtr(2), floatPtr(10))
	mealB := createTestMeal(repo, "Fresh Fruit Cup", intPtr(80), floatPtr(1), floatPtr(20), floatPtr(0))

	_, err := svc.LogMeal(context.Background(), user.ID, &dto.LogMealRequest{
		MealID:            mealA.ID,
		ServingMultiplier: floatPtr(2.0),
		ConsumedAt:        strPtr("2024-03-01T08:00:00"),
	})
	if err != nil {
		t.Fatalf("LogMeal failed: %v", err)
	}
	_, err = svc.LogMeal(context.Background(), user.ID, &dto.LogMealRequest{
		MealID:     mealB.ID,
		ConsumedAt: strPtr("2024-03-01T15:00:00"),
	})
	if err != nil {
		t.Fatalf("LogMeal failed: %v", err)
	}

	resp, err := svc.GetDailySummary(context.Background(), user.ID, "2024-03-01")
	if err != nil {
		t.Fatalf("GetDailySummary failed: %v", err)
	}

	// 140*2 + 80*1 = 360
	if resp.Totals.Calories != 360 {
		t.Errorf("calories = %d, want 360", resp.Totals.Calories)
	}
	if resp.Totals.Protein != 25 { // 12*2 + 1
		t.Errorf("protein = %v, want 25", resp.Totals.Protein)
	}
	if resp.Totals.Carbs != 24 { // 2*2 + 20
		t.Errorf("carbs = %v, want 24", resp.Totals.Carbs)
	}
	if resp.Totals.Fat != 20 { // 10*2 + 0
		t.Errorf("fat = %v, want 20", resp.Totals.Fat)
	}
	if resp.Goals.DailyCalorieGoal != 2000 {
		t.Errorf("goals = %+v, want the stored goals", resp.Goals)
	}
	if len(resp.Entries) != 2 {
		t.Errorf("entries = %d, want 2", len(resp.Entries))
	}
}

func TestGetDailySummaryIdempotent(t *testing.T) {
	svc, repo := setupTestMealLogService()
	user := createTestAccount(repo)
	meal := createTestMeal(repo, "Beef Stir Fry", intPtr(280), floatPtr(22), floatPtr(18), floatPtr(12))

	if _, err := svc.LogMeal(context.Background(), user.ID, &dto.LogMealRequest{
		MealID:     meal.ID,
		ConsumedAt: strPtr("2024-03-01T19:00:00"),
	}); err != nil {
		t.Fatalf("LogMeal failed: %v", err)
	}

	first, err := svc.GetDailySummary(context.Background(), user.ID, "2024-03-01")
	if err != nil {
		t.Fatalf("GetDailySummary failed: %v", err)
	}
	second, err := svc.GetDailySummary(context.Background(), user.ID, "2024-03-01")
	if err != nil {
		t.Fatalf("GetDailySummary failed: %v", err)
	}
	if first.Totals != second.Totals {
		t.Errorf("summary mutated state: %+v vs %+v", first.Totals, second.Totals)
	}
}

func TestGetDailySummaryNullNutrients(t *testing.T) {
	svc, repo := setupTestMealLogService()
	user := createTestAccount(repo)
	meal := createTestMeal(repo, "Mystery Soup", nil, nil, nil, nil)

	if _, err := svc.LogMeal(context.Background(), user.ID, &dto.LogMealRequest{
		MealID:     meal.ID,
		ConsumedAt: strPtr("2024-03-01T12:00:00"),
	}); err != nil {
		t.Fatalf("LogMeal failed: %v", err)
	}

	resp, err := svc.GetDailySummary(context.Background(), user.ID, "2024-03-01")
	if err != nil {
		t.Fatalf("GetDailySummary failed: %v", err)
	}
	if resp.Totals.Calories != 0 || resp.Totals.Protein != 0 {
		t.Errorf("null nutrients must count as zero, got %+v", resp.Totals)
	}
	if len(resp.Entries) != 1 {
		t.Errorf("the entry itself must still appear, got %d entries", len(resp.Entries))
	}
}

func TestGetDailySummaryDeletedMeal(t *testing.T) {
	svc, repo := setupTestMealLogService()
	user := createTestAccount(repo)
	meal := createTestMeal(repo, "Retired Dish", intPtr(500), floatPtr(30), floatPtr(40), floatPtr(20))

	logged, err := svc.LogMeal(context.Background(), user.ID, &dto.LogMealRequest{
		MealID:     meal.ID,
		ConsumedAt: strPtr("2024-03-01T12:00:00"),
	})
	if err != nil {
		t.Fatalf("LogMeal failed: %v", err)
	}

	// Simulate the catalog deletion: the FK nulls out, the entry stays.
	entry, _ := repo.UserMeal.GetByID(context.Background(), logged.ID)
	entry.MealID = nil
	entry.Meal = nil
	_ = repo.UserMeal.Update(context.Background(), entry)

	resp, err := svc.GetDailySummary(context.Background(), user.ID, "2024-03-01")
	if err != nil {
		t.Fatalf("GetDailySummary failed: %v", err)
	}
	if len(resp.Entries) != 1 {
		t.Fatalf("entries = %d, want the orphaned entry kept", len(resp.Entries))
	}
	if resp.Entries[0].Meal != nil {
		t.Error("orphaned entry must carry a null meal reference")
	}
	if resp.Totals.Calories != 0 {
		t.Errorf("orphaned entry contributed %d calories, want 0", resp.Totals.Calories)
	}
}

func TestGetDailySummaryBadInput(t *testing.T) {
	svc, repo := setupTestMealLogService()
	user := createTestAccount(repo)

	_, err := svc.GetDailySummary(context.Background(), user.ID, "March 1st")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("malformed date: got %v, want a validation error", err)
	}

	_, err = svc.GetDailySummary(context.Background(), 999, "2024-03-01")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("missing user: got %v, want ErrUserNotFound", err)
	}
}

// ── update and delete ──

func TestUpdateUserMeal(t *testing.T) {
	svc, repo := setupTestMealLogService()
	user := createTestAccount(repo)
	meal := createTestMeal(repo, "Turkey Sandwich", intPtr(290), nil, nil, nil)

	logged, err := svc.LogMeal(context.Background(), user.ID, &dto.LogMealRequest{
		MealID:     meal.ID,
		ConsumedAt: strPtr("2024-03-01T12:00:00"),
	})
	if err != nil {
		t.Fatalf("LogMeal failed: %v", err)
	}

	resp, err := svc.UpdateUserMeal(context.Background(), user.ID, logged.ID, &dto.UpdateUserMealRequest{
		ServingMultiplier: floatPtr(1.5),
		Notes:             strPtr("extra mustard"),
		ConsumedAt:        strPtr("2024-03-02T13:00:00"),
	})
	if err != nil {
		t.Fatalf("UpdateUserMeal failed: %v", err)
	}
	if resp.ServingMultiplier != 1.5 {
		t.Errorf("serving_multiplier = %v, want 1.5", resp.ServingMultiplier)
	}
	if resp.Notes != "extra mustard" {
		t.Errorf("notes = %q", resp.Notes)
	}
	if resp.DateConsumed != "2024-03-02" {
		t.Errorf("date_consumed = %q, want re-derived 2024-03-02", resp.DateConsumed)
	}
}

func TestUpdateUserMealOwnership(t *testing.T) {
	svc, repo := setupTestMealLogService()
	owner := createTestAccount(repo)
	meal := createTestMeal(repo, "Chicken Quesadilla", intPtr(380), nil, nil, nil)

	other := &model.User{Email: "other@temple.edu", PasswordHash: "x", FirstName: "O", LastName: "T"}
	_ = repo.User.Create(context.Background(), other)

	logged, err := svc.LogMeal(context.Background(), owner.ID, &dto.LogMealRequest{MealID: meal.ID})
	if err != nil {
		t.Fatalf("LogMeal failed: %v", err)
	}

	// Someone else's existing entry is a permission error, never a not-found.
	_, err = svc.UpdateUserMeal(context.Background(), other.ID, logged.ID, &dto.UpdateUserMealRequest{
		Notes: strPtr("hijack"),
	})
	if !errors.Is(err, ErrNotEntryOwner) {
		t.Errorf("got %v, want ErrNotEntryOwner", err)
	}

	err = svc.DeleteUserMeal(context.Background(), other.ID, logged.ID)
	if !errors.Is(err, ErrNotEntryOwner) {
		t.Errorf("delete: got %v, want ErrNotEntryOwner", err)
	}
}

func TestDeleteUserMeal(t *testing.T) {
	svc, repo := setupTestMealLogService()
	user := createTestAccount(repo)
	meal := createTestMeal(repo, "Vegetarian Pasta", intPtr(320), nil, nil, nil)

	logged, err := svc.LogMeal(context.Background(), user.ID, &dto.LogMealRequest{MealID: meal.ID})
	if err != nil {
		t.Fatalf("LogMeal failed: %v", err)
	}

	if err := svc.DeleteUserMeal(context.Background(), user.ID, logged.ID); err != nil {
		t.Fatalf("DeleteUserMeal failed: %v", err)
	}

	err = svc.DeleteUserMeal(context.Background(), user.ID, logged.ID)
	if !errors.Is(err, ErrUserMealNotFound) {
		t.Errorf("second delete: got %v, want ErrUserMealNotFound", err)
	}
}
