package service

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dbicalho1/TempleCals/internal/dto"
	"github.com/dbicalho1/TempleCals/internal/model"
	"github.com/dbicalho1/TempleCals/internal/repository"
)

// ── meal log errors ──

var (
	ErrUserMealNotFound = errors.New("meal log entry not found")
	ErrNotEntryOwner    = errors.New("you do not have permission to modify this entry")
)

const defaultHistoryLimit = 100

// MealLogService handles a user's consumed-meal records and the daily
// nutrition aggregation against their goals.
type MealLogService interface {
	// LogMeal records a meal. The meal must exist, but availability is not
	// checked — an unavailable meal can still be logged for historical
	// correction.
	LogMeal(ctx context.Context, userID uint, req *dto.LogMealRequest) (*dto.UserMealResponse, error)
	GetHistory(ctx context.Context, userID uint, req *dto.HistoryRequest) (*dto.HistoryResponse, error)
	// GetDailySummary totals the day's nutrients, scaled by serving
	// multipliers, and returns them with the caller's stored goals.
	GetDailySummary(ctx context.Context, userID uint, date string) (*dto.DailySummaryResponse, error)
	UpdateUserMeal(ctx context.Context, userID, entryID uint, req *dto.UpdateUserMealRequest) (*dto.UserMealResponse, error)
	DeleteUserMeal(ctx context.Context, userID, entryID uint) error
}

type mealLogService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewMealLogService creates the MealLogService implementation.
func NewMealLogService(repo *repository.Repository, logger *zap.Logger) MealLogService {
	return &mealLogService{repo: repo, logger: logger, now: time.Now}
}

func (s *mealLogService) LogMeal(ctx context.Context, userID uint, req *dto.LogMealRequest) (*dto.UserMealResponse, error) {
	if req.MealID == 0 {
		return nil, newValidationError("meal_id is required")
	}

	meal, err := s.repo.Meal.GetByID(ctx, req.MealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		s.logger.Error("meal lookup failed", zap.Uint("meal_id", req.MealID), zap.Error(err))
		return nil, err
	}

	consumedAt := s.now()
	if req.ConsumedAt != nil {
		consumedAt, err = parseTimestamp(*req.ConsumedAt)
		if err != nil {
			return nil, err
		}
	}

	entry := &model.UserMeal{
		UserID:            userID,
		MealID:            &meal.ID,
		ServingMultiplier: 1.0,
		Meal:              meal,
	}
	if req.ServingMultiplier != nil {
		entry.ServingMultiplier = *req.ServingMultiplier
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}
	entry.SetConsumedAt(consumedAt)

	if err := s.repo.UserMeal.Create(ctx, entry); err != nil {
		s.logger.Error("creating meal log entry failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	return toUserMealResponse(entry), nil
}

func (s *mealLogService) GetHistory(ctx context.Context, userID uint, req *dto.HistoryRequest) (*dto.HistoryResponse, error) {
	var date *time.Time
	if req.Date != "" {
		d, err := parseDate(req.Date)
		if err != nil {
			return nil, err
		}
		date = &d
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := s.repo.UserMeal.ListByUser(ctx, userID, date, limit)
	if err != nil {
		s.logger.Error("listing meal log failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserMealResponse, 0, len(entries))
	for i := range entries {
		result = append(result, *toUserMealResponse(&entries[i]))
	}

	return &dto.HistoryResponse{Entries: result, Count: len(result)}, nil
}

func (s *mealLogService) GetDailySummary(ctx context.Context, userID uint, date string) (*dto.DailySummaryResponse, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("user lookup failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	entries, err := s.repo.UserMeal.ListByUserAndDate(ctx, userID, day)
	if err != nil {
		s.logger.Error("listing day's entries failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	var calories, protein, carbs, fat float64
	result := make([]dto.UserMealResponse, 0, len(entries))
	for i := range entries {
		entry := &entries[i]
		result = append(result, *toUserMealResponse(entry))

		// A deleted meal leaves the entry in place with a null reference;
		// it contributes zero to every total. Null nutrient fields count
		// as zero as well.
		if entry.Meal == nil {
			continue
		}
		m := entry.Meal
		calories += float64(intOrZero(m.Calories)) * entry.ServingMultiplier
		protein += floatOrZero(m.Protein) * entry.ServingMultiplier
		carbs += floatOrZero(m.Carbs) * entry.ServingMultiplier
		fat += floatOrZero(m.Fat) * entry.ServingMultiplier
	}

	return &dto.DailySummaryResponse{
		Date:    day.Format("2006-01-02"),
		Entries: result,
		Totals: dto.DailyTotals{
			Calories: int(math.Round(calories)),
			Protein:  round1(protein),
			Carbs:    round1(carbs),
			Fat:      round1(fat),
		},
		Goals: dto.NutritionGoals{
			DailyCalorieGoal: user.DailyCalorieGoal,
			DailyProteinGoal: user.DailyProteinGoal,
			DailyCarbGoal:    user.DailyCarbGoal,
			DailyFatGoal:     user.DailyFatGoal,
		},
	}, nil
}

func (s *mealLogService) UpdateUserMeal(ctx context.Context, userID, entryID uint, req *dto.UpdateUserMealRequest) (*dto.UserMealResponse, error) {
	entry, err := s.getOwnedEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.ServingMultiplier != nil {
		entry.ServingMultiplier = *req.ServingMultiplier
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}
	if req.ConsumedAt != nil {
		t, err := parseTimestamp(*req.ConsumedAt)
		if err != nil {
			return nil, err
		}
		entry.SetConsumedAt(t)
	}

	if err := s.repo.UserMeal.Update(ctx, entry); err != nil {
		s.logger.Error("updating meal log entry failed", zap.Uint("id", entryID), zap.Error(err))
		return nil, err
	}

	return toUserMealResponse(entry), nil
}

func (s *mealLogService) DeleteUserMeal(ctx context.Context, userID, entryID uint) error {
	if _, err := s.getOwnedEntry(ctx, userID, entryID); err != nil {
		return err
	}

	if err := s.repo.UserMeal.Delete(ctx, entryID); err != nil {
		s.logger.Error("deleting meal log entry failed", zap.Uint("id", entryID), zap.Error(err))
		return err
	}

	return nil
}

// getOwnedEntry fetches an entry and enforces ownership. An existing entry
// owned by someone else is a 403, never masked as a 404.
func (s *mealLogService) getOwnedEntry(ctx context.Context, userID, entryID uint) (*model.UserMeal, error) {
	entry, err := s.repo.UserMeal.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserMealNotFound
		}
		s.logger.Error("meal log lookup failed", zap.Uint("id", entryID), zap.Error(err))
		return nil, err
	}
	if entry.UserID != userID {
		return nil, ErrNotEntryOwner
	}
	return entry, nil
}

// ── helpers ──

// parseDate accepts YYYY-MM-DD.
func parseDate(value string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, newValidationError("invalid date format, expected YYYY-MM-DD")
	}
	return d, nil
}

// parseTimestamp accepts RFC 3339 or a naive ISO-8601 timestamp.
func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return t, nil
	}
	return time.Time{}, newValidationError("invalid consumed_at format, expected ISO-8601 timestamp")
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func toUserMealResponse(entry *model.UserMeal) *dto.UserMealResponse {
	resp := &dto.UserMealResponse{
		ID:                entry.ID,
		ServingMultiplier: entry.ServingMultiplier,
		Notes:             entry.Notes,
		ConsumedAt:        entry.ConsumedAt.Format(time.RFC3339),
		DateConsumed:      entry.DateConsumed.Format("2006-01-02"),
	}
	if entry.Meal != nil {
		m := entry.Meal
		summary := &dto.LoggedMealSummary{
			ID:       m.ID,
			Name:     m.Name,
			Calories: m.Calories,
			Protein:  m.Protein,
			Carbs:    m.Carbs,
			Fat:      m.Fat,
			Sodium:   m.Sodium,
		}
		if m.DiningHall != nil {
			summary.DiningHall = m.DiningHall.Name
		}
		if m.Category != nil {
			summary.Category = m.Category.Name
		}
		resp.Meal = summary
	}
	return resp
}
