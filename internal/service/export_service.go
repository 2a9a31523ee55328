package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/dbicalho1/TempleCals/internal/repository"
)

// ExportService renders a month of a user's meal log as a spreadsheet.
type ExportService interface {
	// ExportMonth returns the xlsx content and a suggested filename for the
	// caller's entries in the given YYYY-MM month.
	ExportMonth(ctx context.Context, userID uint, month string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the ExportService implementation.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportMonth(ctx context.Context, userID uint, month string) (*bytes.Buffer, string, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, "", newValidationError("invalid month format, expected YYYY-MM")
	}
	end := start.AddDate(0, 1, 0)

	entries, err := s.repo.UserMeal.ListByUserBetween(ctx, userID, start, end)
	if err != nil {
		s.logger.Error("listing entries for export failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Meal Log"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Time", "Meal", "Dining Hall", "Servings", "Calories", "Protein (g)", "Carbs (g)", "Fat (g)", "Notes"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, entry := range entries {
		mealName := "(deleted meal)"
		hallName := ""
		var calories, protein, carbs, fat float64
		if entry.Meal != nil {
			mealName = entry.Meal.Name
			if entry.Meal.DiningHall != nil {
				hallName = entry.Meal.DiningHall.Name
			}
			calories = float64(intOrZero(entry.Meal.Calories)) * entry.ServingMultiplier
			protein = floatOrZero(entry.Meal.Protein) * entry.ServingMultiplier
			carbs = floatOrZero(entry.Meal.Carbs) * entry.ServingMultiplier
			fat = floatOrZero(entry.Meal.Fat) * entry.ServingMultiplier
		}

		values := []interface{}{
			entry.DateConsumed.Format("2006-01-02"),
			entry.ConsumedAt.Format("15:04"),
			mealName,
			hallName,
			entry.ServingMultiplier,
			calories,
			round1(protein),
			round1(carbs),
			round1(fat),
			entry.Notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("writing xlsx failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("meal-log-%s.xlsx", month)
	return buf, filename, nil
}
