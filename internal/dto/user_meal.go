package dto

// ── meal log requests ──

// LogMealRequest records a consumed meal. ConsumedAt is an optional ISO-8601
// timestamp; it defaults to the logging instant.
type LogMealRequest struct {
	MealID            uint     `json:"meal_id"`
	ServingMultiplier *float64 `json:"serving_multiplier" binding:"omitempty,gt=0"`
	Notes             *string  `json:"notes"              binding:"omitempty,max=1000"`
	ConsumedAt        *string  `json:"consumed_at"`
}

// UpdateUserMealRequest is a partial update of an owned log entry. Only the
// multiplier, notes and consumption time are editable.
type UpdateUserMealRequest struct {
	ServingMultiplier *float64 `json:"serving_multiplier" binding:"omitempty,gt=0"`
	Notes             *string  `json:"notes"              binding:"omitempty,max=1000"`
	ConsumedAt        *string  `json:"consumed_at"`
}

// HistoryRequest filters the caller's meal log.
type HistoryRequest struct {
	Date  string `form:"date"` // YYYY-MM-DD
	Limit int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

// ── meal log responses ──

// LoggedMealSummary is the denormalized view of the referenced meal inside a
// log entry. Nil when the meal has since been deleted from the catalog.
type LoggedMealSummary struct {
	ID         uint     `json:"id"`
	Name       string   `json:"name"`
	Calories   *int     `json:"calories"`
	Protein    *float64 `json:"protein"`
	Carbs      *float64 `json:"carbs"`
	Fat        *float64 `json:"fat"`
	Sodium     *float64 `json:"sodium"`
	DiningHall string   `json:"dining_hall,omitempty"`
	Category   string   `json:"category,omitempty"`
}

// UserMealResponse is a single meal log entry.
type UserMealResponse struct {
	ID                uint               `json:"id"`
	Meal              *LoggedMealSummary `json:"meal"`
	ServingMultiplier float64            `json:"serving_multiplier"`
	Notes             string             `json:"notes,omitempty"`
	ConsumedAt        string             `json:"consumed_at"`
	DateConsumed      string             `json:"date_consumed"`
}

// HistoryResponse is the caller's meal log, most recent first.
type HistoryResponse struct {
	Entries []UserMealResponse `json:"entries"`
	Count   int                `json:"count"`
}

// DailyTotals are the nutrient sums for one day, scaled by serving
// multipliers. Calories rounds to the nearest integer, the macros to one
// decimal place.
type DailyTotals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailySummaryResponse returns the day's entries, their totals, and the
// caller's stored goals. Percentage-of-goal is left to the caller.
type DailySummaryResponse struct {
	Date    string             `json:"date"`
	Entries []UserMealResponse `json:"entries"`
	Totals  DailyTotals        `json:"totals"`
	Goals   NutritionGoals     `json:"goals"`
}
