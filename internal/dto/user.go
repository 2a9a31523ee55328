package dto

// ── user requests ──

// UpdateProfileRequest applies a partial profile update. Pointer fields
// distinguish absent from zero. When AutoCalculate is true the nutrition
// goals are recomputed from the profile and any explicit goal fields in the
// same request are ignored.
type UpdateProfileRequest struct {
	Age           *int     `json:"age"            binding:"omitempty,gte=13,lte=120"`
	Weight        *float64 `json:"weight"         binding:"omitempty,gt=0"`
	Height        *float64 `json:"height"         binding:"omitempty,gt=0"`
	Gender        *string  `json:"gender"         binding:"omitempty,max=20"`
	ActivityLevel *string  `json:"activity_level" binding:"omitempty,max=20"`
	Goal          *string  `json:"goal"           binding:"omitempty,max=20"`

	AutoCalculate bool `json:"auto_calculate"`

	DailyCalorieGoal *int     `json:"daily_calorie_goal" binding:"omitempty,gte=0"`
	DailyProteinGoal *float64 `json:"daily_protein_goal" binding:"omitempty,gte=0"`
	DailyCarbGoal    *float64 `json:"daily_carb_goal"    binding:"omitempty,gte=0"`
	DailyFatGoal     *float64 `json:"daily_fat_goal"     binding:"omitempty,gte=0"`
}

// ── user responses ──

// UserResponse is the public view of an account. Never carries credential
// material.
type UserResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	DailyCalorieGoal int     `json:"daily_calorie_goal"`
	DailyProteinGoal float64 `json:"daily_protein_goal"`
	DailyCarbGoal    float64 `json:"daily_carb_goal"`
	DailyFatGoal     float64 `json:"daily_fat_goal"`

	Age           *int     `json:"age,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Height        *float64 `json:"height,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	ActivityLevel *string  `json:"activity_level,omitempty"`
	Goal          *string  `json:"goal,omitempty"`

	CreatedAt string  `json:"created_at"`
	LastLogin *string `json:"last_login"`
}

// MacroRecommendation is the calculator's output: a daily calorie target and
// a macro split consistent with it.
type MacroRecommendation struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"` // grams
	Carbs    float64 `json:"carbs"`   // grams
	Fat      float64 `json:"fat"`     // grams
}

// ProfileUpdateResponse returns the updated profile together with the freshly
// computed recommendation, applied or not, so the caller can compare.
type ProfileUpdateResponse struct {
	User              UserResponse         `json:"user"`
	RecommendedMacros *MacroRecommendation `json:"recommended_macros"`
}

// NutritionGoals is the caller's stored daily goals, returned alongside the
// daily summary.
type NutritionGoals struct {
	DailyCalorieGoal int     `json:"daily_calorie_goal"`
	DailyProteinGoal float64 `json:"daily_protein_goal"`
	DailyCarbGoal    float64 `json:"daily_carb_goal"`
	DailyFatGoal     float64 `json:"daily_fat_goal"`
}
