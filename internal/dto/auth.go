package dto

// ── auth requests ──

// RegisterRequest creates a new account. Required-field and password-policy
// validation happens in the service so the first missing field is reported.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Optional goal overrides applied on top of the defaults
	DailyCalorieGoal *int     `json:"daily_calorie_goal" binding:"omitempty,gte=0"`
	DailyProteinGoal *float64 `json:"daily_protein_goal" binding:"omitempty,gte=0"`
	DailyCarbGoal    *float64 `json:"daily_carb_goal"    binding:"omitempty,gte=0"`
	DailyFatGoal     *float64 `json:"daily_fat_goal"     binding:"omitempty,gte=0"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ── auth responses ──

// TokenResponse carries a fresh bearer token and the account it belongs to.
type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expires_in"` // seconds
	User      UserResponse `json:"user"`
}
