package model

import "time"

// Default nutrition goals applied at registration.
const (
	DefaultCalorieGoal = 2000
	DefaultProteinGoal = 150.0
	DefaultCarbGoal    = 250.0
	DefaultFatGoal     = 65.0
)

// User is a registered account. Email is normalized to lowercase at write
// time and unique. The password hash is never serialized.
type User struct {
	ID           uint   `gorm:"primaryKey"                             json:"id"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"             json:"-"`
	FirstName    string `gorm:"type:varchar(100);not null"             json:"first_name"`
	LastName     string `gorm:"type:varchar(100);not null"             json:"last_name"`

	// Daily nutrition goals
	DailyCalorieGoal int     `gorm:"not null;default:2000" json:"daily_calorie_goal"`
	DailyProteinGoal float64 `gorm:"not null;default:150"  json:"daily_protein_goal"`
	DailyCarbGoal    float64 `gorm:"not null;default:250"  json:"daily_carb_goal"`
	DailyFatGoal     float64 `gorm:"not null;default:65"   json:"daily_fat_goal"`

	// Optional profile attributes feeding the macro calculator
	Age           *int     `json:"age"`
	Weight        *float64 `json:"weight"` // kg
	Height        *float64 `json:"height"` // cm
	Gender        *string  `gorm:"type:varchar(20)" json:"gender"`
	ActivityLevel *string  `gorm:"type:varchar(20)" json:"activity_level"`
	Goal          *string  `gorm:"type:varchar(20)" json:"goal"`

	CreatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}

// TableName pins the table name.
func (User) TableName() string { return "users" }
