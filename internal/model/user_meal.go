package model

import "time"

// UserMeal records a user consuming a meal at a point in time. No snapshot of
// the meal's nutrient facts is taken, so later edits to the meal change
// historical totals. MealID becomes null when the referenced meal is deleted
// from the catalog (ON DELETE SET NULL).
type UserMeal struct {
	ID                uint      `gorm:"primaryKey"            json:"id"`
	UserID            uint      `gorm:"not null;index"        json:"user_id"`
	MealID            *uint     `gorm:"index"                 json:"meal_id"`
	ServingMultiplier float64   `gorm:"not null;default:1"    json:"serving_multiplier"`
	Notes             string    `gorm:"type:text"             json:"notes"`
	ConsumedAt        time.Time `gorm:"not null"              json:"consumed_at"`
	DateConsumed      time.Time `gorm:"type:date;not null"    json:"date_consumed"`
	CreatedAt         time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Meal *Meal `gorm:"foreignKey:MealID;constraint:OnDelete:SET NULL" json:"-"`
}

// TableName pins the table name.
func (UserMeal) TableName() string { return "user_meals" }

// SetConsumedAt sets the consumption timestamp and re-derives the redundant
// date column. Single derivation point keeps the two consistent.
func (um *UserMeal) SetConsumedAt(t time.Time) {
	um.ConsumedAt = t
	um.DateConsumed = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
