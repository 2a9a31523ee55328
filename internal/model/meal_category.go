package model

// MealCategory groups meals: Breakfast, Lunch, Dinner, Snacks, Desserts.
type MealCategory struct {
	ID          uint   `gorm:"primaryKey"                             json:"id"`
	Name        string `gorm:"type:varchar(50);not null;uniqueIndex"  json:"name"`
	Description string `gorm:"type:text"                              json:"description"`
}

// TableName pins the table name.
func (MealCategory) TableName() string { return "meal_categories" }
