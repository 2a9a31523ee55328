package model

import "time"

// Meal is an individual menu item at a dining hall. Every meal belongs to
// exactly one dining hall and one category. Nutrient fields are nullable;
// aggregation treats missing values as zero.
type Meal struct {
	ID          uint   `gorm:"primaryKey"                 json:"id"`
	Name        string `gorm:"type:varchar(200);not null" json:"name"`
	Description string `gorm:"type:text"                  json:"description"`

	// Nutrition facts per single serving
	Calories *int     `json:"calories"`
	Protein  *float64 `json:"protein"` // grams
	Carbs    *float64 `json:"carbs"`   // grams
	Fat      *float64 `json:"fat"`     // grams
	Sodium   *float64 `json:"sodium"`  // mg

	Price       float64    `json:"price"`
	Allergens   StringList `gorm:"type:jsonb" json:"allergens"`
	DietaryTags StringList `gorm:"type:jsonb" json:"dietary_tags"`

	// Availability window, "HH:MM" local time
	AvailableStart *string `gorm:"type:varchar(5)"       json:"available_start"`
	AvailableEnd   *string `gorm:"type:varchar(5)"       json:"available_end"`
	IsAvailable    bool    `gorm:"not null;default:true" json:"is_available"`

	DiningHallID uint `gorm:"not null;index" json:"dining_hall_id"`
	CategoryID   uint `gorm:"not null;index" json:"category_id"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	DiningHall *DiningHall   `gorm:"foreignKey:DiningHallID" json:"-"`
	Category   *MealCategory `gorm:"foreignKey:CategoryID"   json:"-"`
}

// TableName pins the table name.
func (Meal) TableName() string { return "meals" }
