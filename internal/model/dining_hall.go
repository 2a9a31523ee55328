package model

import "time"

// DiningHall is a dining location on campus, such as Johnson & Hardwick Hall.
// Reference data: created by the seeder, rarely mutated, never deleted.
type DiningHall struct {
	ID          uint      `gorm:"primaryKey"                              json:"id"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex"  json:"name"`
	Location    string    `gorm:"type:varchar(200)"                       json:"location"`
	Description string    `gorm:"type:text"                               json:"description"`
	Hours       JSONMap   `gorm:"type:jsonb"                              json:"hours"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"      json:"created_at"`
}

// TableName pins the table name.
func (DiningHall) TableName() string { return "dining_halls" }
