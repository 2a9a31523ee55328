package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dbicalho1/TempleCals/internal/model"
)

// UserMealRepository is the meal log data access interface. All reads preload
// the referenced meal (with its dining hall and category) so callers never
// traverse live object graphs.
type UserMealRepository interface {
	Create(ctx context.Context, entry *model.UserMeal) error
	GetByID(ctx context.Context, id uint) (*model.UserMeal, error)
	Update(ctx context.Context, entry *model.UserMeal) error
	Delete(ctx context.Context, id uint) error
	// ListByUser returns a user's entries, most recent consumed_at first,
	// optionally restricted to one date_consumed.
	ListByUser(ctx context.Context, userID uint, date *time.Time, limit int) ([]model.UserMeal, error)
	// ListByUserAndDate returns one day's entries, earliest first.
	ListByUserAndDate(ctx context.Context, userID uint, date time.Time) ([]model.UserMeal, error)
	// ListByUserBetween returns entries with date_consumed in [start, end),
	// earliest first.
	ListByUserBetween(ctx context.Context, userID uint, start, end time.Time) ([]model.UserMeal, error)
}

type userMealRepo struct {
	db *gorm.DB
}

// NewUserMealRepo creates the GORM implementation.
func NewUserMealRepo(db *gorm.DB) UserMealRepository {
	return &userMealRepo{db: db}
}

func (r *userMealRepo) Create(ctx context.Context, entry *model.UserMeal) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *userMealRepo) GetByID(ctx context.Context, id uint) (*model.UserMeal, error) {
	var entry model.UserMeal
	err := r.db.WithContext(ctx).
		Preload("Meal").
		Preload("Meal.DiningHall").
		Preload("Meal.Category").
		First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *userMealRepo) Update(ctx context.Context, entry *model.UserMeal) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *userMealRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.UserMeal{}, id).Error
}

func (r *userMealRepo) ListByUser(ctx context.Context, userID uint, date *time.Time, limit int) ([]model.UserMeal, error) {
	db := r.db.WithContext(ctx).
		Preload("Meal").
		Preload("Meal.DiningHall").
		Preload("Meal.Category").
		Where("user_id = ?", userID)

	if date != nil {
		db = db.Where("date_consumed = ?", date.Format("2006-01-02"))
	}

	var entries []model.UserMeal
	err := db.Order("consumed_at DESC").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *userMealRepo) ListByUserAndDate(ctx context.Context, userID uint, date time.Time) ([]model.UserMeal, error) {
	var entries []model.UserMeal
	err := r.db.WithContext(ctx).
		Preload("Meal").
		Preload("Meal.DiningHall").
		Preload("Meal.Category").
		Where("user_id = ? AND date_consumed = ?", userID, date.Format("2006-01-02")).
		Order("consumed_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *userMealRepo) ListByUserBetween(ctx context.Context, userID uint, start, end time.Time) ([]model.UserMeal, error) {
	var entries []model.UserMeal
	err := r.db.WithContext(ctx).
		Preload("Meal").
		Preload("Meal.DiningHall").
		Preload("Meal.Category").
		Where("user_id = ? AND date_consumed >= ? AND date_consumed < ?",
			userID, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("consumed_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
