package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dbicalho1/TempleCals/internal/model"
)

// DiningHallRepository is the dining hall data access interface.
type DiningHallRepository interface {
	Create(ctx context.Context, hall *model.DiningHall) error
	GetByID(ctx context.Context, id uint) (*model.DiningHall, error)
	GetByName(ctx context.Context, name string) (*model.DiningHall, error)
	List(ctx context.Context) ([]model.DiningHall, error)
	Count(ctx context.Context) (int64, error)
}

type diningHallRepo struct {
	db *gorm.DB
}

// NewDiningHallRepo creates the GORM implementation.
func NewDiningHallRepo(db *gorm.DB) DiningHallRepository {
	return &diningHallRepo{db: db}
}

func (r *diningHallRepo) Create(ctx context.Context, hall *model.DiningHall) error {
	return r.db.WithContext(ctx).Create(hall).Error
}

func (r *diningHallRepo) GetByID(ctx context.Context, id uint) (*model.DiningHall, error) {
	var hall model.DiningHall
	err := r.db.WithContext(ctx).First(&hall, id).Error
	if err != nil {
		return nil, err
	}
	return &hall, nil
}

func (r *diningHallRepo) GetByName(ctx context.Context, name string) (*model.DiningHall, error) {
	var hall model.DiningHall
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&hall).Error
	if err != nil {
		return nil, err
	}
	return &hall, nil
}

func (r *diningHallRepo) List(ctx context.Context) ([]model.DiningHall, error) {
	var halls []model.DiningHall
	err := r.db.WithContext(ctx).Order("name ASC").Find(&halls).Error
	if err != nil {
		return nil, err
	}
	return halls, nil
}

func (r *diningHallRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.DiningHall{}).Count(&n).Error
	return n, err
}
