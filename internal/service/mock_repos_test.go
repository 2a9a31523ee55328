package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/dbicalho1/TempleCals/internal/model"
	"github.com/dbicalho1/TempleCals/internal/repository"
)

// ── Mock DiningHallRepository ──

type mockDiningHallRepo struct {
	halls  map[uint]*model.DiningHall
	nextID uint
}

func newMockDiningHallRepo() *mockDiningHallRepo {
	return &mockDiningHallRepo{halls: make(map[uint]*model.DiningHall), nextID: 1}
}

func (m *mockDiningHallRepo) Create(_ context.Context, hall *model.DiningHall) error {
	if hall.ID == 0 {
		hall.ID = m.nextID
		m.nextID++
	}
	m.halls[hall.ID] = hall
	return nil
}

func (m *mockDiningHallRepo) GetByID(_ context.Context, id uint) (*model.DiningHall, error) {
	if h, ok := m.halls[id]; ok {
		return h, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDiningHallRepo) GetByName(_ context.Context, name string) (*model.DiningHall, error) {
	for _, h := range m.halls {
		if h.Name == name {
			return h, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDiningHallRepo) List(_ context.Context) ([]model.DiningHall, error) {
	result := make([]model.DiningHall, 0, len(m.halls))
	for _, h := range m.halls {
		result = append(result, *h)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockDiningHallRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.halls)), nil
}

// ── Mock MealCategoryRepository ──

type mockMealCategoryRepo struct {
	categories map[uint]*model.MealCategory
	nextID     uint
}

func newMockMealCategoryRepo() *mockMealCategoryRepo {
	return &mockMealCategoryRepo{categories: make(map[uint]*model.MealCategory), nextID: 1}
}

func (m *mockMealCategoryRepo) Create(_ context.Context, category *model.MealCategory) error {
	if category.ID == 0 {
		category.ID = m.nextID
		m.nextID++
	}
	m.categories[category.ID] = category
	return nil
}

func (m *mockMealCategoryRepo) GetByID(_ context.Context, id uint) (*model.MealCategory, error) {
	if c, ok := m.categories[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMealCategoryRepo) GetByName(_ context.Context, name string) (*model.MealCategory, error) {
	for _, c := range m.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMealCategoryRepo) List(_ context.Context) ([]model.MealCategory, error) {
	result := make([]model.MealCategory, 0, len(m.categories))
	for _, c := range m.categories {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock MealRepository ──

type mockMealRepo struct {
	meals  map[uint]*model.Meal
	nextID uint
}

func newMockMealRepo() *mockMealRepo {
	return &mockMealRepo{meals: make(map[uint]*model.Meal), nextID: 1}
}

func (m *mockMealRepo) Create(_ context.Context, meal *model.Meal) error {
	if meal.ID == 0 {
		meal.ID = m.nextID
		m.nextID++
	}
	m.meals[meal.ID] = meal
	return nil
}

func (m *mockMealRepo) GetByID(_ context.Context, id uint) (*model.Meal, error) {
	if meal, ok := m.meals[id]; ok {
		return meal, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMealRepo) ListAvailable(_ context.Context, filters *repository.MealFilters) ([]model.Meal, error) {
	var result []model.Meal
	for _, meal := range m.meals {
		if !meal.IsAvailable {
			continue
		}
		if filters != nil {
			if filters.DiningHallID != 0 && meal.DiningHallID != filters.DiningHallID {
				continue
			}
			if filters.CategoryID != 0 && meal.CategoryID != filters.CategoryID {
				continue
			}
			if s := strings.TrimSpace(filters.Search); s != "" &&
				!strings.Contains(strings.ToLower(meal.Name), strings.ToLower(s)) {
				continue
			}
		}
		result = append(result, *meal)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.ID] = user
	return nil
}

// ── Mock UserMealRepository ──

type mockUserMealRepo struct {
	entries map[uint]*model.UserMeal
	nextID  uint
}

func newMockUserMealRepo() *mockUserMealRepo {
	return &mockUserMealRepo{entries: make(map[uint]*model.UserMeal), nextID: 1}
}

func (m *mockUserMealRepo) Create(_ context.Context, entry *model.UserMeal) error {
	if entry.ID == 0 {
		entry.ID = m.nextID
		m.nextID++
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *mockUserMealRepo) GetByID(_ context.Context, id uint) (*model.UserMeal, error) {
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserMealRepo) Update(_ context.Context, entry *model.UserMeal) error {
	m.entries[entry.ID] = entry
	return nil
}

func (m *mockUserMealRepo) Delete(_ context.Context, id uint) error {
	delete(m.entries, id)
	return nil
}

func (m *mockUserMealRepo) ListByUser(_ context.Context, userID uint, date *time.Time, limit int) ([]model.UserMeal, error) {
	var result []model.UserMeal
	for _, e := range m.entries {
		if e.UserID != userID {
			continue
		}
		if date != nil && !sameDate(e.DateConsumed, *date) {
			continue
		}
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ConsumedAt.After(result[j].ConsumedAt) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockUserMealRepo) ListByUserAndDate(_ context.Context, userID uint, date time.Time) ([]model.UserMeal, error) {
	var result []model.UserMeal
	for _, e := range m.entries {
		if e.UserID == userID && sameDate(e.DateConsumed, date) {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ConsumedAt.Before(result[j].ConsumedAt) })
	return result, nil
}

func (m *mockUserMealRepo) ListByUserBetween(_ context.Context, userID uint, start, end time.Time) ([]model.UserMeal, error) {
	var result []model.UserMeal
	for _, e := range m.entries {
		d := e.DateConsumed.Format("2006-01-02")
		if e.UserID == userID && d >= start.Format("2006-01-02") && d < end.Format("2006-01-02") {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ConsumedAt.Before(result[j].ConsumedAt) })
	return result, nil
}

func sameDate(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

// ── helpers shared by the service tests ──

func newMockRepository() *repository.Repository {
	return &repository.Repository{
		DiningHall:   newMockDiningHallRepo(),
		MealCategory: newMockMealCategoryRepo(),
		Meal:         newMockMealRepo(),
		User:         newMockUserRepo(),
		UserMeal:     newMockUserMealRepo(),
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
