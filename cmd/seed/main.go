// Command seed populates the database with Temple University dining data.
// It is idempotent: dining halls and categories are matched by name, and
// existing meals are wiped before reinserting the sample menu.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/dbicalho1/TempleCals/config"
	"github.com/dbicalho1/TempleCals/internal/model"
	"github.com/dbicalho1/TempleCals/pkg/database"
	"github.com/dbicalho1/TempleCals/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapLogger, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	if err := run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("seed failed", zap.Error(err))
	}
}

func run(cfg *config.Config, zapLogger *zap.Logger) error {
	db, err := database.NewDB(&cfg.Database, zapLogger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("unwrap database handle: %w", err)
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, zapLogger); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	halls := diningHalls()
	hallIDs := make(map[string]uint, len(halls))
	for i := range halls {
		hall := &halls[i]
		if err := db.WithContext(ctx).
			Where(model.DiningHall{Name: hall.Name}).
			Assign(map[string]interface{}{
				"location":    hall.Location,
				"description": hall.Description,
				"hours":       hall.Hours,
			}).
			FirstOrCreate(hall).Error; err != nil {
			return fmt.Errorf("seed dining hall %q: %w", hall.Name, err)
		}
		hallIDs[hall.Name] = hall.ID
	}
	zapLogger.Info("dining halls seeded", zap.Int("count", len(halls)))

	cats := mealCategories()
	catIDs := make(map[string]uint, len(cats))
	for i := range cats {
		cat := &cats[i]
		if err := db.WithContext(ctx).
			Where(model.MealCategory{Name: cat.Name}).
			Assign(map[string]interface{}{"description": cat.Description}).
			FirstOrCreate(cat).Error; err != nil {
			return fmt.Errorf("seed category %q: %w", cat.Name, err)
		}
		catIDs[cat.Name] = cat.ID
	}
	zapLogger.Info("meal categories seeded", zap.Int("count", len(cats)))

	// Replace the menu wholesale. Log entries keep their rows because the
	// meal reference nulls out on delete.
	if err := db.WithContext(ctx).Where("1 = 1").Delete(&model.Meal{}).Error; err != nil {
		return fmt.Errorf("clear meals: %w", err)
	}
	meals := sampleMeals(hallIDs, catIDs)
	if err := db.WithContext(ctx).Create(&meals).Error; err != nil {
		return fmt.Errorf("seed meals: %w", err)
	}
	zapLogger.Info("meals seeded", zap.Int("count", len(meals)))

	return nil
}

func diningHalls() []model.DiningHall {
	weekdayJH := map[string]interface{}{"breakfast": "7:00-10:30", "lunch": "11:00-16:00", "dinner": "17:00-21:00"}
	weekdayMorgan := map[string]interface{}{"breakfast": "7:30-10:00", "lunch": "11:00-15:00", "dinner": "17:00-20:00"}

	return []model.DiningHall{
		{
			Name:        "Johnson & Hardwick Hall",
			Location:    "1900 N 13th St, Philadelphia, PA 19122",
			Description: "Temple's main dining hall featuring multiple food stations",
			Hours: model.JSONMap{
				"monday":    weekdayJH,
				"tuesday":   weekdayJH,
				"wednesday": weekdayJH,
				"thursday":  weekdayJH,
				"friday":    map[string]interface{}{"breakfast": "7:00-10:30", "lunch": "11:00-16:00", "dinner": "17:00-20:00"},
				"saturday":  map[string]interface{}{"brunch": "10:00-14:00", "dinner": "17:00-20:00"},
				"sunday":    map[string]interface{}{"brunch": "10:00-14:00", "dinner": "17:00-21:00"},
			},
		},
		{
			Name:        "Morgan's Hall",
			Location:    "1301 Cecil B Moore Ave, Philadelphia, PA 19122",
			Description: "Convenient dining location in Morgan Hall North",
			Hours: model.JSONMap{
				"monday":    weekdayMorgan,
				"tuesday":   weekdayMorgan,
				"wednesday": weekdayMorgan,
				"thursday":  weekdayMorgan,
				"friday":    map[string]interface{}{"breakfast": "7:30-10:00", "lunch": "11:00-15:00", "dinner": "17:00-19:00"},
				"saturday":  map[string]interface{}{"closed": true},
				"sunday":    map[string]interface{}{"dinner": "17:00-20:00"},
			},
		},
		{
			Name:        "The Market at Liacouras Walk",
			Location:    "Liacouras Walk, Philadelphia, PA 19122",
			Description: "Food court style dining with multiple vendors",
			Hours: model.JSONMap{
				"monday":    map[string]interface{}{"open": "8:00-22:00"},
				"tuesday":   map[string]interface{}{"open": "8:00-22:00"},
				"wednesday": map[string]interface{}{"open": "8:00-22:00"},
				"thursday":  map[string]interface{}{"open": "8:00-22:00"},
				"friday":    map[string]interface{}{"open": "8:00-20:00"},
				"saturday":  map[string]interface{}{"open": "10:00-20:00"},
				"sunday":    map[string]interface{}{"open": "10:00-22:00"},
			},
		},
	}
}

func mealCategories() []model.MealCategory {
	return []model.MealCategory{
		{Name: "Breakfast", Description: "Morning meals served until 10:30 AM"},
		{Name: "Lunch", Description: "Midday meals served 11:00 AM - 4:00 PM"},
		{Name: "Dinner", Description: "Evening meals served after 5:00 PM"},
		{Name: "Snacks", Description: "Light snacks and beverages"},
		{Name: "Desserts", Description: "Sweet treats and desserts"},
	}
}

func sampleMeals(halls, cats map[string]uint) []model.Meal {
	intPtr := func(v int) *int { return &v }
	floatPtr := func(v float64) *float64 { return &v }
	strPtr := func(v string) *string { return &v }

	jh := halls["Johnson & Hardwick Hall"]
	morgans := halls["Morgan's Hall"]
	market := halls["The Market at Liacouras Walk"]

	return []model.Meal{
		{
			Name:        "Scrambled Eggs",
			Description: "Fresh scrambled eggs made to order",
			Calories:    intPtr(140), Protein: floatPtr(12), Carbs: floatPtr(2), Fat: floatPtr(10), Sodium: floatPtr(180),
			Allergens: model.StringList{"eggs"}, DietaryTags: model.StringList{"vegetarian"},
			AvailableStart: strPtr("07:00"), AvailableEnd: strPtr("10:30"), IsAvailable: true,
			DiningHallID: jh, CategoryID: cats["Breakfast"],
		},
		{
			Name:        "Pancakes",
			Description: "Fluffy buttermilk pancakes served with syrup",
			Calories:    intPtr(220), Protein: floatPtr(6), Carbs: floatPtr(28), Fat: floatPtr(8), Sodium: floatPtr(400),
			Allergens: model.StringList{"gluten", "eggs", "dairy"}, DietaryTags: model.StringList{"vegetarian"},
			AvailableStart: strPtr("07:00"), AvailableEnd: strPtr("10:30"), IsAvailable: true,
			DiningHallID: jh, CategoryID: cats["Breakfast"],
		},
		{
			Name:        "Grilled Chicken Breast",
			Description: "Seasoned grilled chicken breast with herbs",
			Calories:    intPtr(185), Protein: floatPtr(35), Carbs: floatPtr(0), Fat: floatPtr(4), Sodium: floatPtr(75),
			Allergens: model.StringList{}, DietaryTags: model.StringList{"gluten-free"},
			AvailableStart: strPtr("11:00"), AvailableEnd: strPtr("16:00"), IsAvailable: true,
			DiningHallID: jh, CategoryID: cats["Lunch"],
		},
		{
			Name:        "Caesar Salad",
			Description: "Romaine lettuce with Caesar dressing, croutons, and parmesan",
			Calories:    intPtr(170), Protein: floatPtr(4), Carbs: floatPtr(8), Fat: floatPtr(14), Sodium: floatPtr(350),
			Allergens: model.StringList{"dairy", "gluten"}, DietaryTags: model.StringList{"vegetarian"},
			AvailableStart: strPtr("11:00"), AvailableEnd: strPtr("16:00"), IsAvailable: true,
			DiningHallID: jh, CategoryID: cats["Lunch"],
		},
		{
			Name:        "Beef Stir Fry",
			Description: "Tender beef with mixed vegetables in savory sauce",
			Calories:    intPtr(280), Protein: floatPtr(22), Carbs: floatPtr(18), Fat: floatPtr(12), Sodium: floatPtr(890),
			Allergens: model.StringList{"soy"}, DietaryTags: model.StringList{},
			AvailableStart: strPtr("17:00"), AvailableEnd: strPtr("21:00"), IsAvailable: true,
			DiningHallID: jh, CategoryID: cats["Dinner"],
		},
		{
			Name:        "Vegetarian Pasta",
			Description: "Penne pasta with marinara sauce and fresh vegetables",
			Calories:    intPtr(320), Protein: floatPtr(12), Carbs: floatPtr(58), Fat: floatPtr(6), Sodium: floatPtr(480),
			Allergens: model.StringList{"gluten"}, DietaryTags: model.StringList{"vegetarian", "vegan"},
			AvailableStart: strPtr("17:00"), AvailableEnd: strPtr("21:00"), IsAvailable: true,
			DiningHallID: jh, CategoryID: cats["Dinner"],
		},
		{
			Name:        "Turkey Sandwich",
			Description: "Sliced turkey with lettuce, tomato on whole wheat bread",
			Calories:    intPtr(290), Protein: floatPtr(25), Carbs: floatPtr(28), Fat: floatPtr(8), Sodium: floatPtr(720),
			Allergens: model.StringList{"gluten"}, DietaryTags: model.StringList{},
			AvailableStart: strPtr("11:00"), AvailableEnd: strPtr("15:00"), IsAvailable: true,
			DiningHallID: morgans, CategoryID: cats["Lunch"],
		},
		{
			Name:        "Chicken Quesadilla",
			Description: "Grilled chicken and cheese in a flour tortilla",
			Calories:    intPtr(380), Protein: floatPtr(28), Carbs: floatPtr(32), Fat: floatPtr(16), Sodium: floatPtr(680),
			Allergens: model.StringList{"dairy", "gluten"}, DietaryTags: model.StringList{},
			AvailableStart: strPtr("17:00"), AvailableEnd: strPtr("20:00"), IsAvailable: true,
			DiningHallID: morgans, CategoryID: cats["Dinner"],
		},
		{
			Name:        "Fresh Fruit Cup",
			Description: "Seasonal fresh fruit medley",
			Calories:    intPtr(80), Protein: floatPtr(1), Carbs: floatPtr(20), Fat: floatPtr(0), Sodium: floatPtr(5),
			Price:     3.99,
			Allergens: model.StringList{}, DietaryTags: model.StringList{"vegan", "gluten-free"},
			AvailableStart: strPtr("08:00"), AvailableEnd: strPtr("22:00"), IsAvailable: true,
			DiningHallID: market, CategoryID: cats["Snacks"],
		},
		{
			Name:        "Chocolate Chip Cookie",
			Description: "Freshly baked chocolate chip cookie",
			Calories:    intPtr(160), Protein: floatPtr(2), Carbs: floatPtr(22), Fat: floatPtr(7), Sodium: floatPtr(95),
			Price:     1.99,
			Allergens: model.StringList{"gluten", "dairy", "eggs"}, DietaryTags: model.StringList{"vegetarian"},
			AvailableStart: strPtr("08:00"), AvailableEnd: strPtr("22:00"), IsAvailable: true,
			DiningHallID: market, CategoryID: cats["Desserts"],
		},
	}
}
