package handler

import (
	"gorm.io/gorm"

	"github.com/dbicalho1/TempleCals/internal/repository"
	"github.com/dbicalho1/TempleCals/internal/service"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Catalog  *CatalogHandler
	Auth     *AuthHandler
	UserMeal *UserMealHandler
	Health   *HealthHandler
}

// NewHandler wires the handlers.
func NewHandler(svc *service.Service, repo *repository.Repository, db *gorm.DB) *Handler {
	return &Handler{
		Catalog:  NewCatalogHandler(svc.Catalog),
		Auth:     NewAuthHandler(svc.Auth, svc.User),
		UserMeal: NewUserMealHandler(svc.MealLog, svc.Export),
		Health:   NewHealthHandler(db, repo.DiningHall),
	}
}
