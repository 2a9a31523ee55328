package service

import (
	"go.uber.org/zap"

	"github.com/dbicalho1/TempleCals/internal/repository"
	"github.com/dbicalho1/TempleCals/pkg/jwt"
	"github.com/dbicalho1/TempleCals/pkg/redis"
)

// Service aggregates all services.
type Service struct {
	Catalog CatalogService
	Auth    AuthService
	User    UserService
	MealLog MealLogService
	Export  ExportService
}

// NewService wires the service implementations.
func NewService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Catalog: NewCatalogService(repo, logger),
		Auth:    NewAuthService(repo, jwtMgr, rdb, logger),
		User:    NewUserService(repo, logger),
		MealLog: NewMealLogService(repo, logger),
		Export:  NewExportService(repo, logger),
	}
}
