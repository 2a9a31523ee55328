package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dbicalho1/TempleCals/config"
	"github.com/dbicalho1/TempleCals/internal/api/handler"
	"github.com/dbicalho1/TempleCals/internal/api/middleware"
	"github.com/dbicalho1/TempleCals/pkg/jwt"
	"github.com/dbicalho1/TempleCals/pkg/redis"
)

// Setup builds the gin engine with all middleware and routes registered.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health.Check)

		// Public catalog, no authentication required.
		api.GET("/dining-halls", h.Catalog.ListDiningHalls)
		api.GET("/dining-halls/:id", h.Catalog.GetDiningHall)
		api.GET("/categories", h.Catalog.ListCategories)
		api.GET("/meals", h.Catalog.ListMeals)
		api.GET("/meals/:id", h.Catalog.GetMeal)

		auth := api.Group("/auth")
		{
			// Credential endpoints carry a tighter rate limit.
			limited := auth.Group("", middleware.RateLimit(rdb, 10, time.Minute))
			{
				limited.POST("/register", h.Auth.Register)
				limited.POST("/login", h.Auth.Login)
			}

			authed := auth.Group("", middleware.JWTAuth(jwtMgr, rdb))
			{
				authed.GET("/me", h.Auth.GetCurrentUser)
				authed.PUT("/profile", h.Auth.UpdateProfile)
				authed.POST("/logout", h.Auth.Logout)
			}
		}

		userMeals := api.Group("/user-meals", middleware.JWTAuth(jwtMgr, rdb))
		{
			userMeals.POST("/log", h.UserMeal.Log)
			userMeals.GET("/history", h.UserMeal.History)
			userMeals.GET("/daily/:date", h.UserMeal.DailySummary)
			userMeals.GET("/export", h.UserMeal.Export)
			userMeals.PUT("/:id", h.UserMeal.Update)
			userMeals.DELETE("/:id", h.UserMeal.Delete)
		}
	}

	return r
}
