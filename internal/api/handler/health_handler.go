package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dbicalho1/TempleCals/internal/repository"
)

// HealthHandler reports service and datastore health.
type HealthHandler struct {
	db       *gorm.DB
	hallRepo repository.DiningHallRepository
}

// NewHealthHandler creates the HealthHandler.
func NewHealthHandler(db *gorm.DB, hallRepo repository.DiningHallRepository) *HealthHandler {
	return &HealthHandler{db: db, hallRepo: hallRepo}
}

// Check pings the datastore and reports the catalog size.
// GET /api/health
func (h *HealthHandler) Check(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":   "degraded",
			"database": "disconnected",
		})
		return
	}

	count, err := h.hallRepo.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":   "degraded",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"database":     "connected",
		"dining_halls": count,
	})
}
