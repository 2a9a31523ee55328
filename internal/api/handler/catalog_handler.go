package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dbicalho1/TempleCals/internal/dto"
	"github.com/dbicalho1/TempleCals/internal/service"
	"github.com/dbicalho1/TempleCals/pkg/response"
)

// CatalogHandler serves the public reference data endpoints.
type CatalogHandler struct {
	catalogSvc service.CatalogService
}

// NewCatalogHandler creates the CatalogHandler.
func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// ListDiningHalls returns all dining halls.
// GET /api/dining-halls
func (h *CatalogHandler) ListDiningHalls(c *gin.Context) {
	result, err := h.catalogSvc.ListDiningHalls(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// GetDiningHall returns one dining hall by id.
// GET /api/dining-halls/:id
func (h *CatalogHandler) GetDiningHall(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.catalogSvc.GetDiningHall(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDiningHallNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ListCategories returns all meal categories.
// GET /api/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	result, err := h.catalogSvc.ListCategories(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ListMeals returns available meals, optionally filtered.
// GET /api/meals?dining_hall_id&category_id&search
func (h *CatalogHandler) ListMeals(c *gin.Context) {
	var req dto.MealListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	result, err := h.catalogSvc.ListMeals(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// GetMeal returns one meal by id, available or not.
// GET /api/meals/:id
func (h *CatalogHandler) GetMeal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.catalogSvc.GetMeal(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
