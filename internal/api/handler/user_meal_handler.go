package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dbicalho1/TempleCals/internal/dto"
	"github.com/dbicalho1/TempleCals/internal/service"
	"github.com/dbicalho1/TempleCals/pkg/response"
)

// UserMealHandler serves the authenticated meal log endpoints.
type UserMealHandler struct {
	mealLogSvc service.MealLogService
	exportSvc  service.ExportService
}

// NewUserMealHandler creates the UserMealHandler.
func NewUserMealHandler(mealLogSvc service.MealLogService, exportSvc service.ExportService) *UserMealHandler {
	return &UserMealHandler{mealLogSvc: mealLogSvc, exportSvc: exportSvc}
}

// Log records a consumed meal for the caller.
// POST /api/user-meals/log
func (h *UserMealHandler) Log(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.LogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.mealLogSvc.LogMeal(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrMealNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// History returns the caller's log entries, newest first.
// GET /api/user-meals/history?date&limit
func (h *UserMealHandler) History(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.HistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	result, err := h.mealLogSvc.GetHistory(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// DailySummary returns one day's entries, totals and goals.
// GET /api/user-meals/daily/:date
func (h *UserMealHandler) DailySummary(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.mealLogSvc.GetDailySummary(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Update edits an owned log entry.
// PUT /api/user-meals/:id
func (h *UserMealHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.mealLogSvc.UpdateUserMeal(c.Request.Context(), userID, entryID, &req)
	if err != nil {
		h.writeEntryError(c, err)
		return
	}

	response.OK(c, result)
}

// Delete removes an owned log entry permanently.
// DELETE /api/user-meals/:id
func (h *UserMealHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.mealLogSvc.DeleteUserMeal(c.Request.Context(), userID, entryID); err != nil {
		h.writeEntryError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "meal log entry deleted"})
}

// Export streams the caller's month of entries as a spreadsheet.
// GET /api/user-meals/export?month=YYYY-MM
func (h *UserMealHandler) Export(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportMonth(c.Request.Context(), userID, c.Query("month"))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *UserMealHandler) writeEntryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUserMealNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrNotEntryOwner):
		response.Forbidden(c, err.Error())
	default:
		response.InternalError(c)
	}
}
