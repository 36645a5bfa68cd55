package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tidsreg-be/internal/models"
	"tidsreg-be/internal/repository"
	"tidsreg-be/internal/service"
)

const (
	msgDeleteFailed = "Sletning fejlede"
	msgNothingToDel = "Ingen post at slette (forkert id eller bruger)"
)

type TimeEntryController struct {
	timeEntryService service.TimeEntryService
}

func NewTimeEntryController(timeEntryService service.TimeEntryService) *TimeEntryController {
	return &TimeEntryController{timeEntryService: timeEntryService}
}

// ListTimeEntries handles GET /api/time-entries
func (tc *TimeEntryController) ListTimeEntries(c *gin.Context) {
	dr, ok := bindRange(c)
	if !ok {
		return
	}

	entries, err := tc.timeEntryService.List(c.Request.Context(), dr)
	if err != nil {
		respondError(c, err, msgDBError)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CreateTimeEntry handles POST /api/time-entries
func (tc *TimeEntryController) CreateTimeEntry(c *gin.Context) {
	var req models.CreateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   msgInvalidBody,
			"details": err.Error(),
		})
		return
	}

	entry, err := tc.timeEntryService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, msgDBError)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// DeleteTimeEntry handles DELETE /api/time-entries/:id?user_id=N
func (tc *TimeEntryController) DeleteTimeEntry(c *gin.Context) {
	// Unparseable ids become 0 and are rejected by the service.
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var userID *int64
	if raw := c.Query("user_id"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			userID = &v
		}
	}

	err := tc.timeEntryService.Delete(c.Request.Context(), id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": msgNothingToDel})
		return
	}
	if err != nil {
		respondError(c, err, msgDeleteFailed)
		return
	}
	c.Status(http.StatusNoContent)
}
