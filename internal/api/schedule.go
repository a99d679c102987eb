package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/disiplinli/kocumnet-back/internal/db"
	"github.com/disiplinli/kocumnet-back/internal/models"
)

// GetSchedule godoc
// @Summary      Weekly schedule grid entries
// @Tags         schedule
// @Produce      json
// @Success      200  {array} models.ScheduleEntry
// @Security     TokenAuth
// @Router       /api/schedule/ [get]
func GetSchedule(c *gin.Context) {
	entries, err := db.GetScheduleEntries(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedule"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// AddScheduleEntryRequest adds one block to the grid.
type AddScheduleEntryRequest struct {
	DayOfWeek *int   `json:"day_of_week" binding:"required,min=0,max=6"`
	StartTime string `json:"start_time" binding:"required,len=5"`
	EndTime   string `json:"end_time" binding:"required,len=5"`
	Title     string `json:"title" binding:"required"`
}

// AddScheduleEntry godoc
// @Summary      Add a schedule block
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        body  body  AddScheduleEntryRequest  true  "Block"
// @Success      200   {object} models.ScheduleEntry
// @Security     TokenAuth
// @Router       /api/schedule/add/ [post]
func AddScheduleEntry(c *gin.Context) {
	var req AddScheduleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	e := models.ScheduleEntry{
		StudentID: userID(c),
		DayOfWeek: *req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Title:     req.Title,
	}
	if err := db.CreateScheduleEntry(c.Request.Context(), &e); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add entry"})
		return
	}
	c.JSON(http.StatusOK, e)
}

// DeleteScheduleEntry godoc
// @Summary      Delete a schedule block
// @Tags         schedule
// @Produce      json
// @Param        id  path  int  true  "Entry ID"
// @Success      200  {object} map[string]string
// @Security     TokenAuth
// @Router       /api/schedule/{id}/delete/ [delete]
func DeleteScheduleEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := db.DeleteScheduleEntry(c.Request.Context(), userID(c), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted"})
}
