package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/disiplinli/kocumnet-back/internal/db"
	"github.com/disiplinli/kocumnet-back/internal/models"
)

// GetLessons godoc
// @Summary      List online lessons
// @Tags         lessons
// @Produce      json
// @Success      200  {array} models.OnlineLesson
// @Security     TokenAuth
// @Router       /api/lessons/ [get]
func GetLessons(c *gin.Context) {
	lessons, err := db.GetLessons(c.Request.Context(), userID(c), c.GetString("role"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch lessons"})
		return
	}
	c.JSON(http.StatusOK, lessons)
}

// CreateLessonRequest books a lesson; the meeting URL is generated when
// absent.
type CreateLessonRequest struct {
	StudentID       uint   `json:"student_id" binding:"required"`
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	ScheduledAt     string `json:"scheduled_at" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=10,max=180"`
	MeetingURL      string `json:"meeting_url"`
}

// CreateLesson godoc
// @Summary      Book an online lesson (coach only)
// @Tags         lessons
// @Accept       json
// @Produce      json
// @Param        body  body  CreateLessonRequest  true  "Lesson"
// @Success      200   {object} models.OnlineLesson
// @Failure      400   {object} map[string]string
// @Security     TokenAuth
// @Router       /api/lessons/create/ [post]
func CreateLesson(c *gin.Context) {
	var req CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	at, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scheduled_at"})
		return
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = 40
	}
	meetingURL := req.MeetingURL
	if meetingURL == "" {
		meetingURL = "https://meet.kocum.net/" + uuid.NewString()
	}

	l := models.OnlineLesson{
		StudentID:       req.StudentID,
		CoachID:         userID(c),
		Title:           req.Title,
		Description:     req.Description,
		ScheduledAt:     at,
		DurationMinutes: duration,
		MeetingURL:      meetingURL,
		Status:          models.LessonScheduled,
	}
	if err := db.CreateLesson(c.Request.Context(), &l); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lesson"})
		return
	}
	c.JSON(http.StatusOK, l)
}

// UpdateLessonRequest edits a scheduled lesson in place.
type UpdateLessonRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	ScheduledAt     string `json:"scheduled_at"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=10,max=180"`
	MeetingURL      string `json:"meeting_url"`
	Notes           string `json:"notes"`
}

// UpdateLesson godoc
// @Summary      Edit a lesson
// @Tags         lessons
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "Lesson ID"
// @Param        body  body  UpdateLessonRequest  true  "Fields"
// @Success      200   {object} models.OnlineLesson
// @Security     TokenAuth
// @Router       /api/lessons/{id}/update/ [put]
func UpdateLesson(c *gin.Context) {
	l, ok := lessonForWrite(c)
	if !ok {
		return
	}

	var req UpdateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Title != "" {
		l.Title = req.Title
	}
	if req.Description != "" {
		l.Description = req.Description
	}
	if req.ScheduledAt != "" {
		at, err := time.Parse(time.RFC3339, req.ScheduledAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scheduled_at"})
			return
		}
		l.ScheduledAt = at
	}
	if req.DurationMinutes != 0 {
		l.DurationMinutes = req.DurationMinutes
	}
	if req.MeetingURL != "" {
		l.MeetingURL = req.MeetingURL
	}
	if req.Notes != "" {
		l.Notes = req.Notes
	}

	if err := db.SaveLesson(c.Request.Context(), l); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lesson"})
		return
	}
	c.JSON(http.StatusOK, l)
}

// CompleteLesson godoc
// @Summary      Mark a lesson completed
// @Tags         lessons
// @Produce      json
// @Param        id  path  int  true  "Lesson ID"
// @Success      200  {object} models.OnlineLesson
// @Security     TokenAuth
// @Router       /api/lessons/{id}/complete/ [post]
func CompleteLesson(c *gin.Context) {
	setLessonStatus(c, models.LessonCompleted)
}

// CancelLesson godoc
// @Summary      Cancel a lesson
// @Tags         lessons
// @Produce      json
// @Param        id  path  int  true  "Lesson ID"
// @Success      200  {object} models.OnlineLesson
// @Security     TokenAuth
// @Router       /api/lessons/{id}/cancel/ [post]
func CancelLesson(c *gin.Context) {
	setLessonStatus(c, models.LessonCancelled)
}

// DeleteLesson godoc
// @Summary      Delete a lesson
// @Tags         lessons
// @Produce      json
// @Param        id  path  int  true  "Lesson ID"
// @Success      200  {object} map[string]string
// @Security     TokenAuth
// @Router       /api/lessons/{id}/delete/ [delete]
func DeleteLesson(c *gin.Context) {
	l, ok := lessonForWrite(c)
	if !ok {
		return
	}
	if err := db.DeleteLesson(c.Request.Context(), l.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lesson"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lesson deleted"})
}

func setLessonStatus(c *gin.Context, status string) {
	l, ok := lessonForWrite(c)
	if !ok {
		return
	}
	l.Status = status
	if err := db.SaveLesson(c.Request.Context(), l); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lesson"})
		return
	}
	c.JSON(http.StatusOK, l)
}

func lessonForWrite(c *gin.Context) (*models.OnlineLesson, bool) {
	id, ok := pathID(c)
	if !ok {
		return nil, false
	}
	l, err := db.GetLesson(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		return nil, false
	}
	if l.CoachID != userID(c) && l.StudentID != userID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return nil, false
	}
	return l, true
}
