package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/disiplinli/kocumnet-back/internal/db"
	"github.com/disiplinli/kocumnet-back/internal/models"
	"github.com/disiplinli/kocumnet-back/internal/timegate"
)

// todayResponse carries today's tasks plus everything the check-in UI
// needs: the gate is computed here, server-side, so clients only
// display it (and may tick the countdown locally between fetches).
type todayResponse struct {
	Date  string             `json:"date"`
	Tasks []models.DailyTask `json:"tasks"`

	CheckinDone             bool   `json:"checkin_done"`
	CheckinOpen             bool   `json:"checkin_open"`
	CheckinRemainingSeconds int    `json:"checkin_remaining_seconds"`
	CheckinCountdown        string `json:"checkin_countdown,omitempty"`

	Streak         int `json:"streak"`
	WeekCompliance int `json:"week_compliance"`
}

// GetToday godoc
// @Summary      Today's tasks and check-in state
// @Tags         today
// @Produce      json
// @Success      200  {object} todayResponse
// @Security     TokenAuth
// @Router       /api/student/today/ [get]
func GetToday(c *gin.Context) {
	now := nowFunc()
	today := timegate.Today(now)
	ctx := c.Request.Context()
	student := userID(c)

	if err := db.MaterializeDailyTasks(ctx, student, today, timegate.Weekday(now)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch today"})
		return
	}

	tasks, err := db.GetDailyTasks(ctx, student, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch today"})
		return
	}

	done, err := db.HasCheckIn(ctx, student, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch today"})
		return
	}

	u, err := db.GetUserByID(ctx, student)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch today"})
		return
	}

	streak, _ := db.CheckInStreak(ctx, student, today)
	compliance, _ := db.WeekCompliance(ctx, student, today, u.MinimumDayMinutes)

	c.JSON(http.StatusOK, todayResponse{
		Date:                    today.Format("2006-01-02"),
		Tasks:                   tasks,
		CheckinDone:             done,
		CheckinOpen:             timegate.Open(now),
		CheckinRemainingSeconds: timegate.RemainingSeconds(now),
		CheckinCountdown:        timegate.Countdown(now),
		Streak:                  streak,
		WeekCompliance:          compliance,
	})
}

// CompleteTaskRequest toggles one daily task; idempotent per task id.
type CompleteTaskRequest struct {
	TaskID         uint   `json:"task_id" binding:"required"`
	Completed      *bool  `json:"completed"`
	CompletionNote string `json:"completion_note"`
}

// CompleteTask godoc
// @Summary      Mark a daily task complete or incomplete
// @Tags         today
// @Accept       json
// @Produce      json
// @Param        body  body  CompleteTaskRequest  true  "Task toggle"
// @Success      200   {object} models.DailyTask
// @Security     TokenAuth
// @Router       /api/student/today/complete/ [post]
func CompleteTask(c *gin.Context) {
	var req CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := db.GetDailyTask(c.Request.Context(), userID(c), req.TaskID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}

	if completed {
		task.Status = models.TaskCompleted
		if task.CompletedAt == nil {
			now := nowFunc()
			task.CompletedAt = &now
		}
		if req.CompletionNote != "" {
			task.CompletionNote = req.CompletionNote
		}
	} else {
		task.Status = models.TaskPending
		task.CompletedAt = nil
		task.CompletionNote = ""
	}

	if err := db.SaveDailyTask(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}
	c.JSON(http.StatusOK, task)
}
