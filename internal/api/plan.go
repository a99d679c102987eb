package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/disiplinli/kocumnet-back/internal/db"
	"github.com/disiplinli/kocumnet-back/internal/models"
)

// planDay is one of the 7 Monday-first buckets of the plan response.
type planDay struct {
	DayOfWeek int                     `json:"day_of_week"`
	Tasks     []models.WeeklyPlanTask `json:"tasks"`
	CanAdd    bool                    `json:"can_add"`
}

type planSummary struct {
	TaskCount      int `json:"task_count"`
	TotalMinutes   int `json:"total_minutes"`
	TotalQuestions int `json:"total_questions"`
}

type planResponse struct {
	Days              []planDay   `json:"days"`
	MinimumDayMinutes int         `json:"minimum_day_minutes"`
	Summary           planSummary `json:"summary"`
}

// CanAddTask is the per-day cap rule: under MaxTasksPerDay tasks only.
func CanAddTask(existing int) bool {
	return existing < models.MaxTasksPerDay
}

// GetPlan godoc
// @Summary      Weekly plan with per-day buckets and totals
// @Tags         plan
// @Produce      json
// @Success      200  {object} planResponse
// @Security     TokenAuth
// @Router       /api/student/plan/ [get]
func GetPlan(c *gin.Context) {
	tasks, err := db.GetPlanTasks(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plan"})
		return
	}

	u, err := db.GetUserByID(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plan"})
		return
	}

	days := make([]planDay, 7)
	for i := range days {
		days[i] = planDay{DayOfWeek: i, Tasks: []models.WeeklyPlanTask{}}
	}

	var summary planSummary
	for _, t := range tasks {
		if t.DayOfWeek < 0 || t.DayOfWeek > 6 {
			continue
		}
		days[t.DayOfWeek].Tasks = append(days[t.DayOfWeek].Tasks, t)
		summary.TaskCount++
		summary.TotalMinutes += t.DurationTarget
		summary.TotalQuestions += t.QuestionTarget
	}
	for i := range days {
		days[i].CanAdd = CanAddTask(len(days[i].Tasks))
	}

	c.JSON(http.StatusOK, planResponse{
		Days:              days,
		MinimumDayMinutes: u.MinimumDayMinutes,
		Summary:           summary,
	})
}

// AddPlanTaskRequest is the add-task body; category defaults to TYT.
type AddPlanTaskRequest struct {
	DayOfWeek      *int   `json:"day_of_week" binding:"required,min=0,max=6"`
	Subject        string `json:"subject" binding:"required"`
	Topic          string `json:"topic"`
	Category       string `json:"category" binding:"omitempty,oneof=TYT AYT"`
	DurationTarget int    `json:"duration_target" binding:"min=0"`
	QuestionTarget int    `json:"question_target" binding:"min=0"`
}

// AddPlanTask godoc
// @Summary      Add a weekly plan task
// @Tags         plan
// @Accept       json
// @Produce      json
// @Param        body  body  AddPlanTaskRequest  true  "Task"
// @Success      200   {object} models.WeeklyPlanTask
// @Failure      400   {object} map[string]string
// @Security     TokenAuth
// @Router       /api/student/plan/add/ [post]
func AddPlanTask(c *gin.Context) {
	var req AddPlanTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	n, err := db.CountPlanTasksForDay(c.Request.Context(), userID(c), *req.DayOfWeek)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add task"})
		return
	}
	if !CanAddTask(int(n)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bir güne en fazla 3 görev eklenebilir"})
		return
	}

	category := req.Category
	if category == "" {
		category = models.CategoryTYT
	}

	task := models.WeeklyPlanTask{
		StudentID:      userID(c),
		DayOfWeek:      *req.DayOfWeek,
		Subject:        req.Subject,
		Topic:          req.Topic,
		Category:       category,
		DurationTarget: req.DurationTarget,
		QuestionTarget: req.QuestionTarget,
	}
	if err := db.CreatePlanTask(c.Request.Context(), &task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add task"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdatePlanTaskRequest mutates a single task's fields in place.
type UpdatePlanTaskRequest struct {
	Subject        string `json:"subject" binding:"required"`
	Topic          string `json:"topic"`
	Category       string `json:"category" binding:"omitempty,oneof=TYT AYT"`
	DurationTarget int    `json:"duration_target" binding:"min=0"`
	QuestionTarget int    `json:"question_target" binding:"min=0"`
}

// UpdatePlanTask godoc
// @Summary      Edit a weekly plan task
// @Tags         plan
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "Task ID"
// @Param        body  body  UpdatePlanTaskRequest  true  "Fields"
// @Success      200   {object} models.WeeklyPlanTask
// @Security     TokenAuth
// @Router       /api/student/plan/{id}/ [put]
func UpdatePlanTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdatePlanTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := db.GetPlanTask(c.Request.Context(), userID(c), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	task.Subject = req.Subject
	task.Topic = req.Topic
	if req.Category != "" {
		task.Category = req.Category
	}
	task.DurationTarget = req.DurationTarget
	task.QuestionTarget = req.QuestionTarget

	if err := db.SavePlanTask(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeletePlanTask godoc
// @Summary      Delete a weekly plan task
// @Tags         plan
// @Produce      json
// @Param        id  path  int  true  "Task ID"
// @Success      200  {object} map[string]string
// @Security     TokenAuth
// @Router       /api/student/plan/{id}/delete/ [delete]
func DeletePlanTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := db.DeletePlanTask(c.Request.Context(), userID(c), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// UpdateMinimumRequest sets the minimum worked-day floor in minutes.
type UpdateMinimumRequest struct {
	MinimumDayMinutes *int `json:"minimum_day_minutes" binding:"required,min=0,max=600"`
}

// UpdateMinimum godoc
// @Summary      Set the minimum-day-minutes floor
// @Tags         plan
// @Accept       json
// @Produce      json
// @Param        body  body  UpdateMinimumRequest  true  "Minutes"
// @Success      200   {object} map[string]interface{}
// @Security     TokenAuth
// @Router       /api/student/plan/minimum/ [put]
func UpdateMinimum(c *gin.Context) {
	var req UpdateMinimumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := db.UpdateUserFields(c.Request.Context(), userID(c),
		map[string]interface{}{"minimum_day_minutes": *req.MinimumDayMinutes}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"minimum_day_minutes": *req.MinimumDayMinutes})
}
