package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/disiplinli/kocumnet-back/internal/db"
	"github.com/disiplinli/kocumnet-back/internal/models"
	"github.com/disiplinli/kocumnet-back/internal/timegate"
)

// dashboardResponse feeds the sidebar badge counts, polled every 30s
// by the shell.
type dashboardResponse struct {
	UnreadMessages     int64 `json:"unread_messages"`
	PendingAssignments int64 `json:"pending_assignments"`
	OpenStuckQuestions int64 `json:"open_stuck_questions"`
	UpcomingLessons    int64 `json:"upcoming_lessons"`
	CheckinDone        bool  `json:"checkin_done"`
	Streak             int   `json:"streak"`
}

// GetDashboard godoc
// @Summary      Badge counts for the navigation shell
// @Tags         dashboard
// @Produce      json
// @Success      200  {object} dashboardResponse
// @Security     TokenAuth
// @Router       /api/dashboard/ [get]
func GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)
	role := c.GetString("role")
	now := nowFunc()
	today := timegate.Today(now)

	unread, _ := db.CountUnreadMessages(ctx, uid)
	lessons, _ := db.CountUpcomingLessons(ctx, uid, role, now)

	resp := dashboardResponse{
		UnreadMessages:  unread,
		UpcomingLessons: lessons,
	}

	if role == models.RoleStudent {
		resp.PendingAssignments, _ = db.CountPendingAssignments(ctx, uid)
		resp.OpenStuckQuestions, _ = db.CountOpenStuckQuestions(ctx, uid)
		resp.CheckinDone, _ = db.HasCheckIn(ctx, uid, today)
		resp.Streak, _ = db.CheckInStreak(ctx, uid, today)
	}

	c.JSON(http.StatusOK, resp)
}

// coachStudentToday is one row of the coach's morning overview.
type coachStudentToday struct {
	StudentID      uint   `json:"student_id"`
	Name           string `json:"name"`
	CheckinDone    bool   `json:"checkin_done"`
	CompletionPct  int    `json:"completion_pct"`
	TasksTotal     int    `json:"tasks_total"`
	TasksCompleted int    `json:"tasks_completed"`
	Streak         int    `json:"streak"`
}

// GetCoachToday godoc
// @Summary      Per-student check-in roll-up for the coach
// @Tags         dashboard
// @Produce      json
// @Success      200  {array} coachStudentToday
// @Security     TokenAuth
// @Router       /api/coach/today/ [get]
func GetCoachToday(c *gin.Context) {
	ctx := c.Request.Context()
	today := timegate.Today(nowFunc())

	students, err := db.StudentsOfCoach(ctx, userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch students"})
		return
	}

	out := make([]coachStudentToday, 0, len(students))
	for _, s := range students {
		row := coachStudentToday{StudentID: s.ID, Name: s.Name}

		if checkin, err := db.GetCheckIn(ctx, s.ID, today); err == nil {
			row.CheckinDone = true
			row.CompletionPct = checkin.CompletionPct
		}

		tasks, _ := db.GetDailyTasks(ctx, s.ID, today)
		row.TasksTotal = len(tasks)
		for _, t := range tasks {
			if t.Status == models.TaskCompleted {
				row.TasksCompleted++
			}
		}
		row.Streak, _ = db.CheckInStreak(ctx, s.ID, today)

		out = append(out, row)
	}
	c.JSON(http.StatusOK, out)
}
