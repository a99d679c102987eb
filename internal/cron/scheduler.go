package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/disiplinli/kocumnet-back/internal/db"
	"github.com/disiplinli/kocumnet-back/internal/models"
	"github.com/disiplinli/kocumnet-back/internal/timegate"
)

// StartJobs runs the nightly housekeeping on the platform's UTC+3
// clock: materialize the new day's tasks from each weekly plan and
// flip overdue assignments to late.
func StartJobs() {
	c := cron.New(cron.WithLocation(time.FixedZone("UTC+3", 3*60*60)))

	c.AddFunc("5 0 * * *", func() {
		ctx := context.Background()
		now := time.Now()
		today := timegate.Today(now)
		weekday := timegate.Weekday(now)

		var students []models.User
		if err := db.DB.WithContext(ctx).
			Where("role = ?", models.RoleStudent).
			Find(&students).Error; err != nil {
			slog.Error("nightly job: failed to list students", "error", err)
			return
		}

		materialized := 0
		for _, s := range students {
			if err := db.MaterializeDailyTasks(ctx, s.ID, today, weekday); err != nil {
				slog.Error("nightly job: failed to materialize daily tasks",
					"student_id", s.ID, "error", err)
				continue
			}
			materialized++
		}

		late, err := db.MarkOverdueAssignments(ctx, today)
		if err != nil {
			slog.Error("nightly job: failed to mark overdue assignments", "error", err)
		}

		slog.Info("nightly job done", "students", materialized, "marked_late", late)
	})

	c.Start()
}
