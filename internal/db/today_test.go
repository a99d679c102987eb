package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/disiplinli/kocumnet-back/internal/models"
)

func setupDB(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	DB = gdb
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedCheckIn(t *testing.T, studentID uint, date time.Time) {
	t.Helper()
	c := models.CheckIn{StudentID: studentID, Date: date, CompletionPct: 100,
		DifficultyTag: "yok", CorrectionTag: "duzeltme_yok"}
	if err := DB.Create(&c).Error; err != nil {
		t.Fatalf("seed check-in: %v", err)
	}
}

func TestCheckInStreak(t *testing.T) {
	setupDB(t)
	ctx := context.Background()
	today := day(2026, 3, 7)

	// Three consecutive days ending yesterday; today's window not done yet.
	seedCheckIn(t, 1, day(2026, 3, 6))
	seedCheckIn(t, 1, day(2026, 3, 5))
	seedCheckIn(t, 1, day(2026, 3, 4))
	// A gap, then an older run that must not count.
	seedCheckIn(t, 1, day(2026, 3, 1))

	streak, err := CheckInStreak(ctx, 1, today)
	if err != nil {
		t.Fatalf("CheckInStreak: %v", err)
	}
	if streak != 3 {
		t.Errorf("streak = %d, want 3", streak)
	}

	// Checking in today extends the run.
	seedCheckIn(t, 1, today)
	streak, err = CheckInStreak(ctx, 1, today)
	if err != nil {
		t.Fatalf("CheckInStreak: %v", err)
	}
	if streak != 4 {
		t.Errorf("streak with today = %d, want 4", streak)
	}
}

func TestCheckInStreakBroken(t *testing.T) {
	setupDB(t)
	ctx := context.Background()
	today := day(2026, 3, 7)

	// Last check-in two days ago: the streak is over.
	seedCheckIn(t, 1, day(2026, 3, 5))
	seedCheckIn(t, 1, day(2026, 3, 4))

	streak, err := CheckInStreak(ctx, 1, today)
	if err != nil {
		t.Fatalf("CheckInStreak: %v", err)
	}
	if streak != 0 {
		t.Errorf("streak = %d, want 0", streak)
	}
}

func seedCompletedTask(t *testing.T, studentID uint, date time.Time, minutes int) {
	t.Helper()
	task := models.DailyTask{
		StudentID: studentID, PlanTaskID: 1, Date: date,
		Subject: "Matematik", DurationTarget: minutes, Status: models.TaskCompleted,
	}
	if err := DB.Create(&task).Error; err != nil {
		t.Fatalf("seed task: %v", err)
	}
}

func TestWeekCompliance(t *testing.T) {
	setupDB(t)
	ctx := context.Background()
	today := day(2026, 3, 7)

	// Two days meet a 60-minute floor, one falls short.
	seedCompletedTask(t, 1, day(2026, 3, 7), 45)
	seedCompletedTask(t, 1, day(2026, 3, 7), 30) // same day sums to 75
	seedCompletedTask(t, 1, day(2026, 3, 5), 90)
	seedCompletedTask(t, 1, day(2026, 3, 3), 30)
	// Outside the 7-day window.
	seedCompletedTask(t, 1, day(2026, 2, 25), 120)

	got, err := WeekCompliance(ctx, 1, today, 60)
	if err != nil {
		t.Fatalf("WeekCompliance: %v", err)
	}
	if got != 2*100/7 {
		t.Errorf("compliance = %d, want %d", got, 2*100/7)
	}
}

func TestWeekCompliancePendingTasksDoNotCount(t *testing.T) {
	setupDB(t)
	ctx := context.Background()
	today := day(2026, 3, 7)

	task := models.DailyTask{
		StudentID: 1, PlanTaskID: 1, Date: today,
		Subject: "Fizik", DurationTarget: 120, Status: models.TaskPending,
	}
	if err := DB.Create(&task).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := WeekCompliance(ctx, 1, today, 60)
	if err != nil {
		t.Fatalf("WeekCompliance: %v", err)
	}
	if got != 0 {
		t.Errorf("compliance = %d, want 0", got)
	}
}

func TestMaterializeDailyTasksIdempotent(t *testing.T) {
	setupDB(t)
	ctx := context.Background()
	date := day(2026, 3, 2)

	plan := models.WeeklyPlanTask{StudentID: 1, DayOfWeek: 0, Subject: "Matematik", Category: "TYT", DurationTarget: 45}
	if err := DB.Create(&plan).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := MaterializeDailyTasks(ctx, 1, date, 0); err != nil {
			t.Fatalf("materialize #%d: %v", i+1, err)
		}
	}

	tasks, err := GetDailyTasks(ctx, 1, date)
	if err != nil {
		t.Fatalf("GetDailyTasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("tasks = %d, want 1 after double materialize", len(tasks))
	}
	if tasks[0].Subject != "Matematik" || tasks[0].DurationTarget != 45 {
		t.Errorf("snapshot = %+v", tasks[0])
	}

	// Editing the plan afterwards must not rewrite the snapshot.
	if err := DB.Model(&plan).Update("duration_target", 90).Error; err != nil {
		t.Fatalf("update plan: %v", err)
	}
	if err := MaterializeDailyTasks(ctx, 1, date, 0); err != nil {
		t.Fatalf("re-materialize: %v", err)
	}
	tasks, _ = GetDailyTasks(ctx, 1, date)
	if tasks[0].DurationTarget != 45 {
		t.Errorf("snapshot duration = %d, want the original 45", tasks[0].DurationTarget)
	}
}
