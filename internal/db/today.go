package db

import (
	"context"
	"time"

	"github.com/disiplinli/kocumnet-back/internal/models"
)

// MaterializeDailyTasks copies the plan tasks of the given weekday into
// daily_tasks for date, once. Re-running for the same day is a no-op so
// both the lazy today fetch and the nightly job can call it.
func MaterializeDailyTasks(ctx context.Context, studentID uint, date time.Time, weekday int) error {
	var n int64
	if err := DB.WithContext(ctx).Model(&models.DailyTask{}).
		Where("student_id = ? AND date = ?", studentID, date).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var plan []models.WeeklyPlanTask
	if err := DB.WithContext(ctx).
		Where("student_id = ? AND day_of_week = ?", studentID, weekday).
		Order("id").
		Find(&plan).Error; err != nil {
		return err
	}
	if len(plan) == 0 {
		return nil
	}

	tasks := make([]models.DailyTask, 0, len(plan))
	for _, p := range plan {
		tasks = append(tasks, models.DailyTask{
			StudentID:      studentID,
			PlanTaskID:     p.ID,
			Date:           date,
			Subject:        p.Subject,
			Topic:          p.Topic,
			Category:       p.Category,
			DurationTarget: p.DurationTarget,
			QuestionTarget: p.QuestionTarget,
			Status:         models.TaskPending,
		})
	}
	return DB.WithContext(ctx).Create(&tasks).Error
}

func GetDailyTasks(ctx context.Context, studentID uint, date time.Time) ([]models.DailyTask, error) {
	var tasks []models.DailyTask
	err := DB.WithContext(ctx).
		Where("student_id = ? AND date = ?", studentID, date).
		Order("id").
		Find(&tasks).Error
	return tasks, err
}

func GetDailyTask(ctx context.Context, studentID, id uint) (*models.DailyTask, error) {
	var t models.DailyTask
	if err := DB.WithContext(ctx).Where("student_id = ?", studentID).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func SaveDailyTask(ctx context.Context, t *models.DailyTask) error {
	return DB.WithContext(ctx).Save(t).Error
}

// CheckInStreak counts consecutive civil days with a check-in, ending
// today or yesterday (a streak is not broken before today's window).
func CheckInStreak(ctx context.Context, studentID uint, today time.Time) (int, error) {
	var dates []time.Time
	err := DB.WithContext(ctx).Model(&models.CheckIn{}).
		Where("student_id = ?", studentID).
		Order("date DESC").
		Limit(60).
		Pluck("date", &dates).Error
	if err != nil {
		return 0, err
	}

	streak := 0
	cursor := today
	for _, d := range dates {
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		switch {
		case day.Equal(cursor):
			streak++
			cursor = cursor.AddDate(0, 0, -1)
		case streak == 0 && day.Equal(today.AddDate(0, 0, -1)):
			streak++
			cursor = day.AddDate(0, 0, -1)
		default:
			return streak, nil
		}
	}
	return streak, nil
}

// WeekCompliance returns the percentage of the last 7 days (today
// inclusive) on which the student's completed daily tasks reached the
// minimum_day_minutes floor.
func WeekCompliance(ctx context.Context, studentID uint, today time.Time, minimumMinutes int) (int, error) {
	from := today.AddDate(0, 0, -6)

	var tasks []models.DailyTask
	err := DB.WithContext(ctx).
		Where("student_id = ? AND date >= ? AND date <= ? AND status = ?",
			studentID, from, today, models.TaskCompleted).
		Find(&tasks).Error
	if err != nil {
		return 0, err
	}

	byDay := map[string]int{}
	for _, t := range tasks {
		byDay[t.Date.Format("2006-01-02")] += t.DurationTarget
	}

	worked := 0
	for _, minutes := range byDay {
		if minutes >= minimumMinutes {
			worked++
		}
	}
	return worked * 100 / 7, nil
}
