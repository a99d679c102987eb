package db

import (
	"context"

	"github.com/disiplinli/kocumnet-back/internal/models"
)

func GetPlanTasks(ctx context.Context, studentID uint) ([]models.WeeklyPlanTask, error) {
	var tasks []models.WeeklyPlanTask
	err := DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("day_of_week, id").
		Find(&tasks).Error
	return tasks, err
}

func CountPlanTasksForDay(ctx context.Context, studentID uint, day int) (int64, error) {
	var n int64
	err := DB.WithContext(ctx).Model(&models.WeeklyPlanTask{}).
		Where("student_id = ? AND day_of_week = ?", studentID, day).
		Count(&n).Error
	return n, err
}

func CreatePlanTask(ctx context.Context, t *models.WeeklyPlanTask) error {
	return DB.WithContext(ctx).Create(t).Error
}

func GetPlanTask(ctx context.Context, studentID, id uint) (*models.WeeklyPlanTask, error) {
	var t models.WeeklyPlanTask
	if err := DB.WithContext(ctx).Where("student_id = ?", studentID).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func SavePlanTask(ctx context.Context, t *models.WeeklyPlanTask) error {
	return DB.WithContext(ctx).Save(t).Error
}

func DeletePlanTask(ctx context.Context, studentID, id uint) error {
	return DB.WithContext(ctx).
		Where("id = ? AND student_id = ?", id, studentID).
		Delete(&models.WeeklyPlanTask{}).Error
}
