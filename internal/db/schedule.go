package db

import (
	"context"

	"github.com/disiplinli/kocumnet-back/internal/models"
)

func GetScheduleEntries(ctx context.Context, studentID uint) ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry
	err := DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("day_of_week, start_time").
		Find(&entries).Error
	return entries, err
}

func CreateScheduleEntry(ctx context.Context, e *models.ScheduleEntry) error {
	return DB.WithContext(ctx).Create(e).Error
}

func DeleteScheduleEntry(ctx context.Context, studentID, id uint) error {
	return DB.WithContext(ctx).
		Where("id = ? AND student_id = ?", id, studentID).
		Delete(&models.ScheduleEntry{}).Error
}
