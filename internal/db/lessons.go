package db

import (
	"context"
	"time"

	"github.com/disiplinli/kocumnet-back/internal/models"
)

// GetLessons lists lessons visible to a user: their own as student or
// all of their students' as coach.
func GetLessons(ctx context.Context, userID uint, role string) ([]models.OnlineLesson, error) {
	var lessons []models.OnlineLesson
	tx := DB.WithContext(ctx).Order("scheduled_at DESC, id DESC")
	if role == models.RoleCoach {
		tx = tx.Where("coach_id = ?", userID)
	} else {
		tx = tx.Where("student_id = ?", userID)
	}
	err := tx.Find(&lessons).Error
	return lessons, err
}

func CreateLesson(ctx context.Context, l *models.OnlineLesson) error {
	return DB.WithContext(ctx).Create(l).Error
}

func GetLesson(ctx context.Context, id uint) (*models.OnlineLesson, error) {
	var l models.OnlineLesson
	if err := DB.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func SaveLesson(ctx context.Context, l *models.OnlineLesson) error {
	return DB.WithContext(ctx).Save(l).Error
}

func DeleteLesson(ctx context.Context, id uint) error {
	return DB.WithContext(ctx).Delete(&models.OnlineLesson{}, id).Error
}

func CountUpcomingLessons(ctx context.Context, userID uint, role string, after time.Time) (int64, error) {
	var n int64
	tx := DB.WithContext(ctx).Model(&models.OnlineLesson{}).
		Where("status = ? AND scheduled_at >= ?", models.LessonScheduled, after)
	if role == models.RoleCoach {
		tx = tx.Where("coach_id = ?", userID)
	} else {
		tx = tx.Where("student_id = ?", userID)
	}
	err := tx.Count(&n).Error
	return n, err
}
