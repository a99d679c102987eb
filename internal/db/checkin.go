package db

import (
	"context"
	"time"

	"github.com/disiplinli/kocumnet-back/internal/models"
)

func CreateCheckIn(ctx context.Context, c *models.CheckIn) error {
	return DB.WithContext(ctx).Create(c).Error
}

func HasCheckIn(ctx context.Context, studentID uint, date time.Time) (bool, error) {
	var n int64
	err := DB.WithContext(ctx).Model(&models.CheckIn{}).
		Where("student_id = ? AND date = ?", studentID, date).
		Count(&n).Error
	return n > 0, err
}

func GetCheckIn(ctx context.Context, studentID uint, date time.Time) (*models.CheckIn, error) {
	var c models.CheckIn
	if err := DB.WithContext(ctx).
		Where("student_id = ? AND date = ?", studentID, date).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
