package db

import (
	"context"
	"time"

	"github.com/disiplinli/kocumnet-back/internal/models"
)

func GetAssignments(ctx context.Context, studentID uint) ([]models.Assignment, error) {
	var list []models.Assignment
	err := DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("due_date, id").
		Find(&list).Error
	return list, err
}

func CreateAssignment(ctx context.Context, a *models.Assignment) error {
	return DB.WithContext(ctx).Create(a).Error
}

func GetAssignment(ctx context.Context, id uint) (*models.Assignment, error) {
	var a models.Assignment
	if err := DB.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func SaveAssignment(ctx context.Context, a *models.Assignment) error {
	return DB.WithContext(ctx).Save(a).Error
}

func DeleteAssignment(ctx context.Context, id uint) error {
	return DB.WithContext(ctx).Delete(&models.Assignment{}, id).Error
}

func CountPendingAssignments(ctx context.Context, studentID uint) (int64, error) {
	var n int64
	err := DB.WithContext(ctx).Model(&models.Assignment{}).
		Where("student_id = ? AND status = ?", studentID, models.AssignmentPending).
		Count(&n).Error
	return n, err
}

// MarkOverdueAssignments flips pending assignments past their due date
// to late. Run by the nightly job.
func MarkOverdueAssignments(ctx context.Context, today time.Time) (int64, error) {
	res := DB.WithContext(ctx).Model(&models.Assignment{}).
		Where("status = ? AND due_date < ?", models.AssignmentPending, today).
		Update("status", models.AssignmentLate)
	return res.RowsAffected, res.Error
}
