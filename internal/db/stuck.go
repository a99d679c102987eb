package db

import (
	"context"

	"github.com/disiplinli/kocumnet-back/internal/models"
)

func GetStuckQuestions(ctx context.Context, studentID uint) ([]models.StuckQuestion, error) {
	var list []models.StuckQuestion
	err := DB.WithContext(ctx).
		Preload("Images").
		Where("student_id = ?", studentID).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}

func CreateStuckQuestion(ctx context.Context, s *models.StuckQuestion) error {
	return DB.WithContext(ctx).Create(s).Error
}

func GetStuckQuestion(ctx context.Context, id uint) (*models.StuckQuestion, error) {
	var s models.StuckQuestion
	if err := DB.WithContext(ctx).Preload("Images").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func SaveStuckQuestion(ctx context.Context, s *models.StuckQuestion) error {
	return DB.WithContext(ctx).Save(s).Error
}

func AddStuckImages(ctx context.Context, imgs []models.StuckImage) error {
	return DB.WithContext(ctx).Create(&imgs).Error
}

func DeleteStuckQuestion(ctx context.Context, id uint) error {
	if err := DB.WithContext(ctx).
		Where("stuck_question_id = ?", id).
		Delete(&models.StuckImage{}).Error; err != nil {
		return err
	}
	return DB.WithContext(ctx).Delete(&models.StuckQuestion{}, id).Error
}

func CountOpenStuckQuestions(ctx context.Context, studentID uint) (int64, error) {
	var n int64
	err := DB.WithContext(ctx).Model(&models.StuckQuestion{}).
		Where("student_id = ? AND status = ?", studentID, models.QuestionOpen).
		Count(&n).Error
	return n, err
}
