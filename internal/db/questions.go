package db

import (
	"context"
	"math/rand"

	"github.com/disiplinli/kocumnet-back/internal/models"
)

func GetQuestions(ctx context.Context, studentID uint) ([]models.Question, error) {
	var qs []models.Question
	err := DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC, id DESC").
		Find(&qs).Error
	return qs, err
}

func CreateQuestion(ctx context.Context, q *models.Question) error {
	return DB.WithContext(ctx).Create(q).Error
}

func GetQuestion(ctx context.Context, studentID, id uint) (*models.Question, error) {
	var q models.Question
	if err := DB.WithContext(ctx).Where("student_id = ?", studentID).First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func SaveQuestion(ctx context.Context, q *models.Question) error {
	return DB.WithContext(ctx).Save(q).Error
}

func DeleteQuestion(ctx context.Context, studentID, id uint) error {
	return DB.WithContext(ctx).
		Where("id = ? AND student_id = ?", id, studentID).
		Delete(&models.Question{}).Error
}

// SpinQuestion picks one random unsolved question and up to maxDecoys
// other unsolved ones for the wheel animation. The pick happens here,
// server-side; clients only animate.
func SpinQuestion(ctx context.Context, studentID uint, maxDecoys int) (*models.Question, []models.Question, error) {
	var open []models.Question
	err := DB.WithContext(ctx).
		Where("student_id = ? AND status = ?", studentID, models.QuestionOpen).
		Find(&open).Error
	if err != nil {
		return nil, nil, err
	}
	if len(open) == 0 {
		return nil, nil, nil
	}

	i := rand.Intn(len(open))
	chosen := open[i]

	decoys := make([]models.Question, 0, maxDecoys)
	for j, q := range open {
		if j == i || len(decoys) == maxDecoys {
			continue
		}
		decoys = append(decoys, q)
	}

	chosen.SpinCount++
	if err := DB.WithContext(ctx).Model(&models.Question{}).
		Where("id = ?", chosen.ID).
		Update("spin_count", chosen.SpinCount).Error; err != nil {
		return nil, nil, err
	}
	return &chosen, decoys, nil
}
