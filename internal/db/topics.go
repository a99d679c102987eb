package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/disiplinli/kocumnet-back/internal/models"
)

func GetTopicProgress(ctx context.Context, studentID uint) ([]models.TopicProgress, error) {
	var done []models.TopicProgress
	err := DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		Find(&done).Error
	return done, err
}

// ToggleTopic flips one topic's completion mark and reports the new
// state.
func ToggleTopic(ctx context.Context, studentID uint, category, subject, topicName string) (bool, error) {
	var existing models.TopicProgress
	err := DB.WithContext(ctx).
		Where("student_id = ? AND category = ? AND subject = ? AND topic_name = ?",
			studentID, category, subject, topicName).
		First(&existing).Error

	if err == nil {
		return false, DB.WithContext(ctx).Delete(&existing).Error
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	mark := models.TopicProgress{
		StudentID: studentID,
		Category:  category,
		Subject:   subject,
		TopicName: topicName,
	}
	return true, DB.WithContext(ctx).Create(&mark).Error
}
