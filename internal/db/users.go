package db

import (
	"context"

	"github.com/disiplinli/kocumnet-back/internal/models"
)

func CreateUser(ctx context.Context, u *models.User) error {
	return DB.WithContext(ctx).Create(u).Error
}

func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUserFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
}

// StudentsOfCoach lists the students attached to a coach.
func StudentsOfCoach(ctx context.Context, coachID uint) ([]models.User, error) {
	var students []models.User
	err := DB.WithContext(ctx).
		Where("coach_id = ? AND role = ?", coachID, models.RoleStudent).
		Order("name").
		Find(&students).Error
	return students, err
}
