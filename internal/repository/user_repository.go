package repository

import (
	"quizdesk_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SampleIDs returns up to limit user ids, used by the health check to
// verify the store answers queries.
func (r *UserRepository) SampleIDs(limit int) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	err := r.DB.Model(&model.User{}).Select("id").Limit(limit).Find(&rows).Error
	return rows, err
}
