package repository

import (
	"quizdesk_backend/internal/model"

	"gorm.io/gorm"
)

type ResponseRepository struct {
	DB *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{DB: db}
}

func (r *ResponseRepository) Create(response *model.Response) error {
	return r.DB.Create(response).Error
}

func (r *ResponseRepository) ListByAttempt(attemptID uint) ([]model.Response, error) {
	var responses []model.Response
	err := r.DB.Where("attempt_id = ?", attemptID).Order("id ASC").Find(&responses).Error
	return responses, err
}
