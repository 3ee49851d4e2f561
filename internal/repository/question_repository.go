package repository

import (
	"quizdesk_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// List applies the optional equality filters and returns questions in
// ascending id order.
func (r *QuestionRepository) List(subject, difficulty string) ([]model.Question, error) {
	q := r.DB.Model(&model.Question{})
	if subject != "" {
		q = q.Where("subject = ?", subject)
	}
	if difficulty != "" {
		q = q.Where("difficulty = ?", difficulty)
	}

	var questions []model.Question
	err := q.Order("id ASC").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}
