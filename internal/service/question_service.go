package service

import (
	"errors"

	"quizdesk_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionService struct {
	Questions QuestionStore
}

func NewQuestionService(questions QuestionStore) *QuestionService {
	return &QuestionService{Questions: questions}
}

func (s *QuestionService) List(subject, difficulty string) ([]model.Question, error) {
	questions, err := s.Questions.List(subject, difficulty)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []model.Question{}
	}
	return questions, nil
}

func (s *QuestionService) Get(id uint) (*model.Question, error) {
	question, err := s.Questions.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return question, nil
}
