package service

import (
	"errors"

	"quizdesk_backend/internal/model"

	"gorm.io/gorm"
)

// recentAttemptLimit caps the attempt history on the profile view.
const recentAttemptLimit = 10

type StudentService struct {
	Users    UserStore
	Attempts AttemptStore
}

func NewStudentService(users UserStore, attempts AttemptStore) *StudentService {
	return &StudentService{Users: users, Attempts: attempts}
}

// Profile returns the student and their latest attempts, newest first.
func (s *StudentService) Profile(studentID uint) (*model.User, []model.Attempt, error) {
	user, err := s.Users.FindByID(studentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	attempts, err := s.Attempts.ListRecentByStudent(studentID, recentAttemptLimit)
	if err != nil {
		return nil, nil, err
	}
	if attempts == nil {
		attempts = []model.Attempt{}
	}
	return user, attempts, nil
}
