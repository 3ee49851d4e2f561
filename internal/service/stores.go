package service

import (
	"errors"
	"quizdesk_backend/internal/model"
)

// ErrNotFound is returned when a requested record does not exist.
// Controllers map it to a 404.
var ErrNotFound = errors.New("record not found")

// Store interfaces consumed by the services. The GORM repositories
// satisfy them in production; tests substitute in-memory fakes.

type UserStore interface {
	FindByID(id uint) (*model.User, error)
}

type QuestionStore interface {
	List(subject, difficulty string) ([]model.Question, error)
	FindByID(id uint) (*model.Question, error)
}

type QuizStore interface {
	FindByID(id uint) (*model.Quiz, error)
	ListByTeacher(teacherID uint) ([]model.Quiz, error)
}

type AttemptStore interface {
	Create(attempt *model.Attempt) error
	ListByQuiz(quizID uint) ([]model.Attempt, error)
	ListByQuizIDs(quizIDs []uint) ([]model.Attempt, error)
	ListRecentByStudent(studentID uint, limit int) ([]model.Attempt, error)
	SetFinishedAt(attemptID uint, finishedAt string) error
}

type ResponseStore interface {
	Create(response *model.Response) error
	ListByAttempt(attemptID uint) ([]model.Response, error)
}
