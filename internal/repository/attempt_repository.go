package repository

import (
	"quizdesk_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.Attempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) ListByQuiz(quizID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.DB.Where("quiz_id = ?", quizID).Order("id ASC").Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) ListByQuizIDs(quizIDs []uint) ([]model.Attempt, error) {
	if len(quizIDs) == 0 {
		return nil, nil
	}
	var attempts []model.Attempt
	err := r.DB.Where("quiz_id IN ?", quizIDs).Find(&attempts).Error
	return attempts, err
}

// ListRecentByStudent returns the student's latest attempts, newest
// started_at first.
func (r *AttemptRepository) ListRecentByStudent(studentID uint, limit int) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.DB.Where("student_id = ?", studentID).
		Order("started_at DESC").
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}

// SetFinishedAt stamps the attempt's completion time. Last writer wins if
// two submissions race; the store does not guard the update.
func (r *AttemptRepository) SetFinishedAt(attemptID uint, finishedAt string) error {
	return r.DB.Model(&model.Attempt{}).
		Where("id = ?", attemptID).
		Update("finished_at", finishedAt).
		Error
}
