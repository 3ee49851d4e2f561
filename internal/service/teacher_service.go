package service

import "quizdesk_backend/internal/model"

type TeacherService struct {
	Quizzes  QuizStore
	Attempts AttemptStore
}

func NewTeacherService(quizzes QuizStore, attempts AttemptStore) *TeacherService {
	return &TeacherService{Quizzes: quizzes, Attempts: attempts}
}

// Stats aggregates across every quiz the teacher owns. A teacher with no
// quizzes gets all-zero stats rather than an error.
func (s *TeacherService) Stats(teacherID uint) (TeacherStats, error) {
	quizzes, err := s.Quizzes.ListByTeacher(teacherID)
	if err != nil {
		return TeacherStats{}, err
	}

	var attempts []model.Attempt
	if len(quizzes) > 0 {
		quizIDs := make([]uint, len(quizzes))
		for i, q := range quizzes {
			quizIDs[i] = q.ID
		}
		attempts, err = s.Attempts.ListByQuizIDs(quizIDs)
		if err != nil {
			return TeacherStats{}, err
		}
	}

	return ComputeTeacherStats(quizzes, attempts), nil
}
