package service

import (
	"time"

	"quizdesk_backend/internal/model"
	"quizdesk_backend/pkg/logger"

	"go.uber.org/zap"
)

// isoLayout matches the timestamp format the original backend stored:
// zoneless UTC with microseconds.
const isoLayout = "2006-01-02T15:04:05.000000"

func nowISO() string {
	return time.Now().UTC().Format(isoLayout)
}

type AnswerSubmission struct {
	QuestionID uint   `json:"question_id"`
	AnswerText string `json:"answer_text"`
}

type AttemptService struct {
	Attempts  AttemptStore
	Responses ResponseStore
}

func NewAttemptService(attempts AttemptStore, responses ResponseStore) *AttemptService {
	return &AttemptService{Attempts: attempts, Responses: responses}
}

// Start opens a new attempt stamped with the current UTC time.
func (s *AttemptService) Start(quizID, studentID uint) (*model.Attempt, error) {
	attempt := &model.Attempt{
		QuizID:    quizID,
		StudentID: studentID,
		StartedAt: nowISO(),
	}
	if err := s.Attempts.Create(attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// Submit stores one response per answer, then stamps the attempt as
// finished. A failed insert drops that answer from the count but does not
// abort the rest of the submission.
func (s *AttemptService) Submit(attemptID uint, answers []AnswerSubmission) (int, error) {
	finishedAt := nowISO()

	inserted := 0
	for _, a := range answers {
		response := &model.Response{
			AttemptID:  attemptID,
			QuestionID: a.QuestionID,
			AnswerText: a.AnswerText,
			CreatedAt:  nowISO(),
		}
		if err := s.Responses.Create(response); err != nil {
			logger.Log.Warn("response insert failed",
				zap.Uint("attempt_id", attemptID),
				zap.Uint("question_id", a.QuestionID),
				zap.Error(err))
			continue
		}
		inserted++
	}

	if err := s.Attempts.SetFinishedAt(attemptID, finishedAt); err != nil {
		return inserted, err
	}
	return inserted, nil
}
