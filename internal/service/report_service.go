package service

import (
	"context"
	"fmt"
	"strconv"

	"quizdesk_backend/internal/report"
	"quizdesk_backend/pkg/monitoring"
)

type ReportService struct {
	Quizzes   QuizStore
	Attempts  AttemptStore
	Users     UserStore
	Responses ResponseStore
	Storage   *StorageService
}

func NewReportService(quizzes QuizStore, attempts AttemptStore, users UserStore, responses ResponseStore, storage *StorageService) *ReportService {
	return &ReportService{
		Quizzes:   quizzes,
		Attempts:  attempts,
		Users:     users,
		Responses: responses,
		Storage:   storage,
	}
}

// QuizReport renders the attempt report for one quiz and returns the
// download filename alongside the document bytes. The quiz code labels
// the report; if the quiz row is missing the stringified id stands in,
// matching how the platform has always named these files.
func (s *ReportService) QuizReport(ctx context.Context, quizID uint) (string, []byte, error) {
	code := strconv.FormatUint(uint64(quizID), 10)
	if quiz, err := s.Quizzes.FindByID(quizID); err == nil && quiz != nil {
		code = quiz.Code
	}

	attempts, err := s.Attempts.ListByQuiz(quizID)
	if err != nil {
		return "", nil, err
	}

	rows := report.BuildRows(attempts, s.Users.FindByID, s.Responses.ListByAttempt)

	data, err := report.RenderPDF(fmt.Sprintf("Quiz Report - %s", code), rows)
	if err != nil {
		return "", nil, err
	}

	monitoring.ReportsGenerated.Inc()

	filename := fmt.Sprintf("quiz_%s_report.pdf", code)
	if s.Storage != nil {
		s.Storage.Archive(ctx, filename, data, "application/pdf")
	}

	return filename, data, nil
}
