// Package report assembles the per-quiz attempt report and renders it as
// a PDF. Both steps are pure transforms over rows already fetched from
// the store.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"quizdesk_backend/internal/model"
)

// Row is one attempt in the report table.
type Row struct {
	Student    string
	StartedAt  string
	FinishedAt string
	Responses  string
}

// FormatResponses joins an attempt's answers into a single display
// string, in store order.
func FormatResponses(responses []model.Response) string {
	parts := make([]string, len(responses))
	for i, r := range responses {
		parts[i] = fmt.Sprintf("Q%d: %s", r.QuestionID, r.AnswerText)
	}
	return strings.Join(parts, "; ")
}

// BuildRows produces one row per attempt, keeping the input order. The
// student name degrades to the stringified id when the user lookup fails,
// and a failed response lookup leaves that cell empty; neither aborts the
// report.
func BuildRows(
	attempts []model.Attempt,
	findUser func(id uint) (*model.User, error),
	listResponses func(attemptID uint) ([]model.Response, error),
) []Row {
	rows := make([]Row, 0, len(attempts))
	for _, a := range attempts {
		student := strconv.FormatUint(uint64(a.StudentID), 10)
		if user, err := findUser(a.StudentID); err == nil && user != nil {
			student = user.Name
		}

		answers := ""
		if responses, err := listResponses(a.ID); err == nil {
			answers = FormatResponses(responses)
		}

		rows = append(rows, Row{
			Student:    student,
			StartedAt:  a.StartedAt,
			FinishedAt: a.FinishedAt,
			Responses:  answers,
		})
	}
	return rows
}
