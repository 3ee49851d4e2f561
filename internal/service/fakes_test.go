package service

import (
	"errors"

	"quizdesk_backend/internal/model"

	"gorm.io/gorm"
)

// In-memory stores standing in for the GORM repositories.

type fakeUserStore struct {
	users map[uint]model.User
}

func (f *fakeUserStore) FindByID(id uint) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

type fakeQuizStore struct {
	quizzes []model.Quiz
}

func (f *fakeQuizStore) FindByID(id uint) (*model.Quiz, error) {
	for _, q := range f.quizzes {
		if q.ID == id {
			quiz := q
			return &quiz, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeQuizStore) ListByTeacher(teacherID uint) ([]model.Quiz, error) {
	var out []model.Quiz
	for _, q := range f.quizzes {
		if q.TeacherID == teacherID {
			out = append(out, q)
		}
	}
	return out, nil
}

type fakeAttemptStore struct {
	attempts []model.Attempt
	nextID   uint
}

func (f *fakeAttemptStore) Create(attempt *model.Attempt) error {
	f.nextID++
	attempt.ID = f.nextID
	f.attempts = append(f.attempts, *attempt)
	return nil
}

func (f *fakeAttemptStore) ListByQuiz(quizID uint) ([]model.Attempt, error) {
	var out []model.Attempt
	for _, a := range f.attempts {
		if a.QuizID == quizID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttemptStore) ListByQuizIDs(quizIDs []uint) ([]model.Attempt, error) {
	ids := make(map[uint]struct{}, len(quizIDs))
	for _, id := range quizIDs {
		ids[id] = struct{}{}
	}
	var out []model.Attempt
	for _, a := range f.attempts {
		if _, ok := ids[a.QuizID]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttemptStore) ListRecentByStudent(studentID uint, limit int) ([]model.Attempt, error) {
	var out []model.Attempt
	// newest first; fake ids are monotonic so walk backwards
	for i := len(f.attempts) - 1; i >= 0 && len(out) < limit; i-- {
		if f.attempts[i].StudentID == studentID {
			out = append(out, f.attempts[i])
		}
	}
	return out, nil
}

func (f *fakeAttemptStore) SetFinishedAt(attemptID uint, finishedAt string) error {
	for i := range f.attempts {
		if f.attempts[i].ID == attemptID {
			f.attempts[i].FinishedAt = finishedAt
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

var errInsertRejected = errors.New("insert rejected")

type fakeResponseStore struct {
	responses []model.Response
	nextID    uint

	// question ids whose inserts should fail
	failFor map[uint]bool
}

func (f *fakeResponseStore) Create(response *model.Response) error {
	if f.failFor[response.QuestionID] {
		return errInsertRejected
	}
	f.nextID++
	response.ID = f.nextID
	f.responses = append(f.responses, *response)
	return nil
}

func (f *fakeResponseStore) ListByAttempt(attemptID uint) ([]model.Response, error) {
	var out []model.Response
	for _, r := range f.responses {
		if r.AttemptID == attemptID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeQuestionStore struct {
	questions []model.Question
}

func (f *fakeQuestionStore) List(subject, difficulty string) ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.questions {
		if subject != "" && q.Subject != subject {
			continue
		}
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (f *fakeQuestionStore) FindByID(id uint) (*model.Question, error) {
	for _, q := range f.questions {
		if q.ID == id {
			question := q
			return &question, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
