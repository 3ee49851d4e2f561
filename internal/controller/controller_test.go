package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quizdesk_backend/internal/model"
	"quizdesk_backend/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// In-memory stores backing the services under test.

type memUserStore struct{ users map[uint]model.User }

func (m *memUserStore) FindByID(id uint) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

type memQuestionStore struct{ questions []model.Question }

func (m *memQuestionStore) List(subject, difficulty string) ([]model.Question, error) {
	var out []model.Question
	for _, q := range m.questions {
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

func (m *memQuestionStore) FindByID(id uint) (*model.Question, error) {
	for _, q := range m.questions {
		if q.ID == id {
			question := q
			return &question, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type memQuizStore struct{ quizzes []model.Quiz }

func (m *memQuizStore) FindByID(id uint) (*model.Quiz, error) {
	for _, q := range m.quizzes {
		if q.ID == id {
			quiz := q
			return &quiz, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memQuizStore) ListByTeacher(teacherID uint) ([]model.Quiz, error) {
	var out []model.Quiz
	for _, q := range m.quizzes {
		if q.TeacherID == teacherID {
			out = append(out, q)
		}
	}
	return out, nil
}

type memAttemptStore struct {
	attempts []model.Attempt
	nextID   uint
}

func (m *memAttemptStore) Create(attempt *model.Attempt) error {
	m.nextID++
	attempt.ID = m.nextID
	m.attempts = append(m.attempts, *attempt)
	return nil
}

func (m *memAttemptStore) ListByQuiz(quizID uint) ([]model.Attempt, error) {
	var out []model.Attempt
	for _, a := range m.attempts {
		if a.QuizID == quizID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAttemptStore) ListByQuizIDs(quizIDs []uint) ([]model.Attempt, error) {
	ids := make(map[uint]struct{}, len(quizIDs))
	for _, id := range quizIDs {
		ids[id] = struct{}{}
	}
	var out []model.Attempt
	for _, a := range m.attempts {
		if _, ok := ids[a.QuizID]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAttemptStore) ListRecentByStudent(studentID uint, limit int) ([]model.Attempt, error) {
	var out []model.Attempt
	for i := len(m.attempts) - 1; i >= 0 && len(out) < limit; i-- {
		if m.attempts[i].StudentID == studentID {
			out = append(out, m.attempts[i])
		}
	}
	return out, nil
}

func (m *memAttemptStore) SetFinishedAt(attemptID uint, finishedAt string) error {
	for i := range m.attempts {
		if m.attempts[i].ID == attemptID {
			m.attempts[i].FinishedAt = finishedAt
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type memResponseStore struct {
	responses []model.Response
	nextID    uint
}

func (m *memResponseStore) Create(response *model.Response) error {
	m.nextID++
	response.ID = m.nextID
	m.responses = append(m.responses, *response)
	return nil
}

func (m *memResponseStore) ListByAttempt(attemptID uint) ([]model.Response, error) {
	var out []model.Response
	for _, r := range m.responses {
		if r.AttemptID == attemptID {
			out = append(out, r)
		}
	}
	return out, nil
}

type memHealthStore struct {
	sample []map[string]interface{}
	err    error
}

func (m *memHealthStore) SampleIDs(limit int) ([]map[string]interface{}, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sample, nil
}

type fixture struct {
	router   *gin.Engine
	users    *memUserStore
	attempts *memAttemptStore
	health   *memHealthStore
}

func newFixture() *fixture {
	gin.SetMode(gin.TestMode)

	users := &memUserStore{users: map[uint]model.User{
		7:  {ID: 7, Name: "Ada", Role: model.Student},
		10: {ID: 10, Name: "Bob", Role: model.Student},
	}}
	questions := &memQuestionStore{questions: []model.Question{
		{ID: 1, Subject: "math", Difficulty: "easy", QuestionText: "2+2?"},
		{ID: 2, Subject: "math", Difficulty: "hard", QuestionText: "sqrt(-1)?"},
		{ID: 3, Subject: "history", Difficulty: "easy", QuestionText: "1066?"},
	}}
	quizzes := &memQuizStore{quizzes: []model.Quiz{
		{ID: 1, TeacherID: 5, Code: "MATH1"},
	}}
	attempts := &memAttemptStore{}
	responses := &memResponseStore{}

	health := &memHealthStore{sample: []map[string]interface{}{{"id": float64(7)}}}

	storage := &service.StorageService{}
	healthCtl := NewHealthController(health)
	questionCtl := NewQuestionController(service.NewQuestionService(questions))
	attemptCtl := NewAttemptController(service.NewAttemptService(attempts, responses))
	studentCtl := NewStudentController(service.NewStudentService(users, attempts))
	teacherCtl := NewTeacherController(service.NewTeacherService(quizzes, attempts))
	reportCtl := NewReportController(service.NewReportService(quizzes, attempts, users, responses, storage))

	router := gin.New()
	api := router.Group("/api")
	api.GET("/health", healthCtl.HealthCheck)
	api.GET("/questions", questionCtl.List)
	api.GET("/questions/:id", questionCtl.Get)
	api.POST("/attempts", attemptCtl.Create)
	api.POST("/attempts/:id/submit", attemptCtl.Submit)
	api.GET("/student/:id", studentCtl.Profile)
	api.GET("/teacher/:id/stats", teacherCtl.Stats)
	api.GET("/quiz/:id/report.pdf", reportCtl.QuizReport)

	return &fixture{router: router, users: users, attempts: attempts, health: health}
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestHealthCheckHealthyStore(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Status            string                   `json:"status"`
		SupabaseConnected bool                     `json:"supabase_connected"`
		Sample            []map[string]interface{} `json:"sample"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Status != "ok" || !body.SupabaseConnected {
		t.Fatalf("body = %+v, want status ok with supabase_connected true", body)
	}
	if len(body.Sample) != 1 {
		t.Fatalf("sample = %+v, want the probed user id", body.Sample)
	}
}

func TestHealthCheckStoreFailure(t *testing.T) {
	f := newFixture()
	f.health.err = errors.New("connection refused")

	w := f.do(t, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var body struct {
		Status string `json:"status"`
		Err    string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Status != "error" {
		t.Fatalf("status field = %q, want error", body.Status)
	}
	if !strings.Contains(body.Err, "connection refused") {
		t.Fatalf("error field = %q, want the store error text", body.Err)
	}
}

func TestListQuestionsFiltered(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodGet, "/api/questions?subject=math", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got []model.Question
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	w = f.do(t, http.MethodGet, "/api/questions?subject=math&difficulty=hard", nil)
	json.Unmarshal(w.Body.Bytes(), &got)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("filtered result = %+v, want only question 2", got)
	}

	// no matches must still serialize as [], not null
	w = f.do(t, http.MethodGet, "/api/questions?subject=chemistry", nil)
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Fatalf("empty result body = %q, want []", body)
	}
}

func TestGetQuestionNotFound(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodGet, "/api/questions/99", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "error") {
		t.Fatalf("body = %q, want an error payload", w.Body.String())
	}
}

func TestCreateAttemptValidation(t *testing.T) {
	f := newFixture()

	cases := []map[string]interface{}{
		{},
		{"quiz_id": 1},
		{"student_id": 7},
		{"quiz_id": 0, "student_id": 7},
	}
	for _, body := range cases {
		w := f.do(t, http.MethodPost, "/api/attempts", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %v: status = %d, want 400", body, w.Code)
		}
	}
	if len(f.attempts.attempts) != 0 {
		t.Fatalf("rejected requests must not create attempts, got %d", len(f.attempts.attempts))
	}
}

func TestCreateAttemptAndSubmit(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodPost, "/api/attempts", map[string]interface{}{
		"quiz_id": 1, "student_id": 7,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var attempt model.Attempt
	if err := json.Unmarshal(w.Body.Bytes(), &attempt); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if attempt.ID == 0 || attempt.StartedAt == "" {
		t.Fatalf("created attempt = %+v, want id and started_at set", attempt)
	}

	w = f.do(t, http.MethodPost, "/api/attempts/1/submit", map[string]interface{}{
		"answers": []map[string]interface{}{
			{"question_id": 1, "answer_text": "4"},
			{"question_id": 2, "answer_text": "i"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("submit status = %d, want 200", w.Code)
	}
	var result struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	json.Unmarshal(w.Body.Bytes(), &result)
	if result.Status != "submitted" || result.Count != 2 {
		t.Fatalf("submit result = %+v, want submitted/2", result)
	}
	if f.attempts.attempts[0].FinishedAt == "" {
		t.Fatalf("finished_at not stamped by submit")
	}
}

func TestStudentProfileRoundTrip(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodPost, "/api/attempts", map[string]interface{}{
		"quiz_id": 1, "student_id": 7,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d, want 200", w.Code)
	}

	w = f.do(t, http.MethodGet, "/api/student/7", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile status = %d, want 200", w.Code)
	}
	var profile struct {
		User     model.User      `json:"user"`
		Attempts []model.Attempt `json:"attempts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &profile); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if profile.User.Name != "Ada" {
		t.Fatalf("user = %+v, want Ada", profile.User)
	}
	if len(profile.Attempts) != 1 {
		t.Fatalf("attempts = %d, want the fresh attempt", len(profile.Attempts))
	}
}

func TestStudentProfileNotFound(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodGet, "/api/student/999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestTeacherStatsEndpoint(t *testing.T) {
	f := newFixture()

	f.attempts.Create(&model.Attempt{QuizID: 1, StudentID: 7, StartedAt: "2024-01-01T10:00:00", FinishedAt: "2024-01-01T10:05:00"})
	f.attempts.Create(&model.Attempt{QuizID: 1, StudentID: 10, StartedAt: "bad", FinishedAt: "worse"})

	w := f.do(t, http.MethodGet, "/api/teacher/5/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var stats service.TeacherStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if stats.TotalStudents != 2 || stats.TotalAttempts != 2 || stats.ActiveQuizzes != 1 {
		t.Fatalf("stats = %+v, want 2 students / 2 attempts / 1 quiz", stats)
	}
	if stats.AvgTimeMinutes != 5.0 {
		t.Fatalf("avg_time_minutes = %v, want 5.0", stats.AvgTimeMinutes)
	}
	if stats.SkippedAttempts != 1 {
		t.Fatalf("skipped_attempts = %d, want 1", stats.SkippedAttempts)
	}
}

func TestQuizReportDownload(t *testing.T) {
	f := newFixture()

	f.attempts.Create(&model.Attempt{QuizID: 1, StudentID: 7, StartedAt: "2024-01-01T10:00:00", FinishedAt: "2024-01-01T10:05:00"})

	w := f.do(t, http.MethodGet, "/api/quiz/1/report.pdf", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content-type = %q, want application/pdf", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, `filename="quiz_MATH1_report.pdf"`) {
		t.Fatalf("content-disposition = %q, want quiz_MATH1_report.pdf attachment", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Fatalf("body is not a PDF document")
	}
}
