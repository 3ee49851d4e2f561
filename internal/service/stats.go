package service

import (
	"math"
	"time"

	"quizdesk_backend/internal/model"
)

// TeacherStats is the aggregate view of one teacher's quizzes.
type TeacherStats struct {
	TotalStudents   int     `json:"total_students"`
	ActiveQuizzes   int     `json:"active_quizzes"`
	TotalAttempts   int     `json:"total_attempts"`
	AvgTimeMinutes  float64 `json:"avg_time_minutes"`
	SkippedAttempts int     `json:"skipped_attempts"`
}

// timestampLayouts covers what the store actually holds: RFC 3339 with
// and without fractional seconds, and the zoneless ISO form the original
// backend wrote.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ComputeTeacherStats aggregates the attempts made against one teacher's
// quizzes. The average covers only attempts where both timestamps parse;
// malformed records are skipped and counted in SkippedAttempts instead of
// failing the whole computation. With no timed attempts the average is 0.
func ComputeTeacherStats(quizzes []model.Quiz, attempts []model.Attempt) TeacherStats {
	students := make(map[uint]struct{}, len(attempts))
	var totalSeconds float64
	timed := 0
	skipped := 0

	for _, a := range attempts {
		students[a.StudentID] = struct{}{}

		if a.StartedAt == "" || a.FinishedAt == "" {
			continue
		}
		started, okStart := parseTimestamp(a.StartedAt)
		finished, okFinish := parseTimestamp(a.FinishedAt)
		if !okStart || !okFinish {
			skipped++
			continue
		}
		totalSeconds += finished.Sub(started).Seconds()
		timed++
	}

	avg := 0.0
	if timed > 0 {
		avg = math.Round(totalSeconds/float64(timed)/60*10) / 10
	}

	return TeacherStats{
		TotalStudents:   len(students),
		ActiveQuizzes:   len(quizzes),
		TotalAttempts:   len(attempts),
		AvgTimeMinutes:  avg,
		SkippedAttempts: skipped,
	}
}
