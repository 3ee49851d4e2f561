package model

// Attempt is one student's timed session against a quiz. Timestamps are
// stored as ISO-8601 strings, exactly as the hosted store keeps them;
// FinishedAt stays empty until the attempt is submitted.
type Attempt struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	QuizID     uint   `gorm:"index;not null" json:"quiz_id"`
	StudentID  uint   `gorm:"index;not null" json:"student_id"`
	StartedAt  string `gorm:"size:64" json:"started_at"`
	FinishedAt string `gorm:"size:64" json:"finished_at"`
}

func (Attempt) TableName() string {
	return "attempts"
}
