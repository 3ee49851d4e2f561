package model

// Response is one answer submitted within an attempt. Rows are written
// once at submission time and never touched again.
type Response struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	AttemptID  uint   `gorm:"index;not null" json:"attempt_id"`
	QuestionID uint   `gorm:"not null" json:"question_id"`
	AnswerText string `gorm:"type:text" json:"answer_text"`
	CreatedAt  string `gorm:"size:64" json:"created_at"`
}

func (Response) TableName() string {
	return "responses"
}
