package model

// swagger:model Quiz
type Quiz struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TeacherID uint   `gorm:"index;not null" json:"teacher_id"`
	Code      string `gorm:"size:50" json:"code"`
	Title     string `gorm:"size:255" json:"title,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
