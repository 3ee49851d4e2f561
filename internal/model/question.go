package model

// swagger:model Question
type Question struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Subject       string `gorm:"size:100;index" json:"subject"`
	Difficulty    string `gorm:"size:20;index" json:"difficulty"`
	QuestionText  string `gorm:"type:text" json:"question_text"`
	OptionA       string `gorm:"type:text" json:"option_a,omitempty"`
	OptionB       string `gorm:"type:text" json:"option_b,omitempty"`
	OptionC       string `gorm:"type:text" json:"option_c,omitempty"`
	OptionD       string `gorm:"type:text" json:"option_d,omitempty"`
	CorrectAnswer string `gorm:"size:255" json:"correct_answer,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}
