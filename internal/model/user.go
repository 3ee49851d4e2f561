package model

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
)

// swagger:model User
type User struct {
	ID    uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string   `gorm:"size:100;not null" json:"name"`
	Email string   `gorm:"size:100" json:"email,omitempty"`
	Role  UserRole `gorm:"size:20;default:'student'" json:"role,omitempty"`
}

func (User) TableName() string {
	return "users"
}
