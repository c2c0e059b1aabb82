package model

import (
	"time"

	"gorm.io/gorm"
)

// Result is one scored test outcome. Immutable once persisted; the ID and
// timestamp are assigned server-side on save.
type Result struct {
	ID             string         `gorm:"primarykey" json:"id"`
	UserID         string         `json:"user_id" gorm:"not null;index"`
	UserName       string         `json:"user_name" gorm:"not null"`
	UserEmail      string         `json:"user_email"`
	TestName       string         `json:"test_name" gorm:"not null"`
	TestType       string         `json:"test_type"` // "chapter", "mock"
	Score          int            `json:"score" gorm:"not null"`
	Date           string         `json:"date" gorm:"not null"`
	TimeTaken      string         `json:"time_taken"`
	TotalQuestions int            `json:"total_questions" gorm:"not null"`
	CorrectAnswers int            `json:"correct_answers" gorm:"not null"`
	CreatedAt      time.Time      `json:"timestamp" gorm:"index"`
	UpdatedAt      time.Time      `json:"-"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
