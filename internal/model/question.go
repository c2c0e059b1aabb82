package model

import (
	"time"

	"gorm.io/gorm"
)

// QuestionSet is the stored question bank for one (test type, test id) pair.
// An upload replaces the whole set.
type QuestionSet struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	TestType      string         `json:"test_type" gorm:"not null;index:idx_set_type_id,unique"` // "chapter", "mock"
	TestID        string         `json:"test_id" gorm:"not null;index:idx_set_type_id,unique"`
	QuestionCount int            `json:"question_count" gorm:"not null"`
	Questions     []Question     `json:"questions,omitempty" gorm:"foreignKey:QuestionSetID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Question is one multiple-choice item. The four options are positional;
// CorrectIndex refers to that order.
type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	QuestionSetID uint           `json:"question_set_id" gorm:"not null;index"`
	ExternalID    string         `json:"external_id" gorm:"not null"` // id from the uploaded bank, unique within a set
	Prompt        string         `json:"prompt" gorm:"type:text;not null"`
	OptionA       string         `json:"option_a" gorm:"type:text;not null"`
	OptionB       string         `json:"option_b" gorm:"type:text;not null"`
	OptionC       string         `json:"option_c" gorm:"type:text;not null"`
	OptionD       string         `json:"option_d" gorm:"type:text;not null"`
	CorrectIndex  int            `json:"correct_index" gorm:"not null"` // 0-3
	Domain        *string        `json:"domain,omitempty"`
	Difficulty    *string        `json:"difficulty,omitempty"`
	Position      int            `json:"position" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// OptionList returns the four options in positional order.
func (q *Question) OptionList() [4]string {
	return [4]string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}

// SetOptions assigns the four positional options.
func (q *Question) SetOptions(opts [4]string) {
	q.OptionA, q.OptionB, q.OptionC, q.OptionD = opts[0], opts[1], opts[2], opts[3]
}
