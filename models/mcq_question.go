package models

import (
	"time"

	"gorm.io/gorm"
)

type McqQuestion struct {
	ID                 uint           `json:"id" gorm:"primaryKey"`
	ContestID          uint           `json:"contest_id" gorm:"not null;index"`
	QuestionText       string         `json:"question_text" gorm:"not null"`
	CorrectOptionIndex int            `json:"-" gorm:"not null"` // never serialized
	Points             int            `json:"points" gorm:"not null"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Contest Contest     `json:"contest,omitempty"`
	Options []McqOption `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
}

// OptionTexts returns the option texts in position order, assuming
// Options was preloaded ordered.
func (q *McqQuestion) OptionTexts() []string {
	texts := make([]string, 0, len(q.Options))
	for _, opt := range q.Options {
		texts = append(texts, opt.Text)
	}
	return texts
}
