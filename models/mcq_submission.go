package models

import (
	"time"

	"gorm.io/gorm"
)

// McqSubmission is write-once per (user, question). The composite unique
// index is what closes the race between two concurrent submissions; the
// application-level existence check is only a fast path.
type McqSubmission struct {
	ID                  uint           `json:"id" gorm:"primaryKey"`
	UserID              uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_mcq_submissions_user_question"`
	QuestionID          uint           `json:"question_id" gorm:"not null;uniqueIndex:idx_mcq_submissions_user_question"`
	SelectedOptionIndex int            `json:"selected_option_index" gorm:"not null"`
	IsCorrect           bool           `json:"is_correct" gorm:"not null"`
	PointsEarned        int            `json:"points_earned" gorm:"not null"`
	SubmittedAt         time.Time      `json:"submitted_at" gorm:"not null"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	User     User        `json:"user,omitempty"`
	Question McqQuestion `json:"question,omitempty"`
}
