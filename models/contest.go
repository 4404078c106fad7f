package models

import (
	"time"

	"gorm.io/gorm"
)

type Contest struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description"`
	StartTime   time.Time      `json:"start_time" gorm:"not null"`
	EndTime     time.Time      `json:"end_time" gorm:"not null"`
	CreatorID   uint           `json:"creator_id" gorm:"not null;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Creator     User          `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	Mcqs        []McqQuestion `json:"mcqs,omitempty" gorm:"foreignKey:ContestID"`
	DsaProblems []DsaProblem  `json:"dsa_problems,omitempty" gorm:"foreignKey:ContestID"`
}

// Active reports whether the contest still accepts submissions at t.
// The boundary instant end_time is already inactive.
func (c *Contest) Active(t time.Time) bool {
	return c.EndTime.After(t)
}
