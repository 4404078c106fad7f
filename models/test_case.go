package models

import (
	"time"

	"gorm.io/gorm"
)

type TestCase struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	ProblemID      uint           `json:"problem_id" gorm:"not null;index"`
	Input          string         `json:"input" gorm:"type:text;not null"`
	ExpectedOutput string         `json:"expected_output" gorm:"type:text;not null"`
	IsHidden       bool           `json:"is_hidden" gorm:"not null;default:false"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Problem DsaProblem `json:"problem,omitempty"`
}
