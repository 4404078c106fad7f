package models

import (
	"time"

	"gorm.io/gorm"
)

type DsaProblem struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	ContestID   uint           `json:"contest_id" gorm:"not null;index"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	Tags        []string       `json:"tags" gorm:"serializer:json"`
	Points      int            `json:"points" gorm:"not null"`
	TimeLimit   int            `json:"time_limit" gorm:"not null"`   // milliseconds
	MemoryLimit int            `json:"memory_limit" gorm:"not null"` // megabytes
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Contest   Contest    `json:"contest,omitempty"`
	TestCases []TestCase `json:"test_cases,omitempty" gorm:"foreignKey:ProblemID"`
}
