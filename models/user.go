package models

import (
	"time"

	"gorm.io/gorm"
)

// Role is the closed set of identities the authorization gate knows about.
type Role string

const (
	RoleCreator   Role = "creator"
	RoleContestee Role = "contestee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCreator, RoleContestee:
		return true
	}
	return false
}

type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	Role      Role           `json:"role" gorm:"type:varchar(16);not null;default:'contestee'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
