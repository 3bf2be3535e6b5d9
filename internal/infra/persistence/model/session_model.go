package model

import (
	"time"

	"gorm.io/datatypes"
)

// SessionModel mirrors the 'sessions' table. Data holds the JSON encoded session state.
type SessionModel struct {
	ID        string         `gorm:"type:varchar(64);primaryKey"`
	Data      datatypes.JSON `gorm:"not null"`
	ExpiresAt time.Time      `gorm:"index;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// All returns every model managed by the application, in dependency order.
func All() []any {
	return []any{
		&UserModel{},
		&CampgroundModel{},
		&CampgroundImageModel{},
		&ReviewModel{},
		&SessionModel{},
	}
}
