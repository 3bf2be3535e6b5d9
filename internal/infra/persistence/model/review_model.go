package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. CampgroundID is the owning listing.
type ReviewModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CampgroundID uuid.UUID `gorm:"type:uuid;index;not null"`
	AuthorID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Body         string    `gorm:"type:text;not null"`
	Rating       int       `gorm:"type:smallint;not null"`
	CreatedAt    time.Time

	Author *UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
