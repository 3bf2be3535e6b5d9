package model

import (
	"time"

	"github.com/google/uuid"
)

// CampgroundModel mirrors the 'campgrounds' table.
// The point geometry is stored as two plain columns so the schema stays portable.
type CampgroundModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Price       float64   `gorm:"type:double precision;not null"`
	Description string    `gorm:"type:text;not null"`
	Location    string    `gorm:"type:varchar(255);not null"`
	Longitude   float64   `gorm:"type:double precision;not null"`
	Latitude    float64   `gorm:"type:double precision;not null"`
	AuthorID    uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	Author  *UserModel             `gorm:"foreignKey:AuthorID"`
	Images  []CampgroundImageModel `gorm:"foreignKey:CampgroundID"`
	Reviews []ReviewModel          `gorm:"foreignKey:CampgroundID"`
}

// TableName explicitly sets the table name for GORM.
func (CampgroundModel) TableName() string {
	return "campgrounds"
}

// CampgroundImageModel mirrors the 'campground_images' table.
// Position keeps the upload order of a campground's images.
type CampgroundImageModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CampgroundID uuid.UUID `gorm:"type:uuid;index;not null"`
	Position     int       `gorm:"not null"`
	URL          string    `gorm:"type:text;not null"`
	Filename     string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampgroundImageModel) TableName() string {
	return "campground_images"
}
