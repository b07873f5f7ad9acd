package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel is the GORM-specific struct for the 'feedback' table.
type FeedbackModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Rating    float64   `gorm:"not null"`
	Comment   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedback"
}
