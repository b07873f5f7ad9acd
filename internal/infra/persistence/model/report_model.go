// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ReportModel is the GORM-specific struct for the 'reports' table.
// Rows are write-once; no update or delete path exists.
type ReportModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ClerkID   string    `gorm:"type:varchar(255);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	ReportType                  string `gorm:"type:text;not null"`
	Status                      string `gorm:"type:text;not null"`
	Ship                        string `gorm:"type:text;not null"`
	Observations                string `gorm:"type:text;not null"`
	Cause                       string `gorm:"type:text;not null"`
	ActionTaken                 string `gorm:"type:text;not null"`
	Position                    string `gorm:"type:text;not null"`
	Location                    string `gorm:"type:text;not null"`
	Procedure                   string `gorm:"type:text;not null"`
	ActionsAndPositions         string `gorm:"type:text;not null"`
	Permits                     string `gorm:"type:text;not null"`
	IsolationAndBarriers        string `gorm:"type:text;not null"`
	PersonalProtectiveEquipment string `gorm:"type:text;not null"`
	ToolsAndEquipment           string `gorm:"type:text;not null"`
	Housekeeping                string `gorm:"type:text;not null"`
	Others                      string `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ReportModel) TableName() string {
	return "reports"
}
