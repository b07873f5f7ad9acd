package model

import "time"

// UserDeviceModel is the GORM-specific struct for the 'user_devices' table.
// The push token is the primary key: saving an existing token reassigns the
// owner instead of inserting a duplicate row.
type UserDeviceModel struct {
	ExpoPushToken string `gorm:"type:varchar(255);primary_key"`
	UserID        string `gorm:"type:varchar(255);not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
