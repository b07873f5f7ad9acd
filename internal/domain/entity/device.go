package entity

import "time"

// UserDevice maps one push token to the user currently owning it. The token
// is the natural key: re-registering an existing token reassigns the owner
// instead of creating a second row.
type UserDevice struct {
	Token     string    `json:"token"`      // Expo push token for the device.
	UserID    string    `json:"user_id"`    // The ID of the user who owns this device.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this device was first registered.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last owner reassignment.
}
