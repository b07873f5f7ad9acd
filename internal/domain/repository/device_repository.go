package repository

import (
	"context"

	"goodah/internal/domain/entity"
)

// DeviceRepository defines the interface for device-registry database operations.
type DeviceRepository interface {
	// UpsertDevice saves a device registration keyed by its push token.
	// An existing registration has its owner reassigned to userID; an absent
	// one is created. Last write wins on the owner.
	UpsertDevice(ctx context.Context, token, userID string) error

	// ListDevices retrieves every registered device.
	ListDevices(ctx context.Context) ([]*entity.UserDevice, error)
}
