package usecase

import (
	"context"

	"goodah/internal/domain/entity"
)

// DeviceUsecase defines the interface for device-registry use cases
type DeviceUsecase interface {
	// RegisterDevice saves a push token for a user. Registering an already
	// known token reassigns its owner; repeated identical calls are no-ops.
	RegisterDevice(ctx context.Context, token, userID string) error

	// ListDevices retrieves every registered device
	ListDevices(ctx context.Context) ([]*entity.UserDevice, error)
}
