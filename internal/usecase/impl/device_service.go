package impl

import (
	"context"
	"strings"

	"goodah/internal/domain/entity"
	domainerrors "goodah/internal/domain/errors"
	"goodah/internal/domain/repository"
	"goodah/internal/usecase"

	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device registry service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice saves a push token for a user. The token is the registry
// key, so re-registering an existing token reassigns ownership.
func (s *deviceService) RegisterDevice(ctx context.Context, token, userID string) error {
	if strings.TrimSpace(token) == "" {
		return domainerrors.ErrValidation.WithDetails("token is required")
	}
	if strings.TrimSpace(userID) == "" {
		return domainerrors.ErrValidation.WithDetails("userId is required")
	}

	if err := s.deviceRepo.UpsertDevice(ctx, token, userID); err != nil {
		return errors.Wrap(err, "failed to upsert device")
	}

	return nil
}

// ListDevices retrieves every registered device
func (s *deviceService) ListDevices(ctx context.Context) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.ListDevices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}
