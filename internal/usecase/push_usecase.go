package usecase

import "context"

// PushUsecase defines the interface for single-device push dispatch
type PushUsecase interface {
	// SendPush sends one push message to a device token, falling back to the
	// default reminder title and body when either is empty. The result is
	// strictly best effort: false means the gateway did not accept the
	// message, and no error ever escapes.
	SendPush(ctx context.Context, token, title, body string) bool
}
