// Package service defines ports to external collaborators of the domain.
package service

import "context"

// PushMessage is a single push notification addressed to one device token.
type PushMessage struct {
	To    string `json:"to"`
	Sound string `json:"sound"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PushGateway defines the interface for external push-notification gateways.
// A nil error means the gateway accepted the message, not that the device
// received it.
type PushGateway interface {
	// Send delivers one message to the external gateway.
	Send(ctx context.Context, msg *PushMessage) error
}
