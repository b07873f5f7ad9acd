package push

import (
	"context"

	"goodah/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type fcmService struct {
	client *messaging.Client
}

// NewFCMService creates a PushGateway backed by Firebase Cloud Messaging,
// for deployments whose clients register FCM tokens instead of Expo tokens.
func NewFCMService(ctx context.Context, credentialsPath string) (service.PushGateway, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmService{
		client: client,
	}, nil
}

// Send delivers one message through FCM. The sound is carried in the
// platform-specific payloads since the top-level notification has no field
// for it.
func (s *fcmService) Send(ctx context.Context, msg *service.PushMessage) error {
	fcmMsg := &messaging.Message{
		Token: msg.To,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Android: &messaging.AndroidConfig{
			Notification: &messaging.AndroidNotification{
				Sound: msg.Sound,
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: msg.Sound,
				},
			},
		},
	}

	if _, err := s.client.Send(ctx, fcmMsg); err != nil {
		return errors.Wrap(err, "failed to send FCM message")
	}

	return nil
}
