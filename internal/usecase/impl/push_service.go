package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"goodah/internal/domain/service"
	"goodah/internal/usecase"
)

// Default message used when the caller omits title or body.
const (
	DefaultPushTitle = "All Goodah"
	DefaultPushBody  = "Don't forget to submit your daily report!"

	defaultPushSound = "default"
)

type pushService struct {
	gateway service.PushGateway
	timeout time.Duration
	logger  *slog.Logger
}

// NewPushService creates a new push dispatch service instance
func NewPushService(gateway service.PushGateway, timeout time.Duration, logger *slog.Logger) usecase.PushUsecase {
	return &pushService{
		gateway: gateway,
		timeout: timeout,
		logger:  logger,
	}
}

// SendPush sends one push message to a device token. Every failure is
// reduced to a false return so that a bad token or a down gateway can never
// take a caller with it. Each dispatch gets its own timeout; a hung gateway
// call costs one dispatch, not the whole campaign.
func (s *pushService) SendPush(ctx context.Context, token, title, body string) bool {
	if strings.TrimSpace(token) == "" {
		s.logger.Warn("Push skipped: empty token")

		return false
	}

	if title == "" {
		title = DefaultPushTitle
	}
	if body == "" {
		body = DefaultPushBody
	}

	msg := &service.PushMessage{
		To:    token,
		Sound: defaultPushSound,
		Title: title,
		Body:  body,
	}

	sendCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.gateway.Send(sendCtx, msg); err != nil {
		s.logger.Error("Push error",
			slog.String("token", token),
			slog.Any("error", err),
		)

		return false
	}

	return true
}
