package push

import (
	"context"
	"log/slog"

	"goodah/config"
	"goodah/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GatewayParams holds dependencies for PushGateway, injected by Fx
type GatewayParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushGateway creates a PushGateway based on configuration
func NewPushGateway(params GatewayParams) (service.PushGateway, error) {
	cfg := params.Config.Push

	switch cfg.Provider {
	case "", "expo":
		params.Logger.Info("Using Expo push gateway",
			slog.String("endpoint", cfg.ExpoEndpoint),
		)

		return NewExpoService(cfg.ExpoEndpoint, cfg.Timeout, params.Logger), nil

	case "fcm":
		if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
			return nil, errors.New("firebase credentials path is required for fcm provider")
		}
		params.Logger.Info("Using FCM push gateway",
			slog.String("project_id", cfg.Firebase.ProjectID),
		)

		return NewFCMService(params.Ctx, cfg.Firebase.CredentialsPath)

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}
}
