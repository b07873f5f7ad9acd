package handler

import (
	"log/slog"
	"net/http"

	"goodah/internal/delivery/http/response"
	"goodah/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-registry handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// SaveTokenRequest represents the request body for saving a push token.
// Clients without a signed-in user omit userId and get the anonymous owner.
type SaveTokenRequest struct {
	Token  string `json:"token" validate:"required"`
	UserID string `json:"userId"`
}

// SaveToken handles registering a device push token
func (h *DeviceHandler) SaveToken(c echo.Context) error {
	var req SaveTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "token is required")
	}

	if req.UserID == "" {
		req.UserID = "anon"
	}

	if err := h.deviceUC.RegisterDevice(c.Request().Context(), req.Token, req.UserID); err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Saved push token",
		slog.String("token", req.Token),
		slog.String("user_id", req.UserID),
	)

	return response.Success(c, http.StatusOK, map[string]bool{"ok": true}, "Token saved successfully")
}
