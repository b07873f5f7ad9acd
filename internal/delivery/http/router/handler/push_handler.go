package handler

import (
	"log/slog"
	"net/http"

	"goodah/internal/delivery/http/response"
	"goodah/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushHandlerParams holds dependencies for PushHandler, injected by Fx.
type PushHandlerParams struct {
	fx.In

	PushUC usecase.PushUsecase
	Logger *slog.Logger
}

// PushHandler holds dependencies for single-push handlers
type PushHandler struct {
	pushUC usecase.PushUsecase
	logger *slog.Logger
}

// NewPushHandler is the constructor for PushHandler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		pushUC: params.PushUC,
		logger: params.Logger,
	}
}

// SendPushRequest represents the request body for a single push dispatch.
// Title and body fall back to the default reminder when omitted.
type SendPushRequest struct {
	Token string `json:"token" validate:"required"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// SendPush handles dispatching one push message to one device token.
// Delivery is best effort; the response reports the gateway outcome rather
// than failing the request.
func (h *PushHandler) SendPush(c echo.Context) error {
	var req SendPushRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "token is required")
	}

	delivered := h.pushUC.SendPush(c.Request().Context(), req.Token, req.Title, req.Body)

	return response.Success(c, http.StatusOK, map[string]bool{"delivered": delivered}, "Push dispatched")
}
