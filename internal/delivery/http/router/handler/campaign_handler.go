package handler

import (
	"log/slog"
	"net/http"

	"goodah/internal/delivery/http/response"
	domainerrors "goodah/internal/domain/errors"
	"goodah/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CampaignHandlerParams holds dependencies for CampaignHandler, injected by Fx.
type CampaignHandlerParams struct {
	fx.In

	CampaignUC usecase.CampaignUsecase
	Logger     *slog.Logger
}

// CampaignHandler holds dependencies for campaign handlers
type CampaignHandler struct {
	campaignUC usecase.CampaignUsecase
	logger     *slog.Logger
}

// NewCampaignHandler is the constructor for CampaignHandler
func NewCampaignHandler(params CampaignHandlerParams) *CampaignHandler {
	return &CampaignHandler{
		campaignUC: params.CampaignUC,
		logger:     params.Logger,
	}
}

// DailyNotify triggers the daily-reminder campaign for all registered
// devices. Per-device failures are reflected in the counts, not the status
// code; only a campaign that could not start fails the request.
func (h *CampaignHandler) DailyNotify(c echo.Context) error {
	result, err := h.campaignUC.RunDailyCampaign(c.Request().Context())
	if err != nil {
		h.logger.Error("Auto push error", slog.Any("error", err))

		return response.HandleAppError(c, domainerrors.ErrCampaignFailed.WithDetails(err.Error()))
	}

	return response.Success(c, http.StatusOK, result, "Campaign completed")
}
