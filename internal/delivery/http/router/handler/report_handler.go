// Package handler contains the HTTP request handlers.
package handler

import (
	"log/slog"
	"net/http"

	"goodah/internal/delivery/http/response"
	"goodah/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler holds dependencies for report-related handlers
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// CreateReport handles submission of a new safety report
func (h *ReportHandler) CreateReport(c echo.Context) error {
	var req usecase.ReportInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report input")
	}

	report, err := h.reportUC.CreateReport(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, report, "Report created successfully")
}

// ListReports handles retrieving all reports
func (h *ReportHandler) ListReports(c echo.Context) error {
	reports, err := h.reportUC.ListReports(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reports, "Reports retrieved successfully")
}

// GetReport handles retrieving a single report by ID
func (h *ReportHandler) GetReport(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid report ID")
	}

	report, err := h.reportUC.GetReport(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Report retrieved successfully")
}
