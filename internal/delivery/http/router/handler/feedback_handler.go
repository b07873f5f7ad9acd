package handler

import (
	"log/slog"
	"net/http"

	"goodah/internal/delivery/http/response"
	"goodah/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FeedbackHandlerParams holds dependencies for FeedbackHandler, injected by Fx.
type FeedbackHandlerParams struct {
	fx.In

	FeedbackUC usecase.FeedbackUsecase
	Logger     *slog.Logger
}

// FeedbackHandler holds dependencies for feedback handlers
type FeedbackHandler struct {
	feedbackUC usecase.FeedbackUsecase
	logger     *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler
func NewFeedbackHandler(params FeedbackHandlerParams) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUC: params.FeedbackUC,
		logger:     params.Logger,
	}
}

// SubmitFeedbackRequest represents the request body for feedback submission.
// Rating is left untyped so numeric strings can be coerced like numbers.
type SubmitFeedbackRequest struct {
	Name    string `json:"name"`
	Rating  any    `json:"rating"`
	Comment string `json:"comment"`
}

// SubmitFeedback handles one feedback submission
func (h *FeedbackHandler) SubmitFeedback(c echo.Context) error {
	var req SubmitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}

	feedback, err := h.feedbackUC.SubmitFeedback(c.Request().Context(), req.Name, req.Rating, req.Comment)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("New feedback saved",
		slog.String("name", feedback.Name),
		slog.Float64("rating", feedback.Rating),
	)

	return response.Success(c, http.StatusCreated, map[string]bool{"ok": true}, "Feedback saved successfully")
}
