// Package router contains routing setup for the HTTP delivery.
package router

import (
	"goodah/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all the handlers that need to be registered, injected by Fx.
type RouterParams struct {
	fx.In

	ReportHandler   *handler.ReportHandler
	DeviceHandler   *handler.DeviceHandler
	PushHandler     *handler.PushHandler
	CampaignHandler *handler.CampaignHandler
	FeedbackHandler *handler.FeedbackHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	reportHandler   *handler.ReportHandler
	deviceHandler   *handler.DeviceHandler
	pushHandler     *handler.PushHandler
	campaignHandler *handler.CampaignHandler
	feedbackHandler *handler.FeedbackHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		reportHandler:   params.ReportHandler,
		deviceHandler:   params.DeviceHandler,
		pushHandler:     params.PushHandler,
		campaignHandler: params.CampaignHandler,
		feedbackHandler: params.FeedbackHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Report routes
	reportGroup := e.Group("/reports")
	{
		reportGroup.POST("", r.reportHandler.CreateReport)
		reportGroup.GET("", r.reportHandler.ListReports)
		reportGroup.GET("/:id", r.reportHandler.GetReport)
	}

	// Push dispatch and campaign trigger
	e.POST("/push/send", r.pushHandler.SendPush)
	e.POST("/dailyNotify", r.campaignHandler.DailyNotify)

	// Client-facing REST endpoints, paths kept stable for the mobile app
	apiGroup := e.Group("/api")
	{
		apiGroup.POST("/save-token", r.deviceHandler.SaveToken)
		apiGroup.POST("/feedback", r.feedbackHandler.SubmitFeedback)
	}
}
