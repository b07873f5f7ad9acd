// Package push provides PushGateway implementations for the supported
// external push services.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"goodah/internal/domain/service"

	"github.com/pkg/errors"
)

type expoService struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// expoResponse is the relevant part of the Expo push API response body.
type expoResponse struct {
	Data struct {
		Status  string `json:"status"`
		ID      string `json:"id"`
		Message string `json:"message"`
	} `json:"data"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// NewExpoService creates a PushGateway backed by the Expo push API.
func NewExpoService(endpoint string, timeout time.Duration, logger *slog.Logger) service.PushGateway {
	return &expoService{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Send posts one message to the Expo endpoint. Any transport failure,
// non-2xx status, undecodable body, or per-ticket error status is returned
// as an error; the caller decides how fatal that is.
func (s *expoService) Send(ctx context.Context, msg *service.PushMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "expo request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read expo response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("expo returned non-success status: %d", resp.StatusCode)
	}

	var result expoResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return errors.Wrap(err, "failed to decode expo response")
	}

	if len(result.Errors) > 0 {
		return errors.Errorf("expo rejected request: %s: %s", result.Errors[0].Code, result.Errors[0].Message)
	}

	if result.Data.Status != "ok" {
		return errors.Errorf("expo ticket status %q: %s", result.Data.Status, result.Data.Message)
	}

	s.logger.Debug("Push sent",
		slog.String("to", msg.To),
		slog.String("ticket_id", result.Data.ID),
	)

	return nil
}
