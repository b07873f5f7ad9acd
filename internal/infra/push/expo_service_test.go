package push

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"goodah/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMessage() *service.PushMessage {
	return &service.PushMessage{
		To:    "ExponentPushToken[abc]",
		Sound: "default",
		Title: "Hello",
		Body:  "World",
	}
}

func TestExpoService_Send_Success(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"status":"ok","id":"ticket-1"}}`))
	}))
	defer server.Close()

	gateway := NewExpoService(server.URL, 5*time.Second, newTestLogger())

	err := gateway.Send(context.Background(), testMessage())
	require.NoError(t, err)
	assert.Equal(t, "ExponentPushToken[abc]", received["to"])
	assert.Equal(t, "default", received["sound"])
	assert.Equal(t, "Hello", received["title"])
	assert.Equal(t, "World", received["body"])
}

func TestExpoService_Send_TicketError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"status":"error","message":"DeviceNotRegistered"}}`))
	}))
	defer server.Close()

	gateway := NewExpoService(server.URL, 5*time.Second, newTestLogger())

	err := gateway.Send(context.Background(), testMessage())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DeviceNotRegistered")
}

func TestExpoService_Send_RequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"code":"PUSH_TOO_MANY_EXPERIENCE_IDS","message":"mixed projects"}]}`))
	}))
	defer server.Close()

	gateway := NewExpoService(server.URL, 5*time.Second, newTestLogger())

	err := gateway.Send(context.Background(), testMessage())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "PUSH_TOO_MANY_EXPERIENCE_IDS")
}

func TestExpoService_Send_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	gateway := NewExpoService(server.URL, 5*time.Second, newTestLogger())

	err := gateway.Send(context.Background(), testMessage())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestExpoService_Send_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	gateway := NewExpoService(server.URL, 5*time.Second, newTestLogger())

	err := gateway.Send(context.Background(), testMessage())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode expo response")
}

func TestExpoService_Send_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	gateway := NewExpoService(server.URL, 5*time.Second, newTestLogger())

	err := gateway.Send(context.Background(), testMessage())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expo request failed")
}
