package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"goodah/internal/delivery/http/validator"
	mockUC "goodah/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDeviceHandler_SaveToken_Success(t *testing.T) {
	deviceUC := mockUC.NewMockDeviceUsecase(t)
	h := &DeviceHandler{deviceUC: deviceUC, logger: newTestLogger()}

	deviceUC.EXPECT().
		RegisterDevice(mock.Anything, "ExponentPushToken[abc]", "user-1").
		Return(nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/save-token",
		strings.NewReader(`{"token":"ExponentPushToken[abc]","userId":"user-1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.SaveToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
}

func TestDeviceHandler_SaveToken_DefaultsAnonymousOwner(t *testing.T) {
	deviceUC := mockUC.NewMockDeviceUsecase(t)
	h := &DeviceHandler{deviceUC: deviceUC, logger: newTestLogger()}

	deviceUC.EXPECT().
		RegisterDevice(mock.Anything, "ExponentPushToken[abc]", "anon").
		Return(nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/save-token",
		strings.NewReader(`{"token":"ExponentPushToken[abc]"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.SaveToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_SaveToken_MissingToken(t *testing.T) {
	deviceUC := mockUC.NewMockDeviceUsecase(t)
	h := &DeviceHandler{deviceUC: deviceUC, logger: newTestLogger()}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/save-token",
		strings.NewReader(`{"userId":"user-1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.SaveToken(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	deviceUC.AssertNotCalled(t, "RegisterDevice", mock.Anything, mock.Anything, mock.Anything)
}
