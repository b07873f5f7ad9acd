package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"goodah/internal/domain/entity"
	domainerrors "goodah/internal/domain/errors"
	mockUC "goodah/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFeedbackHandler_SubmitFeedback_Success(t *testing.T) {
	feedbackUC := mockUC.NewMockFeedbackUsecase(t)
	h := &FeedbackHandler{feedbackUC: feedbackUC, logger: newTestLogger()}

	stored := &entity.Feedback{
		ID:        uuid.New(),
		Name:      "Alice",
		Rating:    5,
		Comment:   "great app",
		CreatedAt: time.Now(),
	}

	feedbackUC.EXPECT().
		SubmitFeedback(mock.Anything, "Alice", float64(5), "great app").
		Return(stored, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/feedback",
		strings.NewReader(`{"name":"Alice","rating":5,"comment":"great app"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.SubmitFeedback(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
}

func TestFeedbackHandler_SubmitFeedback_StringRating(t *testing.T) {
	feedbackUC := mockUC.NewMockFeedbackUsecase(t)
	h := &FeedbackHandler{feedbackUC: feedbackUC, logger: newTestLogger()}

	stored := &entity.Feedback{ID: uuid.New(), Name: "Bob", Rating: 4, Comment: "ok"}

	// JSON strings pass through untouched; the use case coerces them.
	feedbackUC.EXPECT().
		SubmitFeedback(mock.Anything, "Bob", "4", "ok").
		Return(stored, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/feedback",
		strings.NewReader(`{"name":"Bob","rating":"4","comment":"ok"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.SubmitFeedback(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestFeedbackHandler_SubmitFeedback_ValidationError(t *testing.T) {
	feedbackUC := mockUC.NewMockFeedbackUsecase(t)
	h := &FeedbackHandler{feedbackUC: feedbackUC, logger: newTestLogger()}

	feedbackUC.EXPECT().
		SubmitFeedback(mock.Anything, "", nil, "great app").
		Return(nil, domainerrors.ErrValidation.WithDetails("name is required"))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/feedback",
		strings.NewReader(`{"comment":"great app"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.SubmitFeedback(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, rec.Body.String(), "name is required")
}
