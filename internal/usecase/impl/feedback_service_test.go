package impl

import (
	"context"
	"testing"

	domainerrors "goodah/internal/domain/errors"
	mockRepo "goodah/internal/mocks/repository"
	"goodah/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// feedbackServiceFixtures holds all test dependencies for feedback service tests.
type feedbackServiceFixtures struct {
	service      usecase.FeedbackUsecase
	feedbackRepo *mockRepo.MockFeedbackRepository
}

func createTestFeedbackService(t *testing.T) feedbackServiceFixtures {
	feedbackRepo := mockRepo.NewMockFeedbackRepository(t)
	service := NewFeedbackService(feedbackRepo)

	return feedbackServiceFixtures{
		service:      service,
		feedbackRepo: feedbackRepo,
	}
}

func TestFeedbackService_SubmitFeedback_Success(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()

	fx.feedbackRepo.EXPECT().
		CreateFeedback(ctx, mock.AnythingOfType("*entity.Feedback")).
		Return(nil)

	feedback, err := fx.service.SubmitFeedback(ctx, "Alice", float64(5), "great app")
	require.NoError(t, err)
	require.NotNil(t, feedback)
	assert.NotEqual(t, uuid.Nil, feedback.ID)
	assert.Equal(t, "Alice", feedback.Name)
	assert.Equal(t, 5.0, feedback.Rating)
	assert.Equal(t, "great app", feedback.Comment)
	assert.False(t, feedback.CreatedAt.IsZero())
}

func TestFeedbackService_SubmitFeedback_StringRating(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()

	fx.feedbackRepo.EXPECT().
		CreateFeedback(ctx, mock.AnythingOfType("*entity.Feedback")).
		Return(nil)

	feedback, err := fx.service.SubmitFeedback(ctx, "Bob", "4.5", "works well")
	require.NoError(t, err)
	assert.Equal(t, 4.5, feedback.Rating)
}

func TestFeedbackService_SubmitFeedback_IntRating(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()

	fx.feedbackRepo.EXPECT().
		CreateFeedback(ctx, mock.AnythingOfType("*entity.Feedback")).
		Return(nil)

	feedback, err := fx.service.SubmitFeedback(ctx, "Bob", 3, "fine")
	require.NoError(t, err)
	assert.Equal(t, 3.0, feedback.Rating)
}

func TestFeedbackService_SubmitFeedback_EmptyName(t *testing.T) {
	fx := createTestFeedbackService(t)

	feedback, err := fx.service.SubmitFeedback(context.Background(), "  ", float64(5), "great app")
	assert.Error(t, err)
	assert.Nil(t, feedback)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidation.ErrorCode(), appErr.ErrorCode())
	fx.feedbackRepo.AssertNotCalled(t, "CreateFeedback", mock.Anything, mock.Anything)
}

func TestFeedbackService_SubmitFeedback_EmptyComment(t *testing.T) {
	fx := createTestFeedbackService(t)

	feedback, err := fx.service.SubmitFeedback(context.Background(), "Alice", float64(5), "")
	assert.Error(t, err)
	assert.Nil(t, feedback)
}

func TestFeedbackService_SubmitFeedback_NilRating(t *testing.T) {
	fx := createTestFeedbackService(t)

	feedback, err := fx.service.SubmitFeedback(context.Background(), "Alice", nil, "great app")
	assert.Error(t, err)
	assert.Nil(t, feedback)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidation.ErrorCode(), appErr.ErrorCode())
}

func TestFeedbackService_SubmitFeedback_NonNumericRating(t *testing.T) {
	fx := createTestFeedbackService(t)

	feedback, err := fx.service.SubmitFeedback(context.Background(), "Alice", "excellent", "great app")
	assert.Error(t, err)
	assert.Nil(t, feedback)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidation.ErrorCode(), appErr.ErrorCode())
}

func TestFeedbackService_SubmitFeedback_StorageError(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()

	fx.feedbackRepo.EXPECT().
		CreateFeedback(ctx, mock.AnythingOfType("*entity.Feedback")).
		Return(errors.New("database error"))

	feedback, err := fx.service.SubmitFeedback(ctx, "Alice", float64(5), "great app")
	assert.Error(t, err)
	assert.Nil(t, feedback)
	assert.Contains(t, err.Error(), "failed to create feedback")
}
