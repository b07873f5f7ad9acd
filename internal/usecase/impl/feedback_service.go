package impl

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"goodah/internal/domain/entity"
	domainerrors "goodah/internal/domain/errors"
	"goodah/internal/domain/repository"
	"goodah/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
}

// NewFeedbackService creates a new feedback intake service instance
func NewFeedbackService(feedbackRepo repository.FeedbackRepository) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
	}
}

// SubmitFeedback validates and persists one feedback entry.
func (s *feedbackService) SubmitFeedback(ctx context.Context, name string, rating any, comment string) (*entity.Feedback, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domainerrors.ErrValidation.WithDetails("name is required")
	}
	if strings.TrimSpace(comment) == "" {
		return nil, domainerrors.ErrValidation.WithDetails("comment is required")
	}

	numericRating, err := coerceRating(rating)
	if err != nil {
		return nil, domainerrors.ErrValidation.WithDetails(err.Error())
	}

	feedback := &entity.Feedback{
		ID:        uuid.New(),
		Name:      name,
		Rating:    numericRating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}

	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		return nil, errors.Wrap(err, "failed to create feedback")
	}

	return feedback, nil
}

// coerceRating accepts the JSON representations clients actually send for a
// rating (number, numeric string, json.Number) and converts them to float64.
func coerceRating(rating any) (float64, error) {
	switch v := rating.(type) {
	case nil:
		return 0, errors.New("rating is required")
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, errors.Errorf("rating %q is not numeric", v.String())
		}

		return parsed, nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, errors.Errorf("rating %q is not numeric", v)
		}

		return parsed, nil
	default:
		return 0, errors.Errorf("rating has unsupported type %T", rating)
	}
}
