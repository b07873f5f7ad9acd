package postgres

import (
	"context"

	"goodah/internal/domain/entity"
	domainerrors "goodah/internal/domain/errors"
	"goodah/internal/domain/repository"
	"goodah/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// feedbackRepository implements the repository.FeedbackRepository interface.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{
		db: db,
	}
}

// CreateFeedback persists a new feedback entry.
func (repo *feedbackRepository) CreateFeedback(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := fromFeedbackDomain(feedback)

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrFeedbackSaveFailed.WrapMessage("missing required feedback field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	feedback.CreatedAt = feedbackM.CreatedAt

	return nil
}

// fromFeedbackDomain converts a domain Feedback entity to a GORM FeedbackModel.
func fromFeedbackDomain(data *entity.Feedback) *model.FeedbackModel {
	if data == nil {
		return nil
	}

	return &model.FeedbackModel{
		ID:        data.ID,
		Name:      data.Name,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
	}
}
