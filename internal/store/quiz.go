package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"vocably.app/internal/domain"
	"vocably.app/internal/model"
)

// QuizStore persists quiz submissions, one per user.
type QuizStore struct {
	db *gorm.DB
}

func NewQuizStore(db *gorm.DB) *QuizStore {
	return &QuizStore{db: db}
}

// Create records a submission. A second submission from the same user
// fails with a conflict.
func (s *QuizStore) Create(ctx context.Context, userID string, score int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.QuizResult{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrAlreadyExists
		}

		return tx.Create(&model.QuizResult{
			ID:     uuid.NewString(),
			UserID: userID,
			Score:  score,
		}).Error
	})
	// The unique index backs the in-transaction check up.
	if errors.Is(err, domain.ErrAlreadyExists) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.NewConflictError("quiz already submitted")
	}
	if err != nil {
		return domain.NewInternalError("failed to save quiz result", err)
	}
	return nil
}
