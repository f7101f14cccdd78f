package service

import (
	"context"

	"vocably.app/internal/domain"
	"vocably.app/internal/store"
)

// QuizServiceImpl implements domain.QuizService.
type QuizServiceImpl struct {
	store *store.QuizStore
}

func NewQuizService(store *store.QuizStore) *QuizServiceImpl {
	return &QuizServiceImpl{store: store}
}

// Submit records a quiz score, one submission per user.
func (s *QuizServiceImpl) Submit(ctx context.Context, userID string, score int) error {
	if userID == "" {
		return domain.NewUnauthorizedError("missing user identity")
	}
	return s.store.Create(ctx, userID, score)
}

var _ domain.QuizService = (*QuizServiceImpl)(nil)
