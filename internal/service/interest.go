package service

import (
	"context"
	"log"

	"vocably.app/internal/domain"
	"vocably.app/internal/model"
	"vocably.app/internal/store"
)

// InterestServiceImpl implements domain.InterestService. Unlike the
// participant counter this path has no manual fallback: if the atomic
// write fails the error is surfaced to the caller.
type InterestServiceImpl struct {
	store *store.InterestStore
}

func NewInterestService(store *store.InterestStore) *InterestServiceImpl {
	return &InterestServiceImpl{store: store}
}

// SetInterest toggles the caller's interest mark for a room. Idempotent
// per (room, user).
func (s *InterestServiceImpl) SetInterest(ctx context.Context, roomID, userID string, interested bool, meta domain.UserMeta) (*domain.InterestState, error) {
	state, err := s.store.SetInterest(ctx, roomID, userID, interested, meta)
	if err != nil {
		log.Printf("InterestService: SetInterest failed for room %s user %s: %v", roomID, userID, err)
		return nil, err
	}
	return state, nil
}

// ListInterestedUsers returns the room's interested users, oldest first.
func (s *InterestServiceImpl) ListInterestedUsers(ctx context.Context, roomID string) ([]model.RoomInterest, error) {
	return s.store.ListByRoom(ctx, roomID)
}

var _ domain.InterestService = (*InterestServiceImpl)(nil)
