package service

import (
	"context"
	"errors"
	"log"

	"vocably.app/internal/cache"
	"vocably.app/internal/domain"
	"vocably.app/internal/model"
)

// ParticipantStore is the slice of the backend the counter needs.
type ParticipantStore interface {
	GetRoom(ctx context.Context, roomID string) (*model.Room, error)
	GetParticipants(ctx context.Context, roomID string) (int, error)
	AdjustParticipants(ctx context.Context, roomID string, delta int) (int, error)
	SetParticipants(ctx context.Context, roomID string, count int) (int, error)
}

// RoomServiceImpl implements domain.RoomService. Every successful write
// refreshes the in-memory cache with the backend-confirmed value and
// fans the full snapshot out through the notifier.
type RoomServiceImpl struct {
	store    ParticipantStore
	cache    *cache.Participants
	notifier domain.Notifier

	// atomicOps selects the single-statement server-side increment.
	// When false the legacy read-then-write sequence is used; two
	// concurrent joins can then read the same stale count and lose an
	// increment.
	atomicOps bool

	// swallowWriteErrors keeps room actions succeeding from the
	// client's point of view even when the durable write fails.
	swallowWriteErrors bool
}

func NewRoomService(store ParticipantStore, cache *cache.Participants, notifier domain.Notifier, atomicOps, swallowWriteErrors bool) *RoomServiceImpl {
	return &RoomServiceImpl{
		store:              store,
		cache:              cache,
		notifier:           notifier,
		atomicOps:          atomicOps,
		swallowWriteErrors: swallowWriteErrors,
	}
}

// UpdateParticipants applies a join/leave/set action and returns the
// resulting count.
func (s *RoomServiceImpl) UpdateParticipants(ctx context.Context, roomID string, action domain.ParticipantAction, count int) (int, error) {
	confirmed, err := s.write(ctx, roomID, action, count)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) || !s.swallowWriteErrors {
			return 0, err
		}
		// Never fail the client-visible room action: log, fall back to
		// a locally computed value, and still broadcast it.
		log.Printf("RoomService: durable write failed for %s (%s): %v", roomID, action, err)
		confirmed = s.localValue(roomID, action, count)
	}

	s.cache.Set(roomID, confirmed)
	s.notifier.BroadcastCounts(s.cache.Snapshot())
	return confirmed, nil
}

func (s *RoomServiceImpl) write(ctx context.Context, roomID string, action domain.ParticipantAction, count int) (int, error) {
	switch action {
	case domain.ActionJoin:
		return s.adjust(ctx, roomID, 1)
	case domain.ActionLeave:
		return s.adjust(ctx, roomID, -1)
	case domain.ActionSet:
		return s.store.SetParticipants(ctx, roomID, count)
	default:
		return 0, domain.NewBadRequestError("unknown participant action")
	}
}

func (s *RoomServiceImpl) adjust(ctx context.Context, roomID string, delta int) (int, error) {
	if s.atomicOps {
		return s.store.AdjustParticipants(ctx, roomID, delta)
	}

	// Legacy path: read the current count, then write it back modified.
	current, err := s.store.GetParticipants(ctx, roomID)
	if err != nil {
		return 0, err
	}
	return s.store.SetParticipants(ctx, roomID, current+delta)
}

// localValue computes a best-effort count from the cache when the
// backend write failed.
func (s *RoomServiceImpl) localValue(roomID string, action domain.ParticipantAction, count int) int {
	current, _ := s.cache.Get(roomID)
	switch action {
	case domain.ActionJoin:
		return current + 1
	case domain.ActionLeave:
		if current <= 0 {
			return 0
		}
		return current - 1
	default:
		if count < 0 {
			return 0
		}
		return count
	}
}

// Participants returns the cache snapshot; it reflects only rooms
// touched since process start.
func (s *RoomServiceImpl) Participants() map[string]int {
	return s.cache.Snapshot()
}

// GetRoom looks up a room for the connection-details endpoint.
func (s *RoomServiceImpl) GetRoom(ctx context.Context, roomID string) (*model.Room, error) {
	return s.store.GetRoom(ctx, roomID)
}

var _ domain.RoomService = (*RoomServiceImpl)(nil)
