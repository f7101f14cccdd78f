package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"vocably.app/internal/domain"
	"vocably.app/internal/model"
)

// RoomStore reads and writes the per-room live counters. It offers two
// write strategies: AdjustParticipants performs a single server-side
// clamped increment, while GetParticipants + SetParticipants is the
// legacy read-then-write sequence that can lose updates under
// concurrent callers. The service layer picks one at startup.
type RoomStore struct {
	db *gorm.DB
}

func NewRoomStore(db *gorm.DB) *RoomStore {
	return &RoomStore{db: db}
}

// GetRoom fetches a room by ID.
func (s *RoomStore) GetRoom(ctx context.Context, roomID string) (*model.Room, error) {
	var room model.Room
	if err := s.db.WithContext(ctx).First(&room, "id = ?", roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("room not found")
		}
		return nil, domain.NewInternalError("failed to fetch room", err)
	}
	return &room, nil
}

// GetParticipants reads the authoritative count, defaulting to 0 when
// the room row is absent.
func (s *RoomStore) GetParticipants(ctx context.Context, roomID string) (int, error) {
	var room model.Room
	err := s.db.WithContext(ctx).Select("participants").First(&room, "id = ?", roomID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, domain.NewInternalError("failed to read participants", err)
	}
	if room.Participants < 0 {
		return 0, nil
	}
	return room.Participants, nil
}

// AdjustParticipants applies delta inside a single server-side UPDATE,
// clamped at zero, and returns the confirmed value. The room row is
// created on first touch.
func (s *RoomStore) AdjustParticipants(ctx context.Context, roomID string, delta int) (int, error) {
	res := s.db.WithContext(ctx).Model(&model.Room{}).
		Where("id = ?", roomID).
		UpdateColumn("participants", gorm.Expr(
			"CASE WHEN participants + ? < 0 THEN 0 ELSE participants + ? END", delta, delta))
	if res.Error != nil {
		return 0, domain.NewInternalError("failed to adjust participants", res.Error)
	}

	if res.RowsAffected == 0 {
		if err := s.createCounterRow(ctx, roomID, clampCount(delta)); err != nil {
			return 0, err
		}
	}

	return s.GetParticipants(ctx, roomID)
}

// SetParticipants overwrites the count with a caller-supplied value,
// clamped to a non-negative integer, and returns the confirmed value.
func (s *RoomStore) SetParticipants(ctx context.Context, roomID string, count int) (int, error) {
	count = clampCount(count)

	res := s.db.WithContext(ctx).Model(&model.Room{}).
		Where("id = ?", roomID).
		UpdateColumn("participants", count)
	if res.Error != nil {
		return 0, domain.NewInternalError("failed to set participants", res.Error)
	}

	if res.RowsAffected == 0 {
		if err := s.createCounterRow(ctx, roomID, count); err != nil {
			return 0, err
		}
	}

	return s.GetParticipants(ctx, roomID)
}

// createCounterRow inserts a room row holding only the counter. A
// concurrent insert wins silently; the caller re-reads afterwards.
func (s *RoomStore) createCounterRow(ctx context.Context, roomID string, count int) error {
	room := model.Room{ID: roomID, Name: roomID, Participants: count}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&room).Error
	if err != nil {
		return domain.NewInternalError("failed to create room counter row", err)
	}
	return nil
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
