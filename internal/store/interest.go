package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"vocably.app/internal/domain"
	"vocably.app/internal/model"
)

// InterestStore persists per-room interest marks. All writes go through
// a single transaction that mutates the association row and the
// denormalized counter together; there is no manual fallback for this
// path.
type InterestStore struct {
	db *gorm.DB
}

func NewInterestStore(db *gorm.DB) *InterestStore {
	return &InterestStore{db: db}
}

// SetInterest records or removes the (room, user) mark and returns the
// updated aggregate count plus the caller's resulting state, in one
// round trip. Setting the same state twice is a no-op.
func (s *InterestStore) SetInterest(ctx context.Context, roomID, userID string, interested bool, meta domain.UserMeta) (*domain.InterestState, error) {
	var state domain.InterestState

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if interested {
			row := model.RoomInterest{
				RoomID:    roomID,
				UserID:    userID,
				UserName:  meta.Name,
				UserEmail: meta.Email,
				UserImage: meta.Image,
			}
			// Duplicate (room, user) means already interested.
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("room_id = ? AND user_id = ?", roomID, userID).
				Delete(&model.RoomInterest{}).Error; err != nil {
				return err
			}
		}

		var count int64
		if err := tx.Model(&model.RoomInterest{}).Where("room_id = ?", roomID).Count(&count).Error; err != nil {
			return err
		}

		// Keep the denormalized room counter in step. The room row may
		// not exist yet; a missing row is ignored.
		if err := tx.Model(&model.Room{}).Where("id = ?", roomID).
			UpdateColumn("interested_count", count).Error; err != nil {
			return err
		}

		state.InterestedCount = int(count)
		state.UserInterested = interested
		return nil
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to set interest", err)
	}

	return &state, nil
}

// ListByRoom returns all interest marks for a room, oldest first.
func (s *InterestStore) ListByRoom(ctx context.Context, roomID string) ([]model.RoomInterest, error) {
	var rows []model.RoomInterest
	if err := s.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, domain.NewInternalError("failed to list interested users", err)
	}
	return rows, nil
}
