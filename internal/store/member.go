package store

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"vocably.app/internal/domain"
	"vocably.app/internal/model"
)

// MemberStore persists community membership. SetMembership is the
// atomic path; JoinFallback/LeaveFallback plus the separate Count and
// IsMember queries reproduce the legacy two-step sequence, which is not
// atomic relative to concurrent callers.
type MemberStore struct {
	db *gorm.DB
}

func NewMemberStore(db *gorm.DB) *MemberStore {
	return &MemberStore{db: db}
}

// SetMembership applies the change and returns the updated count and
// the caller's membership flag in one transaction.
func (s *MemberStore) SetMembership(ctx context.Context, userID string, action domain.MembershipAction, meta domain.UserMeta) (*domain.MembershipState, error) {
	var state domain.MembershipState

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		switch action {
		case domain.MemberJoin:
			row := model.CommunityMember{
				UserID:    userID,
				UserName:  meta.Name,
				UserEmail: meta.Email,
				UserImage: meta.Image,
			}
			// Already a member is a no-op, not an error.
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
				return err
			}
			state.Joined = true
		case domain.MemberLeave:
			if err := tx.Where("user_id = ?", userID).Delete(&model.CommunityMember{}).Error; err != nil {
				return err
			}
			state.Joined = false
		}

		return tx.Model(&model.CommunityMember{}).Count(&state.MemberCount).Error
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to update membership", err)
	}

	return &state, nil
}

// JoinFallback inserts the membership row directly, tolerating a
// uniqueness conflict as "already joined".
func (s *MemberStore) JoinFallback(ctx context.Context, userID string, meta domain.UserMeta) error {
	row := model.CommunityMember{
		UserID:    userID,
		UserName:  meta.Name,
		UserEmail: meta.Email,
		UserImage: meta.Image,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	if err != nil {
		log.Printf("MemberStore: fallback insert failed: %v", err)
		return domain.NewInternalError("failed to join community", err)
	}
	return nil
}

// LeaveFallback deletes the membership row directly. Deleting a user
// who never joined affects no rows and is not an error.
func (s *MemberStore) LeaveFallback(ctx context.Context, userID string) error {
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.CommunityMember{}).Error; err != nil {
		log.Printf("MemberStore: fallback delete failed: %v", err)
		return domain.NewInternalError("failed to leave community", err)
	}
	return nil
}

// Count returns the aggregate member count.
func (s *MemberStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.CommunityMember{}).Count(&count).Error; err != nil {
		return 0, domain.NewInternalError("failed to count members", err)
	}
	return count, nil
}

// IsMember reports whether the user has a membership row.
func (s *MemberStore) IsMember(ctx context.Context, userID string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.CommunityMember{}).
		Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return false, domain.NewInternalError("failed to check membership", err)
	}
	return count > 0, nil
}
