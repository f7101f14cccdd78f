package service

import (
	"context"
	"log"

	"vocably.app/internal/domain"
	"vocably.app/internal/store"
)

// CommunityServiceImpl implements domain.CommunityService. The atomic
// single-transaction path is preferred; the manual insert/delete plus
// separate count and flag queries remain available behind the
// atomic-ops switch for backends without server-side procedures. The
// fallback sequence is not atomic relative to concurrent callers.
type CommunityServiceImpl struct {
	store     *store.MemberStore
	atomicOps bool
}

func NewCommunityService(store *store.MemberStore, atomicOps bool) *CommunityServiceImpl {
	return &CommunityServiceImpl{store: store, atomicOps: atomicOps}
}

// SetMembership joins or leaves the community and returns the updated
// count and the caller's membership flag. A duplicate join is a no-op.
func (s *CommunityServiceImpl) SetMembership(ctx context.Context, userID string, action domain.MembershipAction, meta domain.UserMeta) (*domain.MembershipState, error) {
	if action != domain.MemberJoin && action != domain.MemberLeave {
		return nil, domain.NewBadRequestError("unknown membership action")
	}

	if s.atomicOps {
		return s.store.SetMembership(ctx, userID, action, meta)
	}

	// Legacy two-step sequence: mutate, then query the aggregate count
	// and the caller's flag separately.
	var err error
	if action == domain.MemberJoin {
		err = s.store.JoinFallback(ctx, userID, meta)
	} else {
		err = s.store.LeaveFallback(ctx, userID)
	}
	if err != nil {
		log.Printf("CommunityService: fallback %s failed for %s: %v", action, userID, err)
		return nil, err
	}

	return s.GetMembership(ctx, userID)
}

// GetMembership reports the aggregate count and the caller's flag.
// Joined is false when userID is empty.
func (s *CommunityServiceImpl) GetMembership(ctx context.Context, userID string) (*domain.MembershipState, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}

	joined := false
	if userID != "" {
		joined, err = s.store.IsMember(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	return &domain.MembershipState{MemberCount: count, Joined: joined}, nil
}

var _ domain.CommunityService = (*CommunityServiceImpl)(nil)
