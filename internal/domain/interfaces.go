package domain

import (
	"context"

	"vocably.app/internal/model"
)

// ParticipantAction is a live-count mutation on a room.
type ParticipantAction string

const (
	ActionJoin  ParticipantAction = "join"
	ActionLeave ParticipantAction = "leave"
	ActionSet   ParticipantAction = "set"
)

// MembershipAction is a community join/leave request.
type MembershipAction string

const (
	MemberJoin  MembershipAction = "join"
	MemberLeave MembershipAction = "leave"
)

// UserMeta carries the denormalized display fields the identity provider
// hands us for the current caller.
type UserMeta struct {
	Name  string
	Email string
	Image string
}

// InterestState is the result of an interest toggle.
type InterestState struct {
	InterestedCount int
	UserInterested  bool
}

// MembershipState is the result of a membership change or query.
type MembershipState struct {
	MemberCount int64
	Joined      bool
}

// ===========================
// Room service interfaces
// ===========================

// RoomService tracks per-room live participant counts.
type RoomService interface {
	// Apply a join/leave/set action and return the resulting count.
	UpdateParticipants(ctx context.Context, roomID string, action ParticipantAction, count int) (int, error)
	// Snapshot of the in-memory cache; reflects only rooms touched since
	// process start.
	Participants() map[string]int
	// Look up a room by ID.
	GetRoom(ctx context.Context, roomID string) (*model.Room, error)
}

// InterestService tracks which users marked a room interested.
type InterestService interface {
	SetInterest(ctx context.Context, roomID, userID string, interested bool, meta UserMeta) (*InterestState, error)
	// Interested users for a room, oldest first.
	ListInterestedUsers(ctx context.Context, roomID string) ([]model.RoomInterest, error)
}

// CommunityService tracks community membership.
type CommunityService interface {
	SetMembership(ctx context.Context, userID string, action MembershipAction, meta UserMeta) (*MembershipState, error)
	// Read-only variant; Joined is false when userID is empty.
	GetMembership(ctx context.Context, userID string) (*MembershipState, error)
}

// QuizService persists quiz submissions, one per user.
type QuizService interface {
	Submit(ctx context.Context, userID string, score int) error
}

// ===========================
// Fan-out interface
// ===========================

// Notifier pushes count snapshots to connected real-time listeners.
// Publishing is fire-and-forget: failures must never propagate to the
// caller's request.
type Notifier interface {
	BroadcastCounts(rooms map[string]int)
}
