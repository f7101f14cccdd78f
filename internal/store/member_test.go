package store

import (
	"context"
	"testing"

	"vocably.app/internal/domain"
)

func TestSetMembershipJoinIdempotent(t *testing.T) {
	db := newTestDB(t)
	s := NewMemberStore(db)
	ctx := context.Background()
	meta := domain.UserMeta{Name: "Ada"}

	first, err := s.SetMembership(ctx, "u1", domain.MemberJoin, meta)
	if err != nil {
		t.Fatalf("SetMembership: %v", err)
	}
	second, err := s.SetMembership(ctx, "u1", domain.MemberJoin, meta)
	if err != nil {
		t.Fatalf("SetMembership repeat: %v", err)
	}

	if first.MemberCount != 1 || !first.Joined {
		t.Errorf("first join: got %+v, want count 1 joined", first)
	}
	if second.MemberCount != 1 || !second.Joined {
		t.Errorf("second join: got %+v, want count 1 joined (no double count)", second)
	}
}

func TestSetMembershipLeaveNeverJoined(t *testing.T) {
	db := newTestDB(t)
	s := NewMemberStore(db)

	state, err := s.SetMembership(context.Background(), "ghost", domain.MemberLeave, domain.UserMeta{})
	if err != nil {
		t.Fatalf("leave of non-member must not error: %v", err)
	}
	if state.MemberCount != 0 || state.Joined {
		t.Errorf("got %+v, want count 0 and not joined", state)
	}
}

func TestMembershipRoundTrip(t *testing.T) {
	db := newTestDB(t)
	s := NewMemberStore(db)
	ctx := context.Background()

	if _, err := s.SetMembership(ctx, "u1", domain.MemberJoin, domain.UserMeta{}); err != nil {
		t.Fatal(err)
	}
	joined, err := s.IsMember(ctx, "u1")
	if err != nil || !joined {
		t.Errorf("after join: joined=%v err=%v, want true", joined, err)
	}

	if _, err := s.SetMembership(ctx, "u1", domain.MemberLeave, domain.UserMeta{}); err != nil {
		t.Fatal(err)
	}
	joined, err = s.IsMember(ctx, "u1")
	if err != nil || joined {
		t.Errorf("after leave: joined=%v err=%v, want false", joined, err)
	}
}

func TestJoinFallbackToleratesDuplicate(t *testing.T) {
	db := newTestDB(t)
	s := NewMemberStore(db)
	ctx := context.Background()

	if err := s.JoinFallback(ctx, "u1", domain.UserMeta{}); err != nil {
		t.Fatalf("JoinFallback: %v", err)
	}
	if err := s.JoinFallback(ctx, "u1", domain.UserMeta{}); err != nil {
		t.Fatalf("duplicate JoinFallback must be a no-op: %v", err)
	}

	count, err := s.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("count: got %d, want 1", count)
	}
}

func TestLeaveFallbackNeverJoined(t *testing.T) {
	db := newTestDB(t)
	s := NewMemberStore(db)

	if err := s.LeaveFallback(context.Background(), "ghost"); err != nil {
		t.Fatalf("LeaveFallback on non-member: %v", err)
	}
}
