package store

import (
	"context"
	"errors"
	"testing"

	"vocably.app/internal/domain"
	"vocably.app/internal/model"
)

func TestAdjustParticipantsSequence(t *testing.T) {
	db := newTestDB(t)
	s := NewRoomStore(db)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		n, err := s.AdjustParticipants(ctx, "r1", 1)
		if err != nil {
			t.Fatalf("AdjustParticipants: %v", err)
		}
		if n != i {
			t.Errorf("after join %d: got %d, want %d", i, n, i)
		}
	}

	n, err := s.AdjustParticipants(ctx, "r1", -1)
	if err != nil {
		t.Fatalf("AdjustParticipants: %v", err)
	}
	if n != 2 {
		t.Errorf("after leave: got %d, want 2", n)
	}

	n, err = s.SetParticipants(ctx, "r1", 10)
	if err != nil {
		t.Fatalf("SetParticipants: %v", err)
	}
	if n != 10 {
		t.Errorf("after set: got %d, want 10", n)
	}
}

func TestAdjustClampsAtZero(t *testing.T) {
	db := newTestDB(t)
	s := NewRoomStore(db)
	ctx := context.Background()

	n, err := s.AdjustParticipants(ctx, "empty", -1)
	if err != nil {
		t.Fatalf("AdjustParticipants: %v", err)
	}
	if n != 0 {
		t.Errorf("leave on fresh room: got %d, want 0", n)
	}

	// Clamp applies on existing rows too.
	if _, err := s.AdjustParticipants(ctx, "empty", 1); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if n, err = s.AdjustParticipants(ctx, "empty", -1); err != nil {
			t.Fatal(err)
		}
	}
	if n != 0 {
		t.Errorf("repeated leave: got %d, want 0", n)
	}
}

func TestSetParticipantsClampsNegative(t *testing.T) {
	db := newTestDB(t)
	s := NewRoomStore(db)

	n, err := s.SetParticipants(context.Background(), "r1", -5)
	if err != nil {
		t.Fatalf("SetParticipants: %v", err)
	}
	if n != 0 {
		t.Errorf("set -5: got %d, want 0", n)
	}
}

func TestGetParticipantsDefaultsToZero(t *testing.T) {
	db := newTestDB(t)
	s := NewRoomStore(db)

	n, err := s.GetParticipants(context.Background(), "never-seen")
	if err != nil {
		t.Fatalf("GetParticipants: %v", err)
	}
	if n != 0 {
		t.Errorf("absent room: got %d, want 0", n)
	}
}

func TestAdjustIgnoresOtherColumns(t *testing.T) {
	db := newTestDB(t)
	s := NewRoomStore(db)
	ctx := context.Background()

	if err := db.Create(&model.Room{ID: "lobby", Name: "The Lobby", Topic: "general"}).Error; err != nil {
		t.Fatal(err)
	}

	if _, err := s.AdjustParticipants(ctx, "lobby", 1); err != nil {
		t.Fatal(err)
	}

	room, err := s.GetRoom(ctx, "lobby")
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	if room.Name != "The Lobby" || room.Topic != "general" {
		t.Errorf("counter write touched display fields: %+v", room)
	}
	if room.Participants != 1 {
		t.Errorf("participants: got %d, want 1", room.Participants)
	}
}

func TestGetRoomNotFound(t *testing.T) {
	db := newTestDB(t)
	s := NewRoomStore(db)

	_, err := s.GetRoom(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
