package service

import (
	"context"
	"testing"

	"vocably.app/internal/cache"
	"vocably.app/internal/domain"
	"vocably.app/internal/model"
	"vocably.app/internal/store"
)

func newRoomService(t *testing.T, atomicOps, swallow bool) (*RoomServiceImpl, *fakeNotifier) {
	t.Helper()
	notifier := &fakeNotifier{}
	svc := NewRoomService(store.NewRoomStore(newTestDB(t)), cache.NewParticipants(), notifier, atomicOps, swallow)
	return svc, notifier
}

func TestUpdateParticipantsSequence(t *testing.T) {
	for name, atomic := range map[string]bool{"atomic": true, "fallback": false} {
		t.Run(name, func(t *testing.T) {
			svc, notifier := newRoomService(t, atomic, true)
			ctx := context.Background()

			for want := 1; want <= 3; want++ {
				n, err := svc.UpdateParticipants(ctx, "r1", domain.ActionJoin, 0)
				if err != nil {
					t.Fatalf("join: %v", err)
				}
				if n != want {
					t.Errorf("join %d: got %d, want %d", want, n, want)
				}
			}

			n, err := svc.UpdateParticipants(ctx, "r1", domain.ActionLeave, 0)
			if err != nil {
				t.Fatalf("leave: %v", err)
			}
			if n != 2 {
				t.Errorf("leave: got %d, want 2", n)
			}

			n, err = svc.UpdateParticipants(ctx, "r1", domain.ActionSet, 10)
			if err != nil {
				t.Fatalf("set: %v", err)
			}
			if n != 10 {
				t.Errorf("set: got %d, want 10", n)
			}

			if got := svc.Participants()["r1"]; got != 10 {
				t.Errorf("cache: got %d, want 10", got)
			}
			if last := notifier.last(); last["r1"] != 10 {
				t.Errorf("broadcast snapshot: got %v, want r1=10", last)
			}
			if notifier.calls() != 5 {
				t.Errorf("broadcasts: got %d, want 5 (one per write)", notifier.calls())
			}
		})
	}
}

func TestUpdateParticipantsSetClampsNegative(t *testing.T) {
	svc, _ := newRoomService(t, true, true)

	n, err := svc.UpdateParticipants(context.Background(), "r1", domain.ActionSet, -5)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if n != 0 {
		t.Errorf("set -5: got %d, want 0", n)
	}
}

func TestUpdateParticipantsLeaveClampsAtZero(t *testing.T) {
	svc, _ := newRoomService(t, true, true)

	n, err := svc.UpdateParticipants(context.Background(), "fresh", domain.ActionLeave, 0)
	if err != nil {
		t.Fatalf("leave: %v", err)
	}
	if n != 0 {
		t.Errorf("leave on fresh room: got %d, want 0", n)
	}
}

func TestUpdateParticipantsUnknownAction(t *testing.T) {
	svc, notifier := newRoomService(t, true, true)

	_, err := svc.UpdateParticipants(context.Background(), "r1", "hover", 0)
	if err == nil {
		t.Fatal("unknown action must error even with swallow enabled")
	}
	if notifier.calls() != 0 {
		t.Error("unknown action must not broadcast")
	}
}

func TestSwallowedWriteErrorsStillSucceed(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewRoomService(failingStore{}, cache.NewParticipants(), notifier, true, true)
	ctx := context.Background()

	n, err := svc.UpdateParticipants(ctx, "r1", domain.ActionJoin, 0)
	if err != nil {
		t.Fatalf("join with swallow enabled must not error: %v", err)
	}
	if n != 1 {
		t.Errorf("locally computed join: got %d, want 1", n)
	}
	if last := notifier.last(); last["r1"] != 1 {
		t.Errorf("broadcast after swallowed failure: got %v, want r1=1", last)
	}

	n, err = svc.UpdateParticipants(ctx, "r2", domain.ActionLeave, 0)
	if err != nil || n != 0 {
		t.Errorf("local leave on empty room: got %d, %v; want 0, nil", n, err)
	}
}

func TestWriteErrorsSurfaceWhenNotSwallowed(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewRoomService(failingStore{}, cache.NewParticipants(), notifier, true, false)

	_, err := svc.UpdateParticipants(context.Background(), "r1", domain.ActionJoin, 0)
	if err == nil {
		t.Fatal("expected error with swallow disabled")
	}
	if notifier.calls() != 0 {
		t.Error("failed write must not broadcast when errors surface")
	}
}

func TestParticipantsReflectsOnlyTouchedRooms(t *testing.T) {
	db := newTestDB(t)
	if err := db.Create(&model.Room{ID: "seeded", Name: "seeded", Participants: 5}).Error; err != nil {
		t.Fatal(err)
	}
	svc := NewRoomService(store.NewRoomStore(db), cache.NewParticipants(), &fakeNotifier{}, true, true)

	if got := svc.Participants(); len(got) != 0 {
		t.Errorf("untouched cache: got %v, want empty", got)
	}

	if _, err := svc.UpdateParticipants(context.Background(), "seeded", domain.ActionJoin, 0); err != nil {
		t.Fatal(err)
	}
	if got := svc.Participants()["seeded"]; got != 6 {
		t.Errorf("after touch: got %d, want 6", got)
	}
}
