package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"vocably.app/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Room{},
		&model.RoomInterest{},
		&model.CommunityMember{},
		&model.QuizResult{},
	); err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}

	return db
}

// fakeNotifier records every snapshot it is handed.
type fakeNotifier struct {
	mu        sync.Mutex
	snapshots []map[string]int
}

func (n *fakeNotifier) BroadcastCounts(rooms map[string]int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.snapshots = append(n.snapshots, rooms)
}

func (n *fakeNotifier) last() map[string]int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.snapshots) == 0 {
		return nil
	}
	return n.snapshots[len(n.snapshots)-1]
}

func (n *fakeNotifier) calls() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.snapshots)
}

// failingStore errors on every durable operation.
type failingStore struct{}

var errBackendDown = fmt.Errorf("backend down")

func (failingStore) GetRoom(ctx context.Context, roomID string) (*model.Room, error) {
	return nil, errBackendDown
}

func (failingStore) GetParticipants(ctx context.Context, roomID string) (int, error) {
	return 0, errBackendDown
}

func (failingStore) AdjustParticipants(ctx context.Context, roomID string, delta int) (int, error) {
	return 0, errBackendDown
}

func (failingStore) SetParticipants(ctx context.Context, roomID string, count int) (int, error) {
	return 0, errBackendDown
}
