package store

import (
	"context"
	"errors"
	"testing"

	"vocably.app/internal/domain"
)

func TestQuizCreateOncePerUser(t *testing.T) {
	db := newTestDB(t)
	s := NewQuizStore(db)
	ctx := context.Background()

	if err := s.Create(ctx, "u1", 7); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := s.Create(ctx, "u1", 9)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("duplicate submit: got %v, want ErrAlreadyExists", err)
	}

	var appErr *domain.AppError
	if !errors.As(err, &appErr) || appErr.Code != 409 {
		t.Errorf("duplicate submit: want AppError with code 409, got %v", err)
	}

	// A different user is unaffected.
	if err := s.Create(ctx, "u2", 3); err != nil {
		t.Fatalf("Create for second user: %v", err)
	}
}
