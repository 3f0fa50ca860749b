package repository

import (
	"context"

	"github.com/alexanderramin/focusflow/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.FocusSession) error
	Upsert(ctx context.Context, s *domain.FocusSession) error
	GetByID(ctx context.Context, id string) (*domain.FocusSession, error)
	// List returns sessions newest first. A limit <= 0 returns all rows.
	List(ctx context.Context, limit int) ([]*domain.FocusSession, error)
	Delete(ctx context.Context, id string) error
}

type TimerStateRepo interface {
	// Get returns the stored timer, or an idle timer when none is stored.
	Get(ctx context.Context) (*domain.TimerState, error)
	Save(ctx context.Context, t *domain.TimerState) error
	Clear(ctx context.Context) error
}

// KeyValueRepo stores opaque string values by key.
type KeyValueRepo interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
}
