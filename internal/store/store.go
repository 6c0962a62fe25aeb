// Package store provides session persistence. The engine only needs
// get/put-by-id, list, and delete; the in-memory implementation is
// authoritative when no database is configured and the Postgres
// implementation persists sessions as jsonb documents.
package store

import (
	"context"
	"errors"

	"github.com/listingone/leadgen/internal/domain"
)

// ErrNotFound is returned when no session exists for the given id.
var ErrNotFound = errors.New("session not found")

// Store is the persistence contract the engine depends on.
type Store interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Put(ctx context.Context, s *domain.Session) error
	List(ctx context.Context) ([]*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
