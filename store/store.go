// Package store persists brain snapshots so that a run can pick up
// where a previous one left off.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no snapshot exists under a key
var ErrNotFound = errors.New("snapshot not found")

// Store saves and loads brain snapshots by key
type Store interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Close() error
}

// Key builds the snapshot key for a brain and world pairing
func Key(brain, world string) string {
	return "beccatest:" + brain + ":" + world
}
