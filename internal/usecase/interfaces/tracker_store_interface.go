package interfaces

import "context"

// ITrackerStore is a small key-value port backing the calorie tracker.
// Records live under fixed keys per user, mirroring the client-local
// storage the tracker was designed around.

type ITrackerStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}
