package out

import "context"

// Store is a small key/value store. Get returns apperrors.ErrNotFound for a
// key that was never written.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type BackgroundDetector interface {
	DarkBackground() bool
}
