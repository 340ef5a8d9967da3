package out

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	apperrors "folio/internal/platform/errors"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "folio.db")
	store, err := NewSQLiteStore(path, nil)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.Get(ctx, "theme"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := store.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "theme", "light"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewSQLiteStore(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if got, err := reopened.Get(ctx, "theme"); err != nil || got != "light" {
		t.Fatalf("expected persisted light theme, got %q %v", got, err)
	}
}
