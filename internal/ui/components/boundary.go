package components

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// Boundary records the first panic raised while updating or rendering.
// It is shared by pointer between copies of the root model.
type Boundary struct {
	mu    sync.Mutex
	err   error
	stack []byte
}

// Catch stores r as the boundary error unless one is already held.
func (b *Boundary) Catch(r any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err == nil {
		if err, ok := r.(error); ok {
			b.err = fmt.Errorf("panic: %w", err)
		} else {
			b.err = fmt.Errorf("panic: %v", r)
		}
		b.stack = debug.Stack()
	}
	return b.err
}

func (b *Boundary) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

func (b *Boundary) Stack() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stack
}

func (b *Boundary) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.err, b.stack = nil, nil
}
