package service

import (
	"sort"
	"sync"
	"time"

	ambientout "folio/internal/modules/ambient/port/out"
)

// ManualScheduler holds requested frames until Fire is called. It drives
// offline rendering and tests.
type ManualScheduler struct {
	mu      sync.Mutex
	next    ambientout.Handle
	pending map[ambientout.Handle]func(time.Time)
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{pending: map[ambientout.Handle]func(time.Time){}}
}

func (s *ManualScheduler) Request(fn func(now time.Time)) ambientout.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.pending[s.next] = fn
	return s.next
}

func (s *ManualScheduler) Cancel(h ambientout.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, h)
}

// Fire runs every callback pending at call time, in request order, and
// returns how many ran. Callbacks requested meanwhile wait for the next Fire.
func (s *ManualScheduler) Fire(now time.Time) int {
	s.mu.Lock()
	handles := make([]ambientout.Handle, 0, len(s.pending))
	for h := range s.pending {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	fns := make([]func(time.Time), 0, len(handles))
	for _, h := range handles {
		fns = append(fns, s.pending[h])
		delete(s.pending, h)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(now)
	}
	return len(fns)
}

func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
