package out

import (
	"sync"
	"time"

	ambientout "folio/internal/modules/ambient/port/out"
	"folio/internal/platform/clock"
)

// DisplayRate is the frame rate the scheduler pretends the display runs at.
const DisplayRate = 60

// TimerScheduler fires requested frames on wall-clock timers, one display
// interval after the request.
type TimerScheduler struct {
	interval time.Duration
	clk      clock.Clock

	mu     sync.Mutex
	next   ambientout.Handle
	timers map[ambientout.Handle]*time.Timer
	closed bool
	wg     sync.WaitGroup
}

func NewTimerScheduler(rate int, clk clock.Clock) *TimerScheduler {
	if rate <= 0 {
		rate = DisplayRate
	}
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &TimerScheduler{
		interval: time.Second / time.Duration(rate),
		clk:      clk,
		timers:   map[ambientout.Handle]*time.Timer{},
	}
}

func (s *TimerScheduler) Request(fn func(now time.Time)) ambientout.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0
	}
	s.next++
	h := s.next
	s.wg.Add(1)
	s.timers[h] = time.AfterFunc(s.interval, func() {
		defer s.wg.Done()
		s.mu.Lock()
		_, live := s.timers[h]
		delete(s.timers, h)
		s.mu.Unlock()
		if live {
			fn(s.clk.Now())
		}
	})
	return h
}

func (s *TimerScheduler) Cancel(h ambientout.Handle) {
	s.mu.Lock()
	t, ok := s.timers[h]
	delete(s.timers, h)
	s.mu.Unlock()
	if ok && t.Stop() {
		s.wg.Done()
	}
}

// Close cancels every pending frame and waits for running callbacks.
// Requests after Close are ignored.
func (s *TimerScheduler) Close() {
	s.mu.Lock()
	s.closed = true
	for h, t := range s.timers {
		if t.Stop() {
			s.wg.Done()
		}
		delete(s.timers, h)
	}
	s.mu.Unlock()
	s.wg.Wait()
}
