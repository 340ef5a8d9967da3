package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"folio/internal/modules/analytics/domain"
	analyticsout "folio/internal/modules/analytics/port/out"
	"folio/internal/platform/id"
)

const (
	defaultQueueSize = 64
	batchSize        = 25
	sendTimeout      = 5 * time.Second
)

// Tracker forwards events to a sink from a single background worker. Track
// drops the event when the queue is full.
type Tracker struct {
	sink     analyticsout.Sink
	clientID string
	log      *zap.Logger

	queue     chan domain.Event
	closeOnce sync.Once
	mu        sync.RWMutex
	closed    bool
	wg        sync.WaitGroup

	sent    atomic.Int64
	dropped atomic.Int64
	failed  atomic.Int64
}

func NewTracker(sink analyticsout.Sink, ids id.Generator, queueSize int, log *zap.Logger) *Tracker {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if log == nil {
		log = zap.NewNop()
	}
	t := &Tracker{
		sink:     sink,
		clientID: ids.New(),
		log:      log,
		queue:    make(chan domain.Event, queueSize),
	}
	t.wg.Add(1)
	go t.run()
	return t
}

func (t *Tracker) ClientID() string { return t.clientID }

func (t *Tracker) Track(e domain.Event) {
	if err := e.Validate(); err != nil {
		t.log.Debug("analytics event rejected", zap.Error(err))
		return
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		t.dropped.Add(1)
		return
	}
	select {
	case t.queue <- e:
	default:
		t.dropped.Add(1)
	}
}

func (t *Tracker) run() {
	defer t.wg.Done()
	for e := range t.queue {
		batch := []domain.Event{e}
	fill:
		for len(batch) < batchSize {
			select {
			case next, ok := <-t.queue:
				if !ok {
					break fill
				}
				batch = append(batch, next)
			default:
				break fill
			}
		}
		t.flush(batch)
	}
}

func (t *Tracker) flush(batch []domain.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	if err := t.sink.Send(ctx, t.clientID, batch); err != nil {
		t.failed.Add(int64(len(batch)))
		t.log.Warn("analytics send failed", zap.Int("events", len(batch)), zap.Error(err))
		return
	}
	t.sent.Add(int64(len(batch)))
}

// Close stops accepting events, sends what is queued and waits for the
// worker to exit.
func (t *Tracker) Close() {
	t.closeOnce.Do(func() {
		t.mu.Lock()
		t.closed = true
		close(t.queue)
		t.mu.Unlock()
		t.wg.Wait()
	})
}

type Stats struct {
	Sent, Dropped, Failed int
}

func (t *Tracker) Stats() Stats {
	return Stats{Sent: int(t.sent.Load()), Dropped: int(t.dropped.Load()), Failed: int(t.failed.Load())}
}
