package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/goleak"

	"folio/internal/modules/analytics/domain"
	"folio/internal/modules/analytics/service"
)

type fixedID string

func (f fixedID) New() string { return string(f) }

type recordingSink struct {
	mu      sync.Mutex
	client  string
	events  []domain.Event
	block   chan struct{}
	entered chan struct{}
	err     error
}

func (s *recordingSink) Send(_ context.Context, clientID string, events []domain.Event) error {
	if s.entered != nil {
		s.entered <- struct{}{}
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = clientID
	s.events = append(s.events, events...)
	return s.err
}

func TestTrackerDeliversAndDrainsOnClose(t *testing.T) {
	defer goleak.VerifyNone(t)
	sink := &recordingSink{}
	tracker := service.NewTracker(sink, fixedID("client-1"), 8, nil)
	tracker.Track(domain.PageView("/"))
	tracker.Track(domain.ProjectView("project1"))
	tracker.Track(domain.Event{})
	tracker.Close()
	tracker.Close()

	if len(sink.events) != 2 || sink.client != "client-1" {
		t.Fatalf("unexpected delivery: client=%s events=%+v", sink.client, sink.events)
	}
	if s := tracker.Stats(); s.Sent != 2 || s.Dropped != 0 {
		t.Fatalf("unexpected stats %+v", s)
	}
	tracker.Track(domain.Download("cv.pdf"))
	if tracker.Stats().Dropped != 1 {
		t.Fatalf("events after close must be dropped")
	}
}

func TestTrackerDropsWhenFull(t *testing.T) {
	defer goleak.VerifyNone(t)
	sink := &recordingSink{block: make(chan struct{}), entered: make(chan struct{}, 1)}
	tracker := service.NewTracker(sink, fixedID("c"), 2, nil)

	tracker.Track(domain.PageView("/"))
	<-sink.entered // worker is now stuck inside Send
	tracker.Track(domain.FormSubmission("contact"))
	tracker.Track(domain.FormSubmission("contact"))
	tracker.Track(domain.FormSubmission("contact"))
	if got := tracker.Stats().Dropped; got != 1 {
		t.Fatalf("expected one dropped event, got %d", got)
	}
	close(sink.block)
	tracker.Close()
	if got := tracker.Stats().Sent; got != 3 {
		t.Fatalf("expected 3 sent events, got %d", got)
	}
}

func TestTrackerCountsFailures(t *testing.T) {
	defer goleak.VerifyNone(t)
	sink := &recordingSink{err: errors.New("offline")}
	tracker := service.NewTracker(sink, fixedID("c"), 4, nil)
	tracker.Track(domain.Download("cv.pdf"))
	tracker.Close()
	if s := tracker.Stats(); s.Failed != 1 || s.Sent != 0 {
		t.Fatalf("unexpected stats %+v", s)
	}
}
