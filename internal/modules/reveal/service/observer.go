package service

import (
	"math"
	"sort"
	"sync"

	"folio/internal/modules/reveal/domain"
)

const (
	DefaultMarginPx  = 100
	DefaultThreshold = 0.1
)

type Options struct {
	MarginPx int
	// Threshold is the visible ratio that counts as intersecting. Zero means
	// any overlap; a negative value selects DefaultThreshold.
	Threshold    float64
	CellHeightPx int
}

func DefaultOptions() Options {
	return Options{MarginPx: DefaultMarginPx, Threshold: DefaultThreshold, CellHeightPx: 16}
}

type observation struct {
	bounds   func() domain.Rect
	cb       func(domain.Entry)
	reported bool
	above    bool
}

// Observer reports how much of each observed region lies within the scroll
// viewport grown by a margin. Callbacks fire on the first check after
// Observe and afterwards only when a region crosses the threshold.
type Observer struct {
	threshold  float64
	marginRows int

	mu      sync.Mutex
	entries map[string]*observation
}

func NewObserver(opts Options) *Observer {
	if opts.CellHeightPx <= 0 {
		opts.CellHeightPx = 16
	}
	if opts.Threshold < 0 {
		opts.Threshold = DefaultThreshold
	}
	return &Observer{
		threshold:  opts.Threshold,
		marginRows: int(math.Ceil(float64(max(opts.MarginPx, 0)) / float64(opts.CellHeightPx))),
		entries:    map[string]*observation{},
	}
}

// Observe replaces any earlier observation registered under id.
func (o *Observer) Observe(id string, bounds func() domain.Rect, cb func(domain.Entry)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.entries[id] = &observation{bounds: bounds, cb: cb}
}

func (o *Observer) Unobserve(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.entries, id)
}

func (o *Observer) Disconnect() {
	o.mu.Lock()
	defer o.mu.Unlock()
	clear(o.entries)
}

func (o *Observer) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.entries)
}

type report struct {
	id    string
	obs   *observation
	entry domain.Entry
}

// Check evaluates every observed region against root. Callbacks run without
// the observer lock held, so they may Unobserve themselves.
func (o *Observer) Check(root domain.Rect) {
	expanded := root.Expand(o.marginRows)

	o.mu.Lock()
	ids := make([]string, 0, len(o.entries))
	for id := range o.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var due []report
	for _, id := range ids {
		obs := o.entries[id]
		ratio := domain.Ratio(obs.bounds(), expanded)
		above := ratio > 0 && ratio >= o.threshold
		if obs.reported && above == obs.above {
			continue
		}
		obs.reported, obs.above = true, above
		due = append(due, report{id: id, obs: obs, entry: domain.Entry{Ratio: ratio, Intersecting: above}})
	}
	o.mu.Unlock()

	for _, r := range due {
		o.mu.Lock()
		live := o.entries[r.id] == r.obs
		o.mu.Unlock()
		if live {
			r.obs.cb(r.entry)
		}
	}
}
