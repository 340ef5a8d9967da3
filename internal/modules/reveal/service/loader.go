package service

import (
	"sync"

	"folio/internal/modules/reveal/domain"
)

// Loader gates one deferred region. With a nil observer it loads as soon as
// it is mounted.
type Loader struct {
	obs    *Observer
	id     string
	bounds func() domain.Rect

	mu      sync.Mutex
	region  domain.Region
	mounted bool
	onLoad  []func()
}

func NewLoader(obs *Observer, id string, bounds func() domain.Rect) *Loader {
	return &Loader{obs: obs, id: id, bounds: bounds}
}

func (l *Loader) Mount() {
	l.mu.Lock()
	if l.mounted || l.region.Loaded() {
		l.mu.Unlock()
		return
	}
	l.mounted = true
	if l.obs == nil {
		l.region.Force()
		fns := l.onLoad
		l.mu.Unlock()
		for _, fn := range fns {
			fn()
		}
		return
	}
	l.mu.Unlock()
	l.obs.Observe(l.id, l.bounds, l.report)
}

func (l *Loader) report(e domain.Entry) {
	l.mu.Lock()
	if !l.region.Report(e) {
		l.mu.Unlock()
		return
	}
	fns := l.onLoad
	l.mu.Unlock()

	l.obs.Unobserve(l.id)
	for _, fn := range fns {
		fn()
	}
}

// OnLoad registers fn for the load transition. fn runs at once when the
// region is already loaded.
func (l *Loader) OnLoad(fn func()) {
	l.mu.Lock()
	if l.region.Loaded() {
		l.mu.Unlock()
		fn()
		return
	}
	l.onLoad = append(l.onLoad, fn)
	l.mu.Unlock()
}

func (l *Loader) Unmount() {
	l.mu.Lock()
	wasMounted := l.mounted
	l.mounted = false
	l.mu.Unlock()
	if wasMounted && l.obs != nil {
		l.obs.Unobserve(l.id)
	}
}

func (l *Loader) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.region.Loaded()
}

func (l *Loader) Visible() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.region.Visible()
}

func (l *Loader) ID() string { return l.id }
