package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"folio/internal/modules/capability/domain"
	capabilityout "folio/internal/modules/capability/port/out"
)

// Monitor owns the current tier. It classifies once on Start and again on
// every network-quality change; only the latest result is kept.
type Monitor struct {
	source  capabilityout.SignalSource
	network capabilityout.NetworkQuality
	log     *zap.Logger

	mu        sync.Mutex
	tier      domain.Tier
	signals   domain.Signals
	evaluated bool
	started   bool
	unsub     func()
	listeners map[int]func(domain.Tier)
	nextID    int
	// evaluation sequence: started and last stored
	seq    uint64
	stored uint64
}

// NewMonitor accepts a nil network source; the network signal then stays unknown.
func NewMonitor(source capabilityout.SignalSource, network capabilityout.NetworkQuality, log *zap.Logger) *Monitor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Monitor{
		source:    source,
		network:   network,
		log:       log,
		listeners: map[int]func(domain.Tier){},
	}
}

// Start subscribes to network changes and then evaluates the tier, so a
// change landing during the first evaluation is not lost. Calling Start twice
// is a no-op.
func (m *Monitor) Start(ctx context.Context) domain.Tier {
	m.mu.Lock()
	if m.started {
		tier := m.tier
		m.mu.Unlock()
		return tier
	}
	m.started = true
	m.mu.Unlock()

	if m.network != nil {
		cancel, ok := m.network.Subscribe(func(domain.EffectiveType) {
			m.Reevaluate(context.Background())
		})
		if ok {
			m.mu.Lock()
			m.unsub = cancel
			m.mu.Unlock()
		} else {
			m.log.Debug("network change notification unavailable")
		}
	}
	return m.Reevaluate(ctx)
}

// Reevaluate samples fresh signals and stores the resulting tier. Listeners
// are told only when the tier value changes. An evaluation overtaken by a
// later one is discarded.
func (m *Monitor) Reevaluate(ctx context.Context) domain.Tier {
	m.mu.Lock()
	m.seq++
	seq := m.seq
	m.mu.Unlock()

	signals := m.source.Sample(ctx)
	if m.network != nil {
		signals.Network = m.network.EffectiveType()
	}
	tier := domain.Classify(signals)

	m.mu.Lock()
	if seq < m.stored {
		current := m.tier
		m.mu.Unlock()
		return current
	}
	m.stored = seq
	prev, hadPrev := m.tier, m.evaluated
	m.tier = tier
	m.signals = signals
	m.evaluated = true
	var notify []func(domain.Tier)
	if !hadPrev || prev != tier {
		for _, fn := range m.listeners {
			notify = append(notify, fn)
		}
	}
	m.mu.Unlock()

	m.log.Debug("tier evaluated",
		zap.Stringer("tier", tier),
		zap.Int("viewport_px", signals.ViewportWidth),
		zap.Int("cores", signals.Cores),
		zap.Stringer("network", signals.Network),
		zap.Bool("reduced_motion", signals.ReducedMotion),
		zap.Bool("features", signals.FeaturesPresent),
	)
	if hadPrev && prev != tier {
		m.log.Info("tier changed", zap.Stringer("from", prev), zap.Stringer("to", tier))
	}
	for _, fn := range notify {
		fn(tier)
	}
	return tier
}

func (m *Monitor) Tier() domain.Tier {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tier
}

func (m *Monitor) Signals() domain.Signals {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.signals
}

// OnChange registers fn for tier changes and returns its dispose function.
func (m *Monitor) OnChange(fn func(domain.Tier)) (dispose func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.listeners, id)
			m.mu.Unlock()
		})
	}
}

// Stop drops the network subscription. Registered listeners are kept.
func (m *Monitor) Stop() {
	m.mu.Lock()
	unsub := m.unsub
	m.unsub = nil
	m.started = false
	m.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}
