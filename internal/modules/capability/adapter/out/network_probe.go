package out

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"folio/internal/modules/capability/domain"
	"folio/internal/platform/clock"
)

type ProbeOptions struct {
	URL      string
	Interval time.Duration
	Timeout  time.Duration
}

// NetworkProbe estimates the effective connection type from the round trip
// of a small HTTP request and re-measures on an interval. A failed probe
// reports unknown rather than a slow type.
type NetworkProbe struct {
	client *http.Client
	opts   ProbeOptions
	clk    clock.Clock
	log    *zap.Logger

	mu      sync.Mutex
	current domain.EffectiveType
	subs    map[int]func(domain.EffectiveType)
	nextID  int
}

func NewNetworkProbe(opts ProbeOptions, clk clock.Clock, log *zap.Logger) *NetworkProbe {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if clk == nil {
		clk = clock.SystemClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &NetworkProbe{
		client: &http.Client{Timeout: opts.Timeout},
		opts:   opts,
		clk:    clk,
		log:    log,
		subs:   map[int]func(domain.EffectiveType){},
	}
}

func (p *NetworkProbe) EffectiveType() domain.EffectiveType {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *NetworkProbe) Subscribe(fn func(domain.EffectiveType)) (func(), bool) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	p.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subs, id)
			p.mu.Unlock()
		})
	}, true
}

// Measure issues one probe request and returns the resulting type.
func (p *NetworkProbe) Measure(ctx context.Context) (domain.EffectiveType, error) {
	if p.opts.URL == "" {
		return domain.NetworkUnknown, fmt.Errorf("probe url is empty")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.opts.URL, nil)
	if err != nil {
		return domain.NetworkUnknown, fmt.Errorf("build probe request: %w", err)
	}
	start := p.clk.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return domain.NetworkUnknown, fmt.Errorf("probe %s: %w", p.opts.URL, err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
	rtt := p.clk.Now().Sub(start)
	if resp.StatusCode >= http.StatusInternalServerError {
		return domain.NetworkUnknown, fmt.Errorf("probe %s: status %d", p.opts.URL, resp.StatusCode)
	}
	// A zero reading from a coarse clock still means the request went through.
	if rtt <= 0 {
		rtt = time.Nanosecond
	}
	return domain.EffectiveTypeForRTT(rtt), nil
}

// Refresh measures once and notifies subscribers when the type changed.
func (p *NetworkProbe) Refresh(ctx context.Context) domain.EffectiveType {
	t, err := p.Measure(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return p.EffectiveType()
		}
		p.log.Debug("network probe failed", zap.Error(err))
	}
	p.mu.Lock()
	changed := t != p.current
	p.current = t
	var notify []func(domain.EffectiveType)
	if changed {
		for _, fn := range p.subs {
			notify = append(notify, fn)
		}
	}
	p.mu.Unlock()
	if changed {
		p.log.Info("network effective type changed", zap.Stringer("type", t))
		for _, fn := range notify {
			fn(t)
		}
	}
	return t
}

// Run measures immediately and then every interval until ctx is done.
func (p *NetworkProbe) Run(ctx context.Context) error {
	interval := p.opts.Interval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	p.Refresh(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.Refresh(ctx)
		}
	}
}
