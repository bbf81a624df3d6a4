// Package connectivity translates backend reachability into a single
// subscribable boolean. The browser original listened to online/offline
// events; here the signal is sourced from periodic pings, the way the
// rest of the client already probes the server.
package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/mpetrenko/brandsync/internal/logging"
)

const probeTimeout = 3 * time.Second

// Pinger is the probe the monitor uses to decide reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Monitor fans a boolean online signal out to subscribers. Every
// subscriber receives every transition exactly once; no events are
// delivered for repeated identical probe results.
type Monitor struct {
	pinger Pinger
	logger logging.Logger

	mu     sync.Mutex
	online bool
	subs   map[int]func(bool)
	nextID int
}

// NewMonitor returns a Monitor that is offline until the first successful
// probe.
func NewMonitor(p Pinger, l logging.Logger) *Monitor {
	return &Monitor{
		pinger: p,
		logger: l.With("module", "connectivity"),
		subs:   make(map[int]func(bool)),
	}
}

// IsOnline reports the last known state.
func (m *Monitor) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Subscribe registers fn for connection transitions and returns an
// unsubscribe function. fn is invoked synchronously from the monitor's
// probe goroutine; long work belongs in the subscriber's own goroutine.
func (m *Monitor) Subscribe(fn func(bool)) (unsubscribe func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.subs[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

// SetOnline records a state observation and, on a transition, notifies
// every subscriber. Exported so tests and alternative signal sources can
// drive the monitor directly.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	listeners := make([]func(bool), 0, len(m.subs))
	for _, fn := range m.subs {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(online)
	}
}

// Run probes the backend every interval until ctx is cancelled, feeding
// observations into SetOnline.
func (m *Monitor) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
			err := m.pinger.Ping(probeCtx)
			cancel()

			if err != nil && m.IsOnline() {
				m.logger.Info(ctx, "connection lost")
			}
			if err == nil && !m.IsOnline() {
				m.logger.Info(ctx, "connection restored")
			}
			m.SetOnline(err == nil)

		case <-ctx.Done():
			return
		}
	}
}
