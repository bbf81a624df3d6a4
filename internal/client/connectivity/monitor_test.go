package connectivity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mpetrenko/brandsync/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakePinger struct {
	fail atomic.Bool
}

func (p *fakePinger) Ping(ctx context.Context) error {
	if p.fail.Load() {
		return errors.New("server unavailable")
	}
	return nil
}

func TestMonitorStartsOffline(t *testing.T) {
	m := NewMonitor(&fakePinger{}, testLogger())
	assert.False(t, m.IsOnline())
}

func TestSetOnlineNotifiesOnTransitionsOnly(t *testing.T) {
	m := NewMonitor(&fakePinger{}, testLogger())

	var mu sync.Mutex
	var events []bool
	unsubscribe := m.Subscribe(func(online bool) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, online)
	})

	m.SetOnline(true)
	m.SetOnline(true)
	m.SetOnline(false)
	m.SetOnline(false)
	m.SetOnline(true)

	mu.Lock()
	assert.Equal(t, []bool{true, false, true}, events)
	mu.Unlock()

	unsubscribe()
	m.SetOnline(false)

	mu.Lock()
	assert.Len(t, events, 3)
	mu.Unlock()
}

func TestSubscribeMultipleListeners(t *testing.T) {
	m := NewMonitor(&fakePinger{}, testLogger())

	var first, second atomic.Int32
	m.Subscribe(func(bool) { first.Add(1) })
	m.Subscribe(func(bool) { second.Add(1) })

	m.SetOnline(true)

	assert.Equal(t, int32(1), first.Load())
	assert.Equal(t, int32(1), second.Load())
}

func TestRunTracksProbeResults(t *testing.T) {
	defer goleak.VerifyNone(t)

	pinger := &fakePinger{}
	pinger.fail.Store(true)

	m := NewMonitor(pinger, testLogger())

	transitions := make(chan bool, 8)
	m.Subscribe(func(online bool) { transitions <- online })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		m.Run(ctx, 5*time.Millisecond)
	}()

	pinger.fail.Store(false)
	select {
	case online := <-transitions:
		require.True(t, online)
	case <-time.After(2 * time.Second):
		t.Fatal("no online transition observed")
	}
	assert.True(t, m.IsOnline())

	pinger.fail.Store(true)
	select {
	case online := <-transitions:
		require.False(t, online)
	case <-time.After(2 * time.Second):
		t.Fatal("no offline transition observed")
	}
	assert.False(t, m.IsOnline())

	cancel()
	<-done
}
