package slideshow

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/gesture/internal/config"
	"github.com/ayoisaiah/gesture/internal/logging"
	"github.com/ayoisaiah/gesture/internal/models"
)

var errUpstream = errors.New("upstream unavailable")

type stubBuilder struct {
	err    error
	block  chan struct{}
	ctxErr chan error
	calls  int
}

func (b *stubBuilder) Build(
	ctx context.Context,
	cfg config.RoutineConfig,
) ([]models.ImageRecord, error) {
	b.calls++

	if b.block != nil {
		select {
		case <-b.block:
		case <-ctx.Done():
			if b.ctxErr != nil {
				b.ctxErr <- ctx.Err()
			}

			return nil, ctx.Err()
		}
	}

	if b.err != nil {
		return nil, b.err
	}

	images := make([]models.ImageRecord, cfg.ImageCount)
	for i := range images {
		images[i] = models.ImageRecord{
			ID:       fmt.Sprintf("img-%d", i),
			BodyPart: cfg.BodyParts[0],
		}
	}

	return images, nil
}

func routine(count, secs int) config.RoutineConfig {
	return config.RoutineConfig{
		BodyParts:    []config.BodyPart{config.Hands},
		ContentType:  config.SFW,
		ImageCount:   count,
		TimePerImage: secs,
	}
}

func newTestSession(
	t *testing.T,
	cfg config.RoutineConfig,
	b Builder,
) (*Session, *clockwork.FakeClock) {
	t.Helper()

	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	s := NewSession(cfg, b, WithClock(clock), WithSessionLogger(logging.Discard()))

	return s, clock
}

// load runs the load command synchronously and feeds its result back.
func load(t *testing.T, s *Session) tea.Cmd {
	t.Helper()

	cmd := s.Load()
	require.NotNil(t, cmd)

	return s.Update(cmd())
}

func tick(s *Session, n int) tea.Cmd {
	var cmd tea.Cmd

	for range n {
		var id uint64
		if h := s.countdown.Live(); h != nil {
			id = h.ID()
		}

		cmd = s.Update(tickMsg{session: s.id, id: id})
	}

	return cmd
}

func grace(s *Session) tea.Cmd {
	h := s.countdown.Live()
	if h == nil {
		return nil
	}

	return s.Update(graceMsg{session: s.id, id: h.ID()})
}

func TestSessionLoadStartsCountdown(t *testing.T) {
	s, clock := newTestSession(t, routine(6, 30), &stubBuilder{})

	cmd := load(t, s)
	assert.NotNil(t, cmd, "a tick should be scheduled")

	st := s.Snapshot()
	assert.False(t, st.Loading)
	assert.NoError(t, st.Err)
	assert.Len(t, st.Images, 6)
	assert.Equal(t, 0, st.CurrentIndex)
	assert.Equal(t, Running, st.Countdown)
	assert.Equal(t, 30, st.Remaining)
	assert.Equal(t, clock.Now(), st.StartedAt)

	clock.Advance(15 * time.Second)

	assert.InDelta(t, 8.33, s.Progress(), 0.01)
}

func TestSessionProgressCapped(t *testing.T) {
	s, clock := newTestSession(t, routine(6, 15), &stubBuilder{})
	load(t, s)

	clock.Advance(10 * time.Minute)

	assert.InDelta(t, 100, s.Progress(), 0.0001)
}

func TestSessionAutoAdvance(t *testing.T) {
	s, _ := newTestSession(t, routine(6, 15), &stubBuilder{})
	load(t, s)

	tick(s, 14)
	assert.Equal(t, 0, s.Snapshot().CurrentIndex)

	cmd := tick(s, 1)
	require.NotNil(t, cmd)

	st := s.Snapshot()
	assert.Equal(t, 1, st.CurrentIndex)
	assert.Equal(t, Expired, st.Countdown)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	require.Len(t, batch, 2)
	assert.Equal(t, AdvancedMsg{Index: 1}, batch[1]())

	// ticks during the grace delay do nothing
	assert.Nil(t, tick(s, 3))
	assert.Equal(t, 1, s.Snapshot().CurrentIndex)

	assert.NotNil(t, grace(s))

	st = s.Snapshot()
	assert.Equal(t, Running, st.Countdown)
	assert.Equal(t, 15, st.Remaining)
}

func TestSessionFinishesOnLastImage(t *testing.T) {
	s, clock := newTestSession(t, routine(6, 15), &stubBuilder{})
	load(t, s)

	for range 5 {
		tick(s, 15)
		clock.Advance(16 * time.Second)
		grace(s)
	}

	require.Equal(t, 5, s.Snapshot().CurrentIndex)

	cmd := tick(s, 15)
	require.NotNil(t, cmd)

	msg, ok := cmd().(FinishedMsg)
	require.True(t, ok)
	assert.Equal(t, 6, msg.Images)
	assert.Equal(t, 80*time.Second, msg.Elapsed)

	st := s.Snapshot()
	assert.Equal(t, 5, st.CurrentIndex)
	assert.Equal(t, Idle, st.Countdown)
	assert.True(t, st.Finished)
	assert.Nil(t, s.countdown.Live())
}

func TestSessionNavigation(t *testing.T) {
	s, _ := newTestSession(t, routine(6, 30), &stubBuilder{})
	load(t, s)

	assert.Nil(t, s.Previous(), "previous on the first image is a no-op")
	assert.Equal(t, 0, s.Snapshot().CurrentIndex)

	tick(s, 10)

	stale := s.countdown.Live().ID()

	assert.NotNil(t, s.Next())

	st := s.Snapshot()
	assert.Equal(t, 1, st.CurrentIndex)
	assert.Equal(t, 30, st.Remaining)

	assert.Nil(t, s.Update(tickMsg{session: s.id, id: stale}))
	assert.Equal(t, 30, s.Snapshot().Remaining)

	for range 4 {
		s.Next()
	}

	assert.Equal(t, 5, s.Snapshot().CurrentIndex)
	assert.Nil(t, s.Next(), "next on the last image is a no-op")
	assert.Equal(t, 5, s.Snapshot().CurrentIndex)

	s.Previous()
	assert.Equal(t, 4, s.Snapshot().CurrentIndex)
}

func TestSessionNavigationCancelsGrace(t *testing.T) {
	s, _ := newTestSession(t, routine(6, 15), &stubBuilder{})
	load(t, s)
	tick(s, 15)

	pending := s.countdown.Live()
	require.NotNil(t, pending)

	s.Previous()

	assert.Nil(t, s.Update(graceMsg{session: s.id, id: pending.ID()}))

	st := s.Snapshot()
	assert.Equal(t, 0, st.CurrentIndex)
	assert.Equal(t, Running, st.Countdown)
	assert.Equal(t, 15, st.Remaining)
}

func TestSessionTogglePause(t *testing.T) {
	s, _ := newTestSession(t, routine(6, 30), &stubBuilder{})
	load(t, s)
	tick(s, 5)

	paused := s.countdown.Live().ID()

	assert.Nil(t, s.TogglePause())
	assert.Equal(t, Paused, s.Snapshot().Countdown)

	assert.Nil(t, s.Update(tickMsg{session: s.id, id: paused}))
	assert.Equal(t, 25, s.Snapshot().Remaining)

	assert.NotNil(t, s.TogglePause())

	st := s.Snapshot()
	assert.Equal(t, Running, st.Countdown)
	assert.Equal(t, 25, st.Remaining)

	tick(s, 1)
	assert.Equal(t, 24, s.Snapshot().Remaining)
}

func TestSessionWithoutTimer(t *testing.T) {
	s, clock := newTestSession(t, routine(6, config.NoTimer), &stubBuilder{})

	assert.Nil(t, load(t, s))

	st := s.Snapshot()
	assert.False(t, st.HasTimer)
	assert.Equal(t, Idle, st.Countdown)

	clock.Advance(time.Hour)
	assert.Zero(t, s.Progress())

	assert.Nil(t, s.Next())
	assert.Equal(t, 1, s.Snapshot().CurrentIndex)
	assert.Nil(t, s.TogglePause())
	assert.Equal(t, Idle, s.Snapshot().Countdown)
}

func TestSessionLoadFailureAndRetry(t *testing.T) {
	b := &stubBuilder{err: errUpstream}
	s, _ := newTestSession(t, routine(6, 30), b)

	assert.Nil(t, load(t, s))

	st := s.Snapshot()
	assert.ErrorIs(t, st.Err, errUpstream)
	assert.Empty(t, st.Images)
	assert.False(t, st.Loading)
	assert.Equal(t, Idle, st.Countdown)
	assert.Zero(t, s.Progress())
	assert.Nil(t, s.Next())

	b.err = nil

	cmd := s.Retry()
	assert.True(t, s.Snapshot().Loading)
	assert.NoError(t, s.Snapshot().Err)

	s.Update(cmd())

	st = s.Snapshot()
	assert.NoError(t, st.Err)
	assert.Len(t, st.Images, 6)
	assert.Equal(t, Running, st.Countdown)
	assert.Equal(t, 2, b.calls)
}

func TestSessionStaleLoadDiscarded(t *testing.T) {
	s, _ := newTestSession(t, routine(6, 30), &stubBuilder{})

	first := s.Load()
	second := s.Load()

	assert.Nil(t, s.Update(first()))
	assert.True(t, s.Snapshot().Loading)

	s.Update(second())

	st := s.Snapshot()
	assert.False(t, st.Loading)
	assert.Len(t, st.Images, 6)
}

func TestSessionReloadCancelsPendingBuild(t *testing.T) {
	b := &stubBuilder{block: make(chan struct{}), ctxErr: make(chan error, 1)}
	s, _ := newTestSession(t, routine(6, 30), b)

	first := s.Load()

	done := make(chan tea.Msg, 1)
	go func() { done <- first() }()

	s.Close()

	select {
	case err := <-b.ctxErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("pending build was not cancelled")
	}

	assert.Nil(t, s.Update(<-done))
	assert.Empty(t, s.Snapshot().Images)
}

func TestSessionClosedIgnoresMessages(t *testing.T) {
	s, _ := newTestSession(t, routine(6, 30), &stubBuilder{})
	load(t, s)

	live := s.countdown.Live()
	s.Close()

	assert.Equal(t, Idle, s.Snapshot().Countdown)
	assert.Nil(t, s.Update(tickMsg{session: s.id, id: live.ID()}))
	assert.Nil(t, s.Load())
	assert.Nil(t, s.Next())
	assert.Nil(t, s.TogglePause())
}

func TestSessionIgnoresForeignMessages(t *testing.T) {
	s, _ := newTestSession(t, routine(6, 30), &stubBuilder{})
	other, _ := newTestSession(t, routine(6, 30), &stubBuilder{})

	load(t, s)

	id := s.countdown.Live().ID()

	assert.Nil(t, other.Update(tickMsg{session: s.id, id: id}))
	assert.Nil(t, s.Update(tickMsg{session: other.id, id: id}))
	assert.Equal(t, 30, s.Snapshot().Remaining)
}

func TestWakeDeliversAfterDelay(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := NewCountdown()
	h := c.Start(10)

	out := make(chan tea.Msg, 1)
	go func() { out <- wake(clock, time.Second, h, tickMsg{id: h.ID()})() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	clock.Advance(time.Second)

	select {
	case msg := <-out:
		assert.Equal(t, tickMsg{id: h.ID()}, msg)
	case <-ctx.Done():
		t.Fatal("wake-up was not delivered")
	}
}

func TestWakeReturnsWhenCancelled(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := NewCountdown()
	h := c.Start(10)

	out := make(chan tea.Msg, 1)
	go func() { out <- wake(clock, time.Second, h, tickMsg{id: h.ID()})() }()

	c.Pause()

	select {
	case msg := <-out:
		assert.Nil(t, msg)
	case <-time.After(time.Second):
		t.Fatal("cancelled wake-up did not return")
	}
}
