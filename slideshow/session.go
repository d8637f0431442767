// Package slideshow implements the timed reference image slideshow that
// drives a gesture drawing session.
package slideshow

import (
	"context"
	"log/slog"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/ayoisaiah/gesture/internal/config"
	"github.com/ayoisaiah/gesture/internal/models"
)

// GraceDelay is the pause between an image expiring and the countdown for
// the next image starting.
const GraceDelay = time.Second

// Builder produces the image pool for a routine.
type Builder interface {
	Build(ctx context.Context, cfg config.RoutineConfig) ([]models.ImageRecord, error)
}

type (
	loadedMsg struct {
		err     error
		session string
		images  []models.ImageRecord
		seq     uint64
	}

	tickMsg struct {
		session string
		id      uint64
	}

	graceMsg struct {
		session string
		id      uint64
	}

	// AdvancedMsg is emitted when the countdown moves the slideshow to the
	// next image on its own.
	AdvancedMsg struct {
		Index int
	}

	// FinishedMsg is emitted when the countdown of the last image expires.
	FinishedMsg struct {
		Elapsed time.Duration
		Images  int
	}
)

// State is a read-only snapshot of a session.
type State struct {
	StartedAt    time.Time
	Err          error
	Images       []models.ImageRecord
	CurrentIndex int
	Remaining    int
	Countdown    CountdownState
	HasTimer     bool
	Loading      bool
	Finished     bool
}

// Session owns the image pool, the current position and the countdown of a
// drawing session. It is not safe for concurrent use: every method must be
// called from the program's update loop.
type Session struct {
	startedAt  time.Time
	clock      clockwork.Clock
	builder    Builder
	err        error
	countdown  *Countdown
	logger     *slog.Logger
	cancelLoad context.CancelFunc
	id         string
	images     []models.ImageRecord
	cfg        config.RoutineConfig
	index      int
	loadSeq    uint64
	loading    bool
	finished   bool
	closed     bool
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used for countdown wake-ups and progress.
func WithClock(c clockwork.Clock) Option {
	return func(s *Session) {
		s.clock = c
	}
}

// WithSessionLogger sets the session logger.
func WithSessionLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// NewSession returns an idle session for cfg. Nothing is fetched until Load
// is called.
func NewSession(
	cfg config.RoutineConfig,
	builder Builder,
	opts ...Option,
) *Session {
	s := &Session{
		id:        uuid.NewString(),
		cfg:       cfg,
		builder:   builder,
		clock:     clockwork.NewRealClock(),
		countdown: NewCountdown(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With(slog.String("session_id", s.id))

	return s
}

// ID returns the unique identifier of the session.
func (s *Session) ID() string {
	return s.id
}

// Config returns the routine the session was created with.
func (s *Session) Config() config.RoutineConfig {
	return s.cfg
}

// Snapshot returns the current state of the session.
func (s *Session) Snapshot() State {
	remaining, _ := s.countdown.Remaining()

	return State{
		Images:       s.images,
		CurrentIndex: s.index,
		Remaining:    remaining,
		Countdown:    s.countdown.State(),
		HasTimer:     s.cfg.HasTimer(),
		Loading:      s.loading,
		Err:          s.err,
		StartedAt:    s.startedAt,
		Finished:     s.finished,
	}
}

// Current returns the image being displayed.
func (s *Session) Current() (models.ImageRecord, bool) {
	if s.index < 0 || s.index >= len(s.images) {
		return models.ImageRecord{}, false
	}

	return s.images[s.index], true
}

// Load builds a fresh image pool. Any load still in flight is cancelled and
// its result discarded.
func (s *Session) Load() tea.Cmd {
	if s.closed {
		return nil
	}

	if s.cancelLoad != nil {
		s.cancelLoad()
	}

	s.countdown.Cancel()

	s.loadSeq++
	s.loading = true
	s.err = nil
	s.finished = false
	s.images = nil
	s.index = 0

	ctx, cancel := context.WithCancel(context.Background())
	s.cancelLoad = cancel

	seq, id, cfg, builder := s.loadSeq, s.id, s.cfg, s.builder

	s.logger.Info("loading images",
		slog.Uint64("load_seq", seq),
		slog.Any("body_parts", cfg.BodyParts),
		slog.Int("image_count", cfg.ImageCount),
	)

	return func() tea.Msg {
		images, err := builder.Build(ctx, cfg)

		return loadedMsg{
			session: id,
			seq:     seq,
			images:  images,
			err:     err,
		}
	}
}

// Retry reloads the pool after a failure.
func (s *Session) Retry() tea.Cmd {
	return s.Load()
}

// Next moves to the following image and restarts the countdown. It is a
// no-op on the last image.
func (s *Session) Next() tea.Cmd {
	return s.move(1)
}

// Previous moves to the preceding image and restarts the countdown. It is a
// no-op on the first image.
func (s *Session) Previous() tea.Cmd {
	return s.move(-1)
}

func (s *Session) move(delta int) tea.Cmd {
	if s.closed || s.loading || len(s.images) == 0 {
		return nil
	}

	i := s.index + delta
	if i < 0 || i >= len(s.images) {
		return nil
	}

	s.index = i

	if !s.cfg.HasTimer() {
		return nil
	}

	s.finished = false

	return s.scheduleTick(s.countdown.Reset(s.cfg.TimePerImage))
}

// TogglePause pauses a running countdown or resumes a paused one.
func (s *Session) TogglePause() tea.Cmd {
	if s.closed {
		return nil
	}

	if s.countdown.Pause() {
		s.logger.Debug("countdown paused", slog.Int("index", s.index))
		return nil
	}

	h := s.countdown.Resume()
	if h == nil {
		return nil
	}

	s.logger.Debug("countdown resumed", slog.Int("index", s.index))

	return s.scheduleTick(h)
}

// Progress returns the percentage of the planned session duration that has
// elapsed since the pool was loaded. Time spent paused is included. It is 0
// when there is no timer or no images.
func (s *Session) Progress() float64 {
	if !s.cfg.HasTimer() || len(s.images) == 0 || s.startedAt.IsZero() {
		return 0
	}

	total := float64(s.cfg.TimePerImage * len(s.images))
	elapsed := s.clock.Since(s.startedAt).Seconds()

	return math.Min(1, elapsed/total) * 100
}

// Close cancels the countdown and any pending load. A closed session ignores
// all further messages.
func (s *Session) Close() {
	if s.closed {
		return
	}

	s.closed = true
	s.loading = false

	if s.cancelLoad != nil {
		s.cancelLoad()
		s.cancelLoad = nil
	}

	s.countdown.Cancel()

	s.logger.Info("session closed")
}

// Update applies the session's own messages and returns the next command.
// Messages that belong to another session are ignored.
func (s *Session) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.session == s.id {
			return s.handleLoaded(msg)
		}
	case tickMsg:
		if msg.session == s.id {
			return s.handleTick(msg)
		}
	case graceMsg:
		if msg.session == s.id {
			return s.handleGrace(msg)
		}
	}

	return nil
}

func (s *Session) handleLoaded(msg loadedMsg) tea.Cmd {
	if s.closed || msg.seq != s.loadSeq {
		s.logger.Debug("discarding stale load", slog.Uint64("load_seq", msg.seq))
		return nil
	}

	s.loading = false

	if s.cancelLoad != nil {
		s.cancelLoad()
		s.cancelLoad = nil
	}

	if msg.err != nil {
		s.err = msg.err
		s.images = nil
		s.index = 0

		s.logger.Error("loading images failed", slog.Any("error", msg.err))

		return nil
	}

	s.images = msg.images
	s.index = 0
	s.startedAt = s.clock.Now()

	s.logger.Info("images loaded", slog.Int("count", len(s.images)))

	if len(s.images) == 0 || !s.cfg.HasTimer() {
		return nil
	}

	return s.scheduleTick(s.countdown.Start(s.cfg.TimePerImage))
}

func (s *Session) handleTick(msg tickMsg) tea.Cmd {
	if s.closed {
		return nil
	}

	switch s.countdown.Tick(msg.id) {
	case TickRunning:
		return s.scheduleTick(s.countdown.Live())

	case TickExpired:
		if s.index < len(s.images)-1 {
			s.index++

			index := s.index

			return tea.Batch(
				s.scheduleGrace(s.countdown.Grace()),
				func() tea.Msg { return AdvancedMsg{Index: index} },
			)
		}

		s.countdown.Settle()
		s.finished = true

		finished := FinishedMsg{
			Images:  len(s.images),
			Elapsed: s.clock.Since(s.startedAt),
		}

		s.logger.Info("session finished",
			slog.Int("images", finished.Images),
			slog.Duration("elapsed", finished.Elapsed),
		)

		return func() tea.Msg { return finished }
	}

	return nil
}

func (s *Session) handleGrace(msg graceMsg) tea.Cmd {
	if s.closed {
		return nil
	}

	return s.scheduleTick(s.countdown.Restart(msg.id, s.cfg.TimePerImage))
}

func (s *Session) scheduleTick(h *Handle) tea.Cmd {
	if h == nil {
		return nil
	}

	return wake(s.clock, time.Second, h, tickMsg{session: s.id, id: h.ID()})
}

func (s *Session) scheduleGrace(h *Handle) tea.Cmd {
	if h == nil {
		return nil
	}

	return wake(s.clock, GraceDelay, h, graceMsg{session: s.id, id: h.ID()})
}

// wake returns a command that delivers msg after d unless h is cancelled
// first.
func wake(clock clockwork.Clock, d time.Duration, h *Handle, msg tea.Msg) tea.Cmd {
	done := h.Done()

	return func() tea.Msg {
		t := clock.NewTimer(d)
		defer t.Stop()

		select {
		case <-t.Chan():
			return msg
		case <-done:
			return nil
		}
	}
}
