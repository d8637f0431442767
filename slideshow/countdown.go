package slideshow

// CountdownState is the state of the per-image countdown.
type CountdownState int

const (
	// Idle means no countdown is configured or the last image has expired.
	Idle CountdownState = iota
	Running
	Paused
	// Expired is transient: the current image ran out of time and the next
	// countdown is waiting for the grace delay.
	Expired
)

var countdownStateNames = [...]string{"idle", "running", "paused", "expired"}

func (s CountdownState) String() string {
	if int(s) < len(countdownStateNames) {
		return countdownStateNames[s]
	}

	return "unknown"
}

// TickResult is the outcome of delivering a tick to the countdown.
type TickResult int

const (
	// TickIgnored means the tick did not belong to the live handle.
	TickIgnored TickResult = iota
	TickRunning
	TickExpired
)

// Handle identifies the single scheduled wake-up source of a countdown.
// Done is closed as soon as the handle is replaced or cancelled so that any
// goroutine waiting on its behalf can return early.
type Handle struct {
	done chan struct{}
	id   uint64
}

// ID returns the identifier carried by the wake-up messages of h.
func (h *Handle) ID() uint64 {
	return h.id
}

// Done is closed once h is no longer live.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Countdown is the slideshow timer engine. It holds at most one live handle
// at any time; every transition that starts a new wake-up source cancels the
// previous one first.
type Countdown struct {
	live      *Handle
	seq       uint64
	remaining int
	state     CountdownState
}

// NewCountdown returns an idle countdown.
func NewCountdown() *Countdown {
	return &Countdown{}
}

// State returns the current state.
func (c *Countdown) State() CountdownState {
	return c.state
}

// Live returns the live handle or nil.
func (c *Countdown) Live() *Handle {
	return c.live
}

// Remaining returns the seconds left for the current image. The second value
// is false when no countdown is running or paused.
func (c *Countdown) Remaining() (int, bool) {
	if c.state != Running && c.state != Paused {
		return 0, false
	}

	return c.remaining, true
}

func (c *Countdown) release() {
	if c.live != nil {
		close(c.live.done)
		c.live = nil
	}
}

func (c *Countdown) issue() *Handle {
	c.release()

	c.seq++
	c.live = &Handle{
		id:   c.seq,
		done: make(chan struct{}),
	}

	return c.live
}

// Start begins a countdown of duration seconds. A non-positive duration
// leaves the countdown idle and returns nil.
func (c *Countdown) Start(duration int) *Handle {
	if duration <= 0 {
		c.Cancel()
		return nil
	}

	c.remaining = duration
	c.state = Running

	return c.issue()
}

// Tick advances the countdown by one second if id belongs to the live
// handle. When the remaining time would drop below one second the handle is
// cancelled and the countdown expires.
func (c *Countdown) Tick(id uint64) TickResult {
	if c.state != Running || c.live == nil || c.live.id != id {
		return TickIgnored
	}

	if c.remaining <= 1 {
		c.release()
		c.remaining = 0
		c.state = Expired

		return TickExpired
	}

	c.remaining--

	return TickRunning
}

// Pause freezes a running countdown. It is a no-op in any other state.
func (c *Countdown) Pause() bool {
	if c.state != Running {
		return false
	}

	c.release()
	c.state = Paused

	return true
}

// Resume continues a paused countdown with the same remaining time under a
// new handle. It returns nil when there is nothing to resume.
func (c *Countdown) Resume() *Handle {
	if c.state != Paused || c.remaining <= 0 {
		return nil
	}

	c.state = Running

	return c.issue()
}

// Reset cancels any live countdown and starts a new one.
func (c *Countdown) Reset(duration int) *Handle {
	c.release()

	return c.Start(duration)
}

// Cancel stops any live countdown and returns to idle.
func (c *Countdown) Cancel() {
	c.release()
	c.remaining = 0
	c.state = Idle
}

// Grace issues the handle for the delayed restart that follows an expiry.
func (c *Countdown) Grace() *Handle {
	if c.state != Expired {
		return nil
	}

	return c.issue()
}

// Restart starts the next countdown when the grace handle identified by id
// fires. Stale or unexpected wake-ups return nil.
func (c *Countdown) Restart(id uint64, duration int) *Handle {
	if c.state != Expired || c.live == nil || c.live.id != id {
		return nil
	}

	return c.Start(duration)
}

// Settle ends an expired countdown without scheduling another one.
func (c *Countdown) Settle() {
	if c.state != Expired {
		return
	}

	c.release()
	c.state = Idle
}
