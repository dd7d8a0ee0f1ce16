// Countdown state machine. Owns the timer's value and mode; driven by
// debounced button events and the millisecond clock.
package core

// TimerState enumerates the countdown's modes.
type TimerState uint8

const (
	StateSet     TimerState = iota // adjusting the target time
	StateRunning                   // counting down
	StatePaused                    // countdown suspended, value preserved
	StateDone                      // reached zero
)

func (s TimerState) String() string {
	switch s {
	case StateSet:
		return "set"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateDone:
		return "done"
	}
	return "unknown"
}

const (
	// DefaultSetValue is the target time at power-on, in seconds.
	DefaultSetValue = 60

	// AdjustStep is the increment applied per adjust press, in seconds.
	AdjustStep = 10

	// MaxSetValue is the largest settable time (99:59). Adjusting past it
	// wraps to MinSetValue rather than saturating.
	MaxSetValue = 5999
	MinSetValue = 10
)

// Countdown owns the timer value and mode. All mutation happens from the
// control loop; nothing here is safe for concurrent use.
type Countdown struct {
	State     TimerState
	SetValue  uint32 // target time in seconds
	Remaining uint32 // seconds left

	// lastTick is the clock reading at the last consumed second boundary.
	// Only meaningful while running.
	lastTick uint32
}

// NewCountdown creates a countdown in set mode with the default target.
func NewCountdown() *Countdown {
	return &Countdown{
		State:     StateSet,
		SetValue:  DefaultSetValue,
		Remaining: DefaultSetValue,
	}
}

// Load copies the set value into the remaining time. Only meaningful in
// set mode; elsewhere it is a no-op.
func (c *Countdown) Load() {
	if c.State == StateSet {
		c.Remaining = c.SetValue
	}
}

// Adjust adds ten seconds to the set value, wrapping to the ten-second
// floor past 99:59. No-op outside set mode.
func (c *Countdown) Adjust() {
	if c.State != StateSet {
		return
	}
	c.SetValue += AdjustStep
	if c.SetValue > MaxSetValue {
		c.SetValue = MinSetValue
	}
	c.Remaining = c.SetValue
}

// StartStop is the start/pause toggle: Set starts a fresh countdown,
// Running pauses, Paused resumes from the preserved remaining time (not
// from the set value), Done returns to set mode.
func (c *Countdown) StartStop() {
	switch c.State {
	case StateSet:
		c.Remaining = c.SetValue
		c.lastTick = Millis()
		c.setState(StateRunning)
	case StateRunning:
		c.setState(StatePaused)
	case StatePaused:
		c.lastTick = Millis()
		c.setState(StateRunning)
	case StateDone:
		c.Remaining = c.SetValue
		c.setState(StateSet)
	}
}

// Reset returns to set mode from any state, discarding any countdown in
// progress.
func (c *Countdown) Reset() {
	c.Remaining = c.SetValue
	c.setState(StateSet)
}

// Update consumes at most one elapsed second per call while running; at
// zero it transitions to done instead of decrementing. If the loop stalls
// past several second boundaries (a debounce settle, for instance) only
// one second is consumed when polling resumes; missed boundaries are not
// replayed.
func (c *Countdown) Update() {
	if c.State != StateRunning {
		return
	}

	now := Millis()
	if ElapsedMS(c.lastTick, now) < 1000 {
		return
	}
	c.lastTick = now

	if c.Remaining > 0 {
		c.Remaining--
	} else {
		c.setState(StateDone)
	}
}

// DisplayValue encodes the remaining time as minutes*100+seconds, the
// MM:SS form the four-digit display shows.
func (c *Countdown) DisplayValue() uint16 {
	minutes := c.Remaining / 60
	seconds := c.Remaining % 60
	return uint16(minutes*100 + seconds)
}

func (c *Countdown) setState(s TimerState) {
	if s == c.State {
		return
	}
	c.State = s
	DebugPrintln("countdown: " + s.String() + " " + formatMMSS(c.Remaining))
}
