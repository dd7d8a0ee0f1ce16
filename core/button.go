// Button debouncing and edge detection for the appliance's momentary
// switches.
package core

// Button identifies one of the appliance's logical buttons.
type Button uint8

const (
	BtnLoad   Button = iota // load the set value in set mode
	BtnAdjust               // increment the set value in set mode
	BtnStart                // start/pause toggle
	BtnReset                // return to set mode

	NumButtons = 4
)

// DebounceSettleMS is the blocking settle delay applied after a detected
// press edge. While it runs nothing else in the control loop executes: the
// display is not refreshed and the countdown clock is not sampled. That
// coupling is part of the loop's contract, not an accident (see Appliance).
const DebounceSettleMS = 50

// Debouncer converts noisy active-low button levels into single-shot press
// events. One bit of previous level is kept per button across polls; a
// held button reports no further edges until it is released and pressed
// again, which also suppresses auto-repeat.
type Debouncer struct {
	pins [NumButtons]GPIOPin
	prev [NumButtons]bool

	// settle performs the post-edge settle delay. DelayMS by default.
	settle func(ms uint32)
}

// NewDebouncer creates a debouncer for the given button pins, all buttons
// starting in the released state.
func NewDebouncer(pins [NumButtons]GPIOPin) *Debouncer {
	return &Debouncer{
		pins:   pins,
		settle: DelayMS,
	}
}

// SetSettleDelay replaces the post-edge settle delay. Tests substitute a
// no-op so they do not spin on the real clock; the host simulator
// substitutes a sleeping wait.
func (d *Debouncer) SetSettleDelay(fn func(ms uint32)) {
	d.settle = fn
}

// Init configures every button pin as a pull-up input.
func (d *Debouncer) Init() error {
	for _, pin := range d.pins {
		if err := MustGPIO().ConfigureInputPullUp(pin); err != nil {
			return err
		}
	}
	return nil
}

// PollEdge samples one button and reports true exactly when its level went
// from released to pressed since the previous poll. The wiring is active
// low, so a low level reads as pressed. On an edge the settle delay runs
// before returning, to reject mechanical bounce.
func (d *Debouncer) PollEdge(b Button) bool {
	pressed := !MustGPIO().ReadPin(d.pins[b])

	edge := pressed && !d.prev[b]
	if edge {
		d.settle(DebounceSettleMS)
	}

	d.prev[b] = pressed
	return edge
}
