package core

// MultiplexDelayUS is the fixed inter-iteration delay of the control loop.
// It simultaneously sets the display multiplex rate and the button poll
// rate.
const MultiplexDelayUS = 2000

// Appliance is the control-loop context: all mutable control state hangs
// off it and is touched only by the single goroutine running the loop. The
// sole state shared with another agent is the millisecond counter, written
// by the tick interrupt and read through the clock accessors.
type Appliance struct {
	Buttons *Debouncer
	Timer   *Countdown
	Display *Display
}

// NewAppliance assembles the control core from its components.
func NewAppliance(buttons *Debouncer, timer *Countdown, display *Display) *Appliance {
	return &Appliance{
		Buttons: buttons,
		Timer:   timer,
		Display: display,
	}
}

// Init configures button and display pins. The GPIO driver and clock must
// be registered before this is called.
func (a *Appliance) Init() error {
	if err := a.Buttons.Init(); err != nil {
		return err
	}
	return a.Display.Init()
}

// Poll runs one control-loop iteration: button edges, the countdown's
// once-per-second update, then a single display digit refresh. A debounce
// settle inside processButtons blocks the whole iteration, so a press
// briefly stalls both the display and the countdown's clock sampling.
func (a *Appliance) Poll() {
	a.processButtons()
	a.Timer.Update()
	a.Display.Refresh(a.Timer.DisplayValue())
}

func (a *Appliance) processButtons() {
	if a.Buttons.PollEdge(BtnLoad) {
		a.Timer.Load()
	}
	if a.Buttons.PollEdge(BtnAdjust) {
		a.Timer.Adjust()
	}
	if a.Buttons.PollEdge(BtnStart) {
		a.Timer.StartStop()
	}
	if a.Buttons.PollEdge(BtnReset) {
		a.Timer.Reset()
	}
}

// Run polls forever at the multiplex cadence. Never returns.
func (a *Appliance) Run() {
	for {
		a.Poll()
		DelayUS(MultiplexDelayUS)
	}
}
