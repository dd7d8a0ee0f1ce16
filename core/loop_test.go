package core

import "testing"

const (
	testPinLoad   GPIOPin = 20
	testPinAdjust GPIOPin = 21
	testPinStart  GPIOPin = 22
	testPinReset  GPIOPin = 23
)

func newTestAppliance(t *testing.T) (*Appliance, *fakeGPIO) {
	t.Helper()

	gpio := newFakeGPIO()
	SetGPIODriver(gpio)
	ClockInit(12000000)
	SetDownCounter(&tickingDownCounter{value: 11999, reload: 11999})

	buttons := NewDebouncer([NumButtons]GPIOPin{
		testPinLoad, testPinAdjust, testPinStart, testPinReset,
	})
	buttons.SetSettleDelay(func(uint32) {})

	app := NewAppliance(buttons, NewCountdown(), NewDisplay(testSegPins, testDigitPins))
	if err := app.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return app, gpio
}

// tap simulates one press-and-release across two polls.
func tap(app *Appliance, gpio *fakeGPIO, pin GPIOPin) {
	gpio.press(pin)
	app.Poll()
	gpio.release(pin)
	app.Poll()
}

func TestPollButtonMapping(t *testing.T) {
	app, gpio := newTestAppliance(t)

	tap(app, gpio, testPinAdjust)
	if app.Timer.SetValue != 70 {
		t.Errorf("adjust button: set value = %d, want 70", app.Timer.SetValue)
	}

	tap(app, gpio, testPinStart)
	if app.Timer.State != StateRunning {
		t.Errorf("start button: state = %s, want running", app.Timer.State)
	}

	tap(app, gpio, testPinStart)
	if app.Timer.State != StatePaused {
		t.Errorf("start button again: state = %s, want paused", app.Timer.State)
	}

	tap(app, gpio, testPinReset)
	if app.Timer.State != StateSet || app.Timer.Remaining != 70 {
		t.Errorf("reset button: state=%s remaining=%d, want set/70",
			app.Timer.State, app.Timer.Remaining)
	}

	app.Timer.Remaining = 5
	tap(app, gpio, testPinLoad)
	if app.Timer.Remaining != 70 {
		t.Errorf("load button: remaining = %d, want 70", app.Timer.Remaining)
	}
}

func TestPollCountsDownAndDrivesDisplay(t *testing.T) {
	app, gpio := newTestAppliance(t)

	tap(app, gpio, testPinStart)
	start := Millis()

	for i := 0; i < 3; i++ {
		SetMillis(start + uint32(i+1)*1000)
		app.Poll()
	}
	if app.Timer.Remaining != 57 {
		t.Errorf("remaining = %d, want 57", app.Timer.Remaining)
	}

	// Every poll lights exactly one digit position.
	lit := 0
	for _, pin := range testDigitPins {
		if gpio.levels[pin] {
			lit++
		}
	}
	if lit != 1 {
		t.Errorf("%d digit lines lit after a poll, want 1", lit)
	}
}

func TestPollRunsOutToDone(t *testing.T) {
	app, gpio := newTestAppliance(t)
	app.Timer.SetValue = 2

	tap(app, gpio, testPinStart)
	start := Millis()

	for i := 0; i < 3; i++ {
		SetMillis(start + uint32(i+1)*1000)
		app.Poll()
	}
	if app.Timer.State != StateDone || app.Timer.Remaining != 0 {
		t.Errorf("state=%s remaining=%d, want done/0", app.Timer.State, app.Timer.Remaining)
	}

	// Start from done returns to set mode with the set value restored.
	tap(app, gpio, testPinStart)
	if app.Timer.State != StateSet || app.Timer.Remaining != 2 {
		t.Errorf("state=%s remaining=%d, want set/2", app.Timer.State, app.Timer.Remaining)
	}
}

func TestHeldButtonFiresOnce(t *testing.T) {
	app, gpio := newTestAppliance(t)

	gpio.press(testPinAdjust)
	for i := 0; i < 10; i++ {
		app.Poll()
	}
	gpio.release(testPinAdjust)
	app.Poll()

	if app.Timer.SetValue != 70 {
		t.Errorf("held adjust applied %d times, want 1", (app.Timer.SetValue-60)/AdjustStep)
	}
}
