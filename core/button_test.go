package core

import "testing"

func newTestDebouncer(t *testing.T, gpio *fakeGPIO) (*Debouncer, *int) {
	t.Helper()
	SetGPIODriver(gpio)

	d := NewDebouncer([NumButtons]GPIOPin{20, 21, 22, 23})
	if err := d.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	settles := 0
	d.SetSettleDelay(func(ms uint32) {
		if ms != DebounceSettleMS {
			t.Errorf("settle delay of %dms, want %d", ms, DebounceSettleMS)
		}
		settles++
	})
	return d, &settles
}

func TestPollEdgeSinglePress(t *testing.T) {
	gpio := newFakeGPIO()
	d, settles := newTestDebouncer(t, gpio)

	if d.PollEdge(BtnStart) {
		t.Error("edge reported before any press")
	}

	gpio.press(22)
	if !d.PollEdge(BtnStart) {
		t.Error("no edge on press")
	}

	// Held button must not repeat.
	for i := 0; i < 5; i++ {
		if d.PollEdge(BtnStart) {
			t.Fatalf("edge repeated on poll %d while held", i)
		}
	}

	gpio.release(22)
	if d.PollEdge(BtnStart) {
		t.Error("edge reported on release")
	}

	gpio.press(22)
	if !d.PollEdge(BtnStart) {
		t.Error("no edge on re-press")
	}

	if *settles != 2 {
		t.Errorf("settle delay ran %d times, want 2", *settles)
	}
}

func TestPollEdgeButtonsIndependent(t *testing.T) {
	gpio := newFakeGPIO()
	d, _ := newTestDebouncer(t, gpio)

	gpio.press(21) // adjust
	gpio.press(23) // reset

	if !d.PollEdge(BtnAdjust) {
		t.Error("adjust edge lost")
	}
	if d.PollEdge(BtnStart) {
		t.Error("start edge invented")
	}
	if !d.PollEdge(BtnReset) {
		t.Error("reset edge lost")
	}
}

func TestInitConfiguresPullUps(t *testing.T) {
	gpio := newFakeGPIO()
	newTestDebouncer(t, gpio)

	for _, pin := range []GPIOPin{20, 21, 22, 23} {
		if !gpio.inputs[pin] {
			t.Errorf("pin %d not configured as pull-up input", pin)
		}
		if !gpio.ReadPin(pin) {
			t.Errorf("pin %d should idle high", pin)
		}
	}
}
