package core

// In-memory stand-ins for the hardware capabilities, shared by the
// package's tests.

// fakeGPIO is a test implementation of GPIODriver. Output writes latch
// into levels; pull-up inputs read high until a test presses them low.
type fakeGPIO struct {
	levels  map[GPIOPin]bool
	outputs map[GPIOPin]bool
	inputs  map[GPIOPin]bool
}

func newFakeGPIO() *fakeGPIO {
	return &fakeGPIO{
		levels:  make(map[GPIOPin]bool),
		outputs: make(map[GPIOPin]bool),
		inputs:  make(map[GPIOPin]bool),
	}
}

func (f *fakeGPIO) ConfigureOutput(pin GPIOPin) error {
	f.outputs[pin] = true
	f.levels[pin] = false
	return nil
}

func (f *fakeGPIO) ConfigureInputPullUp(pin GPIOPin) error {
	f.inputs[pin] = true
	f.levels[pin] = true // pull-up idles high
	return nil
}

func (f *fakeGPIO) SetPin(pin GPIOPin, value bool) error {
	f.levels[pin] = value
	return nil
}

func (f *fakeGPIO) ReadPin(pin GPIOPin) bool {
	return f.levels[pin]
}

// press drives an active-low button pin low.
func (f *fakeGPIO) press(pin GPIOPin) {
	f.levels[pin] = false
}

func (f *fakeGPIO) release(pin GPIOPin) {
	f.levels[pin] = true
}

// fakeDownCounter is frozen at a fixed position inside the millisecond.
type fakeDownCounter struct {
	value  uint32
	reload uint32
}

func (f *fakeDownCounter) Value() uint32  { return f.value }
func (f *fakeDownCounter) Reload() uint32 { return f.reload }

// tickingDownCounter steps down one tick per read, reloading past zero,
// like the hardware counter it imitates.
type tickingDownCounter struct {
	value  uint32
	reload uint32
}

func (c *tickingDownCounter) Value() uint32 {
	v := c.value
	if c.value == 0 {
		c.value = c.reload
	} else {
		c.value--
	}
	return v
}

func (c *tickingDownCounter) Reload() uint32 { return c.reload }
