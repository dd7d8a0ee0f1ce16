package core

// GPIOPin identifies a logical digital I/O line
type GPIOPin uint32

// GPIODriver is the abstract digital-I/O interface the control core uses.
// Target code supplies the hardware implementation; tests and the host
// simulator supply fakes.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a digital output
	ConfigureOutput(pin GPIOPin) error

	// ConfigureInputPullUp configures a pin as a digital input with a
	// pull-up resistor (the buttons are wired active low)
	ConfigureInputPullUp(pin GPIOPin) error

	// SetPin drives the pin high (true) or low (false)
	SetPin(pin GPIOPin, value bool) error

	// ReadPin samples the pin's current level
	ReadPin(pin GPIOPin) bool
}

// Global singleton used by core code.
var gpioDriver GPIODriver

// SetGPIODriver is called by target-specific code to register its driver.
func SetGPIODriver(d GPIODriver) {
	gpioDriver = d
}

// MustGPIO returns the configured driver or panics if missing.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		panic("GPIO driver not configured")
	}
	return gpioDriver
}
