// Time-multiplexed driver for a four-digit seven-segment display.
package core

// segPatterns maps a decimal digit to its segment bits (common cathode,
// 1=on; bit 0 is segment a through bit 6 segment g).
var segPatterns = [10]uint8{
	0x3F, // 0: abcdef
	0x06, // 1: bc
	0x5B, // 2: abdeg
	0x4F, // 3: abcdg
	0x66, // 4: bcfg
	0x6D, // 5: acdfg
	0x7D, // 6: acdefg
	0x07, // 7: abc
	0x7F, // 8: abcdefg
	0x6F, // 9: abcdfg
}

const (
	// NumDigits is the number of physical digit positions.
	NumDigits = 4

	// numSegments is segments a-g plus the decimal point.
	numSegments = 8

	// dpPosition is the digit position whose decimal point is lit,
	// separating minutes from seconds (MM.SS).
	dpPosition = 1
)

// Display drives a four-digit multiplexed seven-segment module through the
// GPIO HAL. Exactly one position is lit per Refresh call, selected by a
// rotating index; the caller must refresh fast enough (sub-~5 ms per call)
// that persistence of vision hides the rotation. Any control-loop stall,
// including the debounce settle delay, shows up as visible flicker.
type Display struct {
	segPins   [numSegments]GPIOPin // a-g, then the decimal point
	digitPins [NumDigits]GPIOPin   // leftmost first
	current   uint8                // next position to drive
}

// NewDisplay creates a display driver for the given segment and
// digit-enable pins.
func NewDisplay(segs [numSegments]GPIOPin, digits [NumDigits]GPIOPin) *Display {
	return &Display{
		segPins:   segs,
		digitPins: digits,
	}
}

// Init configures all display lines as outputs, driven low. The display
// starts fully blank.
func (d *Display) Init() error {
	for _, pin := range d.segPins {
		if err := MustGPIO().ConfigureOutput(pin); err != nil {
			return err
		}
		if err := MustGPIO().SetPin(pin, false); err != nil {
			return err
		}
	}
	for _, pin := range d.digitPins {
		if err := MustGPIO().ConfigureOutput(pin); err != nil {
			return err
		}
		if err := MustGPIO().SetPin(pin, false); err != nil {
			return err
		}
	}
	return nil
}

// Blank turns every digit enable line off.
func (d *Display) Blank() {
	gpio := MustGPIO()
	for _, pin := range d.digitPins {
		_ = gpio.SetPin(pin, false)
	}
}

// digitDivisors picks the thousands, hundreds, tens and units digit for
// positions 0-3.
var digitDivisors = [NumDigits]uint16{1000, 100, 10, 1}

// Refresh drives the next digit position with the matching decimal digit
// of value, then advances the rotating index. Called once per control-loop
// iteration.
func (d *Display) Refresh(value uint16) {
	digit := uint8(value / digitDivisors[d.current] % 10)
	d.drive(d.current, digit, d.current == dpPosition)
	d.current = (d.current + 1) % NumDigits
}

// drive lights a single digit position. All digit lines go off before the
// segment writes so a stale position never shows the new pattern. Values
// outside 0-9 render blank.
func (d *Display) drive(pos, value uint8, dp bool) {
	gpio := MustGPIO()

	for _, pin := range d.digitPins {
		_ = gpio.SetPin(pin, false)
	}

	var pattern uint8
	if value <= 9 {
		pattern = segPatterns[value]
	}
	for i := 0; i < 7; i++ {
		_ = gpio.SetPin(d.segPins[i], (pattern>>uint(i))&1 == 1)
	}
	_ = gpio.SetPin(d.segPins[7], dp)

	_ = gpio.SetPin(d.digitPins[pos], true)
}
