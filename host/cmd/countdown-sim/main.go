// countdown-sim runs the control core on the host against simulated
// buttons and display hardware. Useful for exercising the state machine
// and multiplexing without flashing a board.
//
// Commands (one per line):
//
//	l  load        a  adjust (+10s)
//	s  start/pause r  reset
//	q  quit
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"tickdown/config"
	"tickdown/core"
)

// simGPIO is an in-memory GPIO driver. Output writes latch into levels so
// the current display image can be decoded; pull-up inputs idle high.
type simGPIO struct {
	levels map[core.GPIOPin]bool
}

func newSimGPIO() *simGPIO {
	return &simGPIO{levels: make(map[core.GPIOPin]bool)}
}

func (g *simGPIO) ConfigureOutput(pin core.GPIOPin) error {
	g.levels[pin] = false
	return nil
}

func (g *simGPIO) ConfigureInputPullUp(pin core.GPIOPin) error {
	g.levels[pin] = true
	return nil
}

func (g *simGPIO) SetPin(pin core.GPIOPin, value bool) error {
	g.levels[pin] = value
	return nil
}

func (g *simGPIO) ReadPin(pin core.GPIOPin) bool {
	return g.levels[pin]
}

// glyphs decodes seven-segment patterns back to characters (common
// cathode, bit 0 = segment a). All-off renders as a space.
var glyphs = map[uint8]byte{
	0x00: ' ',
	0x3F: '0', 0x06: '1', 0x5B: '2', 0x4F: '3', 0x66: '4',
	0x6D: '5', 0x7D: '6', 0x07: '7', 0x7F: '8', 0x6F: '9',
}

// display mirror: one character per digit position plus the decimal point.
type simDisplay struct {
	cfg   *config.Config
	gpio  *simGPIO
	chars [4]byte
	dots  [4]bool
}

func newSimDisplay(cfg *config.Config, gpio *simGPIO) *simDisplay {
	d := &simDisplay{cfg: cfg, gpio: gpio}
	for i := range d.chars {
		d.chars[i] = ' '
	}
	return d
}

// capture records whichever digit position the last refresh lit.
func (d *simDisplay) capture() {
	for pos, pin := range d.cfg.Display.Digits {
		if !d.gpio.levels[core.GPIOPin(pin)] {
			continue
		}

		var pattern uint8
		for i := 0; i < 7; i++ {
			if d.gpio.levels[core.GPIOPin(d.cfg.Display.Segments[i])] {
				pattern |= 1 << uint(i)
			}
		}
		if ch, ok := glyphs[pattern]; ok {
			d.chars[pos] = ch
		} else {
			d.chars[pos] = '?'
		}
		d.dots[pos] = d.gpio.levels[core.GPIOPin(d.cfg.Display.Segments[7])]
	}
}

func (d *simDisplay) String() string {
	var sb strings.Builder
	for i := 0; i < 4; i++ {
		sb.WriteByte(d.chars[i])
		if d.dots[i] {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

func main() {
	debug := flag.Bool("debug", false, "print core debug output")
	flag.Parse()

	cfg := config.Default()

	gpio := newSimGPIO()
	core.SetGPIODriver(gpio)
	core.ClockInit(cfg.CPUFrequency)

	if *debug {
		core.SetDebugWriter(func(msg string) { fmt.Println("[debug] " + msg) })
		core.SetDebugEnabled(true)
	}

	app := cfg.Appliance()
	if err := app.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}

	// The real debounce settle busy-waits on the hardware clock; on the
	// host it sleeps instead, preserving the loop-stall behavior without
	// spinning a CPU.
	app.Buttons.SetSettleDelay(func(ms uint32) {
		time.Sleep(time.Duration(ms) * time.Millisecond)
	})

	buttonPins := map[string]core.GPIOPin{
		"l": core.GPIOPin(cfg.Buttons.Load),
		"a": core.GPIOPin(cfg.Buttons.Adjust),
		"s": core.GPIOPin(cfg.Buttons.Start),
		"r": core.GPIOPin(cfg.Buttons.Reset),
	}

	commands := make(chan string, 4)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			commands <- strings.TrimSpace(strings.ToLower(scanner.Text()))
		}
		commands <- "q"
	}()

	fmt.Println("countdown-sim: l=load a=adjust s=start/pause r=reset q=quit")

	display := newSimDisplay(cfg, gpio)
	start := time.Now()
	var pressed core.GPIOPin
	var held bool
	lastLine := ""

	for {
		core.SetMillis(uint32(time.Since(start) / time.Millisecond))

		// One press spans a single poll: down before, up after, which is
		// exactly one clean edge through the debouncer.
		if held {
			gpio.levels[pressed] = true
			held = false
		}
		select {
		case cmd := <-commands:
			if cmd == "q" {
				fmt.Println("bye")
				return
			}
			if pin, ok := buttonPins[cmd]; ok {
				gpio.levels[pin] = false
				pressed = pin
				held = true
			}
		default:
		}

		app.Poll()
		display.capture()

		line := fmt.Sprintf("%s  [%s]", display, app.Timer.State)
		if line != lastLine {
			fmt.Println(line)
			lastLine = line
		}

		time.Sleep(core.MultiplexDelayUS * time.Microsecond)
	}
}
