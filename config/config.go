// Package config describes the appliance's wiring and timing as a JSON
// document, so a target build can carry its pinout as data instead of
// code.
package config

import (
	"encoding/json"

	"tickdown/core"
)

// Config holds the appliance configuration.
type Config struct {
	// CPUFrequency is the tick timer's input clock in Hz.
	CPUFrequency uint32 `json:"cpu_frequency"`

	// DefaultSeconds seeds the countdown's set value at power-on.
	DefaultSeconds uint32 `json:"default_seconds"`

	Buttons ButtonPins  `json:"buttons"`
	Display DisplayPins `json:"display"`
}

// ButtonPins maps the four logical buttons to pin numbers.
type ButtonPins struct {
	Load   uint32 `json:"load"`
	Adjust uint32 `json:"adjust"`
	Start  uint32 `json:"start"`
	Reset  uint32 `json:"reset"`
}

// DisplayPins maps the display lines to pin numbers.
type DisplayPins struct {
	// Segments a-g followed by the decimal point.
	Segments [8]uint32 `json:"segments"`

	// Digit enable lines, leftmost digit first.
	Digits [4]uint32 `json:"digits"`
}

// Load parses a JSON configuration and fills in defaults for anything
// missing.
func Load(jsonData []byte) (*Config, error) {
	var cfg Config

	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills in missing configuration values. Pin blocks are
// defaulted as a whole: a zero-valued block means "use the reference
// wiring", since individual pin numbers may legitimately be zero.
func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.CPUFrequency == 0 {
		cfg.CPUFrequency = def.CPUFrequency
	}
	if cfg.DefaultSeconds == 0 {
		cfg.DefaultSeconds = def.DefaultSeconds
	}
	if cfg.Buttons == (ButtonPins{}) {
		cfg.Buttons = def.Buttons
	}
	if cfg.Display == (DisplayPins{}) {
		cfg.Display = def.Display
	}
}

// Default returns the reference wiring: segments on gpio0-7, digit enables
// on gpio8-11, buttons on gpio20-23.
func Default() *Config {
	return &Config{
		CPUFrequency:   12000000,
		DefaultSeconds: 60,
		Buttons: ButtonPins{
			Load:   20,
			Adjust: 21,
			Start:  22,
			Reset:  23,
		},
		Display: DisplayPins{
			Segments: [8]uint32{0, 1, 2, 3, 4, 5, 6, 7},
			Digits:   [4]uint32{8, 9, 10, 11},
		},
	}
}

// Appliance constructs the control core described by the configuration.
// The caller still registers the GPIO driver and initializes the clock
// before calling Init on the result.
func (c *Config) Appliance() *core.Appliance {
	buttons := core.NewDebouncer([core.NumButtons]core.GPIOPin{
		core.GPIOPin(c.Buttons.Load),
		core.GPIOPin(c.Buttons.Adjust),
		core.GPIOPin(c.Buttons.Start),
		core.GPIOPin(c.Buttons.Reset),
	})

	var segs [8]core.GPIOPin
	for i, pin := range c.Display.Segments {
		segs[i] = core.GPIOPin(pin)
	}
	var digits [4]core.GPIOPin
	for i, pin := range c.Display.Digits {
		digits[i] = core.GPIOPin(pin)
	}

	timer := core.NewCountdown()
	if c.DefaultSeconds > 0 {
		timer.SetValue = c.DefaultSeconds
		timer.Remaining = c.DefaultSeconds
	}

	return core.NewAppliance(buttons, timer, core.NewDisplay(segs, digits))
}
