// Package serial abstracts the serial port the appliance's debug UART
// shows up on.
package serial

import (
	"io"
)

// Port represents a serial port interface
// This abstraction allows for different implementations:
// - Native serial (using github.com/tarm/serial)
// - Mock serial (for testing)
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate; must match the firmware's debug UART (115200)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns the configuration matching the firmware's debug
// UART settings.
func DefaultConfig(device string) *Config {
	return &Config{
		Device: device,
		Baud:   115200,
		// Blocking reads: the monitor tails the stream indefinitely.
		ReadTimeout: 0,
	}
}
