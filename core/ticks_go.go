//go:build !tinygo

package core

var millisTicks uint32

// getMillisTicks returns the current millisecond ticks (regular Go implementation)
func getMillisTicks() uint32 {
	return millisTicks
}

// setMillisTicks sets the millisecond ticks (regular Go implementation)
func setMillisTicks(ms uint32) {
	millisTicks = ms
}

// incrementMillisTicks advances the millisecond counter by one
func incrementMillisTicks() {
	millisTicks++
}
