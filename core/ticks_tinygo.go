//go:build tinygo

package core

import "sync/atomic"

var millisTicksValue uint32

// getMillisTicks returns the current millisecond ticks
func getMillisTicks() uint32 {
	return atomic.LoadUint32(&millisTicksValue)
}

// setMillisTicks sets the millisecond ticks
func setMillisTicks(ms uint32) {
	atomic.StoreUint32(&millisTicksValue, ms)
}

// incrementMillisTicks advances the millisecond counter by one.
// Safe to call from the tick interrupt.
func incrementMillisTicks() {
	atomic.AddUint32(&millisTicksValue, 1)
}
