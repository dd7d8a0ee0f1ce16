// Monotonic time source for the countdown appliance.
// A hardware tick interrupt increments a free-running millisecond counter;
// sub-millisecond resolution comes from the tick timer's down-counter.
package core

// DownCounter exposes the hardware tick timer's free-running down-counter.
// The counter runs from Reload() toward zero and reloads on reaching it;
// one full sweep is exactly one millisecond.
type DownCounter interface {
	// Value returns the counter's current value.
	Value() uint32

	// Reload returns the counter's reload (period) value.
	Reload() uint32
}

var (
	tickReload  uint32
	downCounter DownCounter
)

// SetDownCounter registers the hardware down-counter. Target code calls
// this during clock bring-up; tests register fakes.
func SetDownCounter(d DownCounter) {
	downCounter = d
}

// ClockInit records the tick frequency and resets the millisecond counter.
// Must be called exactly once before any other clock operation. Target code
// programs the tick timer for a 1ms period using the reload value derived
// here (see TickReload).
func ClockInit(freqHz uint32) {
	tickReload = freqHz/1000 - 1
	setMillisTicks(0)
}

// TickReload returns the reload value ClockInit derived for a 1ms tick.
func TickReload() uint32 {
	return tickReload
}

// TickHandler increments the millisecond counter. Called from the hardware
// tick interrupt only; it must stay this small.
func TickHandler() {
	incrementMillisTicks()
}

// Millis returns the current millisecond counter value. The counter is
// monotonically non-decreasing modulo 2^32; intervals between two readings
// must go through ElapsedMS, never plain comparison.
func Millis() uint32 {
	return getMillisTicks()
}

// SetMillis sets the millisecond counter (for testing/hardware integration).
func SetMillis(ms uint32) {
	setMillisTicks(ms)
}

// Micros returns microsecond-resolution time by combining the millisecond
// counter with the down-counter's position inside the current millisecond.
// The tick interrupt and the down-counter advance independently, so all
// three values are captured under a single critical section; reading them
// separately could straddle a reload and come out up to one tick off or
// momentarily non-monotonic.
func Micros() uint32 {
	state := disableInterrupts()
	ms := getMillisTicks()
	val := downCounter.Value()
	reload := downCounter.Reload()
	restoreInterrupts(state)

	elapsedTicks := reload - val
	subMsUS := (elapsedTicks * 1000) / (reload + 1)
	return ms*1000 + subMsUS
}

// ElapsedMS computes now-start in modular uint32 arithmetic. Both inputs
// wrap, so this is the only sanctioned interval measure; the result is
// correct for any true interval under 2^32 ms (~49 days), including across
// a counter wraparound.
func ElapsedMS(start, now uint32) uint32 {
	return now - start
}

// DelayMS busy-waits until the requested number of milliseconds has
// elapsed. No sleep or low-power state is entered.
func DelayMS(ms uint32) {
	start := Millis()
	for ElapsedMS(start, Millis()) < ms {
	}
}

// DelayUS busy-waits for a microsecond duration. Whole milliseconds go
// through DelayMS; the remainder spins on down-counter ticks. The counter
// counts downward and reloads, so elapsed ticks are start-current while
// current <= start and start+(reload-current) after a reload.
func DelayUS(us uint32) {
	if us >= 1000 {
		DelayMS(us / 1000)
		us %= 1000
	}
	if us == 0 || downCounter == nil {
		return
	}

	start := downCounter.Value()
	reload := downCounter.Reload()
	ticksPerUS := (reload + 1) / 1000
	if ticksPerUS == 0 {
		ticksPerUS = 1
	}
	needed := us * ticksPerUS

	for {
		current := downCounter.Value()
		var elapsed uint32
		if current <= start {
			elapsed = start - current
		} else {
			elapsed = start + (reload - current)
		}
		if elapsed >= needed {
			return
		}
	}
}
