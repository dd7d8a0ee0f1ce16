//go:build rp2040 || rp2350

package main

import (
	"machine"
	"runtime/volatile"
	"unsafe"

	"tickdown/core"
)

// Cortex-M SysTick core peripheral memory map
const (
	sysTickBase    = 0xE000E010
	sysTickCSRAddr = sysTickBase + 0x00 // Control and Status Register
	sysTickRVRAddr = sysTickBase + 0x04 // Reload Value Register
	sysTickCVRAddr = sysTickBase + 0x08 // Current Value Register
)

// SysTick Control Register bits
const (
	sysTickEnable    = 1 << 0 // Counter enable
	sysTickTickInt   = 1 << 1 // Enable interrupt
	sysTickClkSource = 1 << 2 // Use processor clock
)

// The reload and current values are 24-bit.
const sysTickMask = 0x00FFFFFF

var (
	sysTickCSR = (*volatile.Register32)(unsafe.Pointer(uintptr(sysTickCSRAddr)))
	sysTickRVR = (*volatile.Register32)(unsafe.Pointer(uintptr(sysTickRVRAddr)))
	sysTickCVR = (*volatile.Register32)(unsafe.Pointer(uintptr(sysTickCVRAddr)))
)

// sysTickCounter exposes the SysTick down-counter to the core clock for
// sub-millisecond reads.
type sysTickCounter struct{}

func (sysTickCounter) Value() uint32 {
	return sysTickCVR.Get() & sysTickMask
}

func (sysTickCounter) Reload() uint32 {
	return sysTickRVR.Get() & sysTickMask
}

// InitClock programs SysTick for a 1ms tick interrupt and registers the
// down-counter with the core clock. Must run before anything that reads
// time or delays.
func InitClock() {
	core.ClockInit(machine.CPUFrequency())

	// Disable SysTick during configuration
	sysTickCSR.Set(0)
	sysTickRVR.Set(core.TickReload() & sysTickMask)
	sysTickCVR.Set(0)
	sysTickCSR.Set(sysTickEnable | sysTickTickInt | sysTickClkSource)

	core.SetDownCounter(sysTickCounter{})
}

// SysTick fires every millisecond; the handler does nothing but advance
// the core's millisecond counter.
//
//export SysTick_Handler
func handleSysTick() {
	core.TickHandler()
}
