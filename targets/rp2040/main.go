//go:build rp2040 || rp2350

package main

import (
	"tickdown/config"
	"tickdown/core"
)

func main() {
	// Clock first: everything below may delay or read time.
	InitClock()
	InitDebugUART()

	core.SetGPIODriver(NewRPGPIODriver())

	cfg := config.Default()
	app := cfg.Appliance()

	if err := app.Init(); err != nil {
		core.DebugPrintln("init failed: " + err.Error())
		return
	}

	core.DebugPrintln("countdown ready")

	// Poll buttons, advance the countdown and refresh one display digit
	// per iteration, at the 2ms multiplex cadence. Never returns.
	app.Run()
}
