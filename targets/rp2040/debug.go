//go:build rp2040 || rp2350

package main

import (
	"machine"

	"tickdown/core"
)

const debugBaudRate = 115200

// InitDebugUART routes core debug output to UART0. The stream is
// output-only; the appliance takes no commands over it. Pair with the
// countdown-monitor host tool to watch state transitions.
func InitDebugUART() {
	uart := machine.UART0
	err := uart.Configure(machine.UARTConfig{
		BaudRate: debugBaudRate,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	if err != nil {
		// No UART, no debug output; the appliance still runs.
		return
	}

	core.SetDebugWriter(func(msg string) {
		uart.Write([]byte(msg))
		uart.Write([]byte("\r\n"))
	})
	core.SetDebugEnabled(true)
}
