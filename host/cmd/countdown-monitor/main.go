// countdown-monitor tails the appliance's debug UART and prints each line.
// The stream is output-only: the firmware takes no commands over serial.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"tickdown/host/serial"
)

func main() {
	device := flag.String("device", "/dev/ttyACM0", "serial device of the appliance's debug UART")
	baud := flag.Int("baud", 115200, "baud rate")
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		log.Fatalf("open %s: %v", *device, err)
	}
	defer port.Close()

	fmt.Fprintf(os.Stderr, "monitoring %s at %d baud (ctrl-c to stop)\n", *device, *baud)

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		fmt.Println(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read %s: %v", *device, err)
	}
}
