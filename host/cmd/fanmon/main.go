package main

import (
	"flag"
	"fmt"
	"os"

	"fanpwm/host/console"
	"fanpwm/host/serial"
)

var (
	device = flag.String("device", "/dev/ttyUSB0", "Serial device path")
	baud   = flag.Int("baud", serial.DefaultBaud, "Baud rate of the firmware console")
	raw    = flag.Bool("raw", false, "Print console lines without parsing")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	fmt.Printf("Opening fan controller console on %s (%d baud)...\n", cfg.Device, cfg.Baud)
	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	if err := port.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: flush failed: %v\n", err)
	}

	err = console.Scan(port, func(l console.Line) bool {
		printLine(l, *raw)
		return true
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading console: %v\n", err)
		os.Exit(1)
	}
}

func printLine(l console.Line, raw bool) {
	switch {
	case raw:
		fmt.Println(l.Text)
	case l.Err != nil:
		fmt.Fprintf(os.Stderr, "Bad status line: %v\n", l.Err)
	case l.Status == nil:
		fmt.Println(l.Text)
	case l.Status.Off():
		fmt.Printf("fan off (%s)\n", l.Status)
	default:
		fmt.Printf("fan %.1f%% (%s)\n", l.Status.Percent(), l.Status)
	}
}
