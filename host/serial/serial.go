// Package serial opens the fan controller's debug UART from the host.
package serial

import (
	"io"
)

// Port represents a serial port interface
// Implemented by NativePort; tests substitute an in-memory reader.
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate, must match the firmware console (9600)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultBaud matches the ATmega firmware's UART console
const DefaultBaud = 9600

// DefaultConfig returns a default configuration for the firmware console
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        DefaultBaud,
		ReadTimeout: 0, // Block until a line arrives
	}
}

// Validate checks the configuration before opening a port
func (c *Config) Validate() error {
	if c.Device == "" {
		return ErrNoDevice
	}
	if c.Baud <= 0 {
		return ErrBadBaud
	}
	if c.ReadTimeout < 0 {
		return ErrBadTimeout
	}
	return nil
}
