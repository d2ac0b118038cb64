//go:build atmega168 || atmega168p || atmega328p || attiny25 || attiny45 || attiny85

// Package board selects the fan PWM hardware profile from the TinyGo target.
// Exactly one board_*.go file is compiled per MCU; application code only uses
// the names declared here and in those files.
package board

import (
	"machine"

	"fanpwm/core"
)

// Legal duty cycle domain
const (
	PWMMinValue = core.PWMMinValue
	FanSpeedOff = PWMMinValue // Minimum fan speed / off
	FanSpeedMax = PWMMaxValue // Maximum fan speed / full on
)

// Fails to compile if the range is inverted or does not fit the 8-bit compare register
const (
	_ = uint8(FanSpeedMax - FanSpeedOff)
	_ = uint8(PWMMaxValue)
)

// FanPwm is the duty cycle register. Don't touch outside [FanSpeedOff, FanSpeedMax].
var FanPwm = core.FanPwm

// InitPWM registers the board timer, sets up the debug console and
// configures 25kHz phase correct PWM with the fan off.
func InitPWM() {
	core.SetDebugWriter(consoleWriter())
	core.SetPWMDriver(driver)
	core.InitPWM()

	if msg := Profile.ClockWarning(machine.CPUFrequency()); msg != "" {
		core.DebugPrintln(msg)
	}
}
