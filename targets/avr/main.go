//go:build avr

package main

import (
	"machine"

	"fanpwm/board"
	"fanpwm/core"
)

// Speed presets stepped through by the push button, first entry at boot
var presets = [...]core.PWMValue{
	board.FanSpeedOff,
	board.FanSpeedMax / 4,
	board.FanSpeedMax / 2,
	board.FanSpeedMax * 3 / 4,
	board.FanSpeedMax,
}

// Button must read the same level this many polls in a row to count
const debouncePolls = 2000

func main() {
	// Must run before the first FanPwm write
	board.InitPWM()

	board.PinButton.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	var preset uint8
	board.FanPwm.Set(presets[preset])
	core.DebugPrintln(board.FanPwm.Status())

	pressed := false
	stable := 0
	for {
		// Active low: button pulls the pin to ground
		level := !board.PinButton.Get()
		if level == pressed {
			stable = 0
			continue
		}

		stable++
		if stable < debouncePolls {
			continue
		}
		stable = 0
		pressed = level

		if pressed {
			core.IncrementRangeLoop(&preset, 0, uint8(len(presets)-1))
			board.FanPwm.Set(presets[preset])
			core.DebugPrintln(board.FanPwm.Status())
		}
	}
}
