//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts masks interrupts (cli on AVR) and returns the previous SREG state
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

// restoreInterrupts puts back the saved interrupt state
func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}
