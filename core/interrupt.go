package core

// WithInterruptsDisabled runs fn with interrupts masked.
// Use it around duty cycle writes when an interrupt handler also writes FanPwm.
func WithInterruptsDisabled(fn func()) {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	fn()
}
