package core

// PWMValue is a duty cycle value held by an 8-bit compare register (0 to Top)
type PWMValue uint8

// PWMDriver is the abstract timer interface that core code uses.
// Board-specific implementations write the actual AVR registers.
type PWMDriver interface {
	// Profile returns the hardware profile this driver was built for
	Profile() Profile

	// ConfigureTimer writes the timer control registers (TCCRxA, TCCRxB)
	// and switches the profile's output pin to output mode
	ConfigureTimer(controlA, controlB uint8)

	// SetCompare writes an output compare register (OCRxA or OCRxB)
	SetCompare(ch CompareChannel, value PWMValue)

	// Compare reads back an output compare register
	Compare(ch CompareChannel) PWMValue
}

// Global singleton used by core code.
var pwmDriver PWMDriver

// SetPWMDriver is called by board-specific code to register its driver.
func SetPWMDriver(d PWMDriver) {
	pwmDriver = d
}

// MustPWM returns the configured driver or panics if missing.
func MustPWM() PWMDriver {
	if pwmDriver == nil {
		panic("PWM driver not configured")
	}
	return pwmDriver
}
