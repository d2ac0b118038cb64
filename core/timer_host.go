//go:build !tinygo

package core

// SimTimer models the registers of one 8-bit AVR timer/counter on regular Go.
// It implements PWMDriver so the initializer and duty register can be
// exercised without hardware.
type SimTimer struct {
	profile Profile

	TCCRA uint8
	TCCRB uint8
	OCRA  PWMValue
	OCRB  PWMValue

	// PinOutput is set once ConfigureTimer has switched the fan pin to output
	PinOutput bool

	// Writes counts register writes, for checking idempotence
	Writes int
}

// NewSimTimer creates a register model for the given profile.
// All registers start at their reset value of zero.
func NewSimTimer(p Profile) *SimTimer {
	return &SimTimer{profile: p}
}

// Profile returns the simulated profile
func (t *SimTimer) Profile() Profile {
	return t.profile
}

// ConfigureTimer stores the control bytes
func (t *SimTimer) ConfigureTimer(controlA, controlB uint8) {
	t.TCCRA = controlA
	t.TCCRB = controlB
	t.PinOutput = true
	t.Writes += 2
}

// SetCompare stores a compare register value
func (t *SimTimer) SetCompare(ch CompareChannel, value PWMValue) {
	if ch == ChannelA {
		t.OCRA = value
	} else {
		t.OCRB = value
	}
	t.Writes++
}

// Compare reads a compare register value
func (t *SimTimer) Compare(ch CompareChannel) PWMValue {
	if ch == ChannelA {
		return t.OCRA
	}
	return t.OCRB
}

// OutputHigh reports the level of the PWM pin at a given counter value
// on the up-count slope (non-inverting: high while TCNT < OCR).
// Returns false if the channel is not connected to its pin.
func (t *SimTimer) OutputHigh(counter PWMValue) bool {
	var com uint8
	if t.profile.PWM == ChannelB {
		com = (t.TCCRA >> COMxB0) & 0b11
	} else {
		com = (t.TCCRA >> COMxA0) & 0b11
	}
	if com != 0b10 {
		return false
	}
	return counter < t.Compare(t.profile.PWM)
}
