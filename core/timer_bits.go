package core

// TCCRxA / TCCRxB bit positions.
// Timer/Counter0 (ATtiny25/45/85) and Timer/Counter2 (ATmega168/328P) share
// the same layout, so one set serves every profile.
const (
	// TCCRxA
	WGMx0  = 0
	WGMx1  = 1
	COMxB0 = 4
	COMxB1 = 5
	COMxA0 = 6
	COMxA1 = 7

	// TCCRxB
	CSx0  = 0
	CSx1  = 1
	CSx2  = 2
	WGMx2 = 3
)

func bv(bit uint8) uint8 {
	return 1 << bit
}

// ControlA returns the TCCRxA value for the fan PWM:
// non-inverting output on the PWM channel only, WGM bit 0 for phase correct mode.
// The aux channel's pin stays disconnected from the timer.
func (p Profile) ControlA() uint8 {
	v := bv(WGMx0)
	if p.PWM == ChannelB {
		v |= bv(COMxB1)
	} else {
		v |= bv(COMxA1)
	}
	return v
}

// ControlB returns the TCCRxB value for the fan PWM:
// WGM bit 2 selects OCRxA as TOP, CSx0 alone means clk/1 (no prescaler).
func (p Profile) ControlB() uint8 {
	return bv(WGMx2) | bv(CSx0)
}

// IsPhaseCorrect reports whether the control bytes select phase correct PWM with OCRA as TOP (mode 5)
func IsPhaseCorrect(controlA, controlB uint8) bool {
	wgm := controlA&(bv(WGMx0)|bv(WGMx1)) | (controlB&bv(WGMx2))>>(WGMx2-2)
	return wgm == 0b101
}

// IsUnprescaled reports whether the clock select bits run the timer at the CPU clock
func IsUnprescaled(controlB uint8) bool {
	return controlB&(bv(CSx0)|bv(CSx1)|bv(CSx2)) == bv(CSx0)
}
