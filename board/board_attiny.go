//go:build attiny25 || attiny45 || attiny85

package board

import (
	"device/avr"
	"machine"

	"fanpwm/core"
)

// ATtiny25/45/85: Timer/Counter0, PWM on PB1 (OC0B).
// PB0 (OC0A) is not connected to the timer.
const (
	PinOutputFanPWM = core.ATtinyFanPin
	PWMMaxValue     = core.ATtinyPWMTop
)

var (
	Profile = core.ProfileATtiny

	PinFan    = machine.PB1
	PinButton = machine.PB2
)

type timer0 struct{}

func (timer0) Profile() core.Profile {
	return Profile
}

func (timer0) ConfigureTimer(controlA, controlB uint8) {
	PinFan.Configure(machine.PinConfig{Mode: machine.PinOutput})
	avr.TCCR0A.Set(controlA)
	avr.TCCR0B.Set(controlB)
}

func (timer0) SetCompare(ch core.CompareChannel, value core.PWMValue) {
	if ch == core.ChannelA {
		avr.OCR0A.Set(uint8(value))
		return
	}
	avr.OCR0B.Set(uint8(value))
}

func (timer0) Compare(ch core.CompareChannel) core.PWMValue {
	if ch == core.ChannelA {
		return core.PWMValue(avr.OCR0A.Get())
	}
	return core.PWMValue(avr.OCR0B.Get())
}

var driver core.PWMDriver = timer0{}

// No UART on these parts
func consoleWriter() core.DebugWriter {
	return nil
}
