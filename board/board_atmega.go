//go:build atmega168 || atmega168p || atmega328p

package board

import (
	"device/avr"
	"machine"

	"fanpwm/core"
)

// ATmega168/328P: Timer/Counter2, PWM on pin 3 (PD3, OC2B).
// Pin 11 (PB3, OC2A) stays a plain GPIO.
const (
	PinOutputFanPWM = core.ATmegaFanPin
	PWMMaxValue     = core.ATmegaPWMTop
)

var (
	Profile = core.ProfileATmega

	PinFan    = machine.PD3
	PinButton = machine.PD2
)

// timer2 drives Timer/Counter2 registers directly
type timer2 struct{}

func (timer2) Profile() core.Profile {
	return Profile
}

func (timer2) ConfigureTimer(controlA, controlB uint8) {
	PinFan.Configure(machine.PinConfig{Mode: machine.PinOutput})
	avr.TCCR2A.Set(controlA)
	avr.TCCR2B.Set(controlB)
}

func (timer2) SetCompare(ch core.CompareChannel, value core.PWMValue) {
	if ch == core.ChannelA {
		avr.OCR2A.Set(uint8(value))
		return
	}
	avr.OCR2B.Set(uint8(value))
}

func (timer2) Compare(ch core.CompareChannel) core.PWMValue {
	if ch == core.ChannelA {
		return core.PWMValue(avr.OCR2A.Get())
	}
	return core.PWMValue(avr.OCR2B.Get())
}

var driver core.PWMDriver = timer2{}

// consoleWriter sends debug lines to UART0 at 9600 baud
func consoleWriter() core.DebugWriter {
	machine.Serial.Configure(machine.UARTConfig{BaudRate: 9600})
	return func(s string) {
		machine.Serial.Write([]byte(s))
		machine.Serial.Write([]byte("\r\n"))
	}
}
