// Hardware profiles
// Each supported AVR family gets exactly one profile fixing the fan pin, the
// timer peripheral, its compare channels and the PWM top value.
package core

import (
	"errors"
	"strings"
)

// ErrUnsupportedMCU is returned when an MCU identity matches no profile
var ErrUnsupportedMCU = errors.New("selected MCU not implemented yet, please implement first")

// Family identifies a supported MCU family
type Family uint8

const (
	FamilyUnknown Family = iota
	FamilyATmega         // ATmega168, ATmega168P, ATmega328P
	FamilyATtiny         // ATtiny25, ATtiny45, ATtiny85
)

// String returns the family name
func (f Family) String() string {
	switch f {
	case FamilyATmega:
		return "ATmega168/328P"
	case FamilyATtiny:
		return "ATtiny25/45/85"
	default:
		return "unknown"
	}
}

// Timer identifies the 8-bit timer/counter peripheral driving the fan
type Timer uint8

const (
	Timer0 Timer = 0
	Timer2 Timer = 2
)

// CompareChannel identifies an output compare unit of a timer (OCRxA / OCRxB)
type CompareChannel uint8

const (
	ChannelA CompareChannel = iota
	ChannelB
)

// String returns the register name suffix ("A" or "B")
func (c CompareChannel) String() string {
	if c == ChannelA {
		return "A"
	}
	return "B"
}

// Profile constants shared with the build-time board selection.
// 8MHz / 160 / 2 = 25kHz in phase correct mode.
const (
	PWMMinValue = 0

	ATmegaFanPin = 3 // Arduino pin 3, PD3 (OC2B)
	ATmegaPWMTop = 160

	ATtinyFanPin = 1 // PB1 (OC0B)
	ATtinyPWMTop = 160

	DefaultClockHz = 8000000
)

// Profile is the fixed pin/timer/frequency wiring of one MCU family
type Profile struct {
	Family    Family
	Name      string
	OutputPin uint8  // PIN_OUTPUT_FAN_PWM
	PortPin   string // Port name of the output pin, e.g. "PD3"
	Timer     Timer

	// Top bounds one PWM period; it is also the largest legal duty value
	Top PWMValue

	// Aux sets the timer period (TOP), PWM holds the duty cycle
	Aux CompareChannel
	PWM CompareChannel

	ClockHz uint32
}

var (
	ProfileATmega = Profile{
		Family:    FamilyATmega,
		Name:      "atmega",
		OutputPin: ATmegaFanPin,
		PortPin:   "PD3",
		Timer:     Timer2,
		Top:       ATmegaPWMTop,
		Aux:       ChannelA,
		PWM:       ChannelB,
		ClockHz:   DefaultClockHz,
	}

	ProfileATtiny = Profile{
		Family:    FamilyATtiny,
		Name:      "attiny",
		OutputPin: ATtinyFanPin,
		PortPin:   "PB1",
		Timer:     Timer0,
		Top:       ATtinyPWMTop,
		Aux:       ChannelA,
		PWM:       ChannelB,
		ClockHz:   DefaultClockHz,
	}
)

// mcuFamilies maps every supported chip name to its family.
// Keys are lower case TinyGo build tag names.
var mcuFamilies = map[string]Family{
	"atmega168":  FamilyATmega,
	"atmega168p": FamilyATmega,
	"atmega328p": FamilyATmega,
	"attiny25":   FamilyATtiny,
	"attiny45":   FamilyATtiny,
	"attiny85":   FamilyATtiny,
}

// SupportedMCUs returns the chip names accepted by Resolve, sorted
func SupportedMCUs() []string {
	return []string{"atmega168", "atmega168p", "atmega328p", "attiny25", "attiny45", "attiny85"}
}

// Resolve returns the hardware profile for an MCU identity.
// Accepts TinyGo tag names ("atmega328p") as well as avr-gcc device macros
// ("__AVR_ATmega328P__"). There is no default: unknown chips return an error
// wrapping ErrUnsupportedMCU.
func Resolve(mcu string) (Profile, error) {
	name := normalizeMCU(mcu)
	switch mcuFamilies[name] {
	case FamilyATmega:
		return ProfileATmega, nil
	case FamilyATtiny:
		return ProfileATtiny, nil
	}
	return Profile{}, &UnsupportedMCUError{MCU: mcu}
}

// MustResolve is like Resolve but panics on unsupported MCUs
func MustResolve(mcu string) Profile {
	p, err := Resolve(mcu)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// UnsupportedMCUError reports the identity that failed to resolve
type UnsupportedMCUError struct {
	MCU string
}

func (e *UnsupportedMCUError) Error() string {
	return "mcu " + quote(e.MCU) + ": " + ErrUnsupportedMCU.Error()
}

func (e *UnsupportedMCUError) Unwrap() error {
	return ErrUnsupportedMCU
}

func normalizeMCU(mcu string) string {
	name := strings.ToLower(strings.TrimSpace(mcu))
	name = strings.TrimPrefix(name, "__avr_")
	name = strings.TrimSuffix(name, "__")
	return name
}

// MaxValue returns the largest legal duty value (PWM_MAX_VALUE)
func (p Profile) MaxValue() PWMValue {
	return p.Top
}

// MinValue returns the smallest legal duty value (PWM_MIN_VALUE)
func (p Profile) MinValue() PWMValue {
	return PWMMinValue
}

// CarrierHz returns the PWM switching frequency.
// Phase correct mode counts up to TOP and back down, so one period is 2*TOP ticks.
func (p Profile) CarrierHz() uint32 {
	if p.Top == 0 {
		return 0
	}
	return p.ClockHz / uint32(p.Top) / 2
}

// InRange reports whether v is a legal duty value for this profile
func (p Profile) InRange(v PWMValue) bool {
	return v >= p.MinValue() && v <= p.MaxValue()
}

// ClockWarning returns a debug line when the CPU clock differs from the
// profile's clock, since the carrier scales with it. Returns "" on a match.
func (p Profile) ClockWarning(cpuHz uint32) string {
	if cpuHz == p.ClockHz || p.Top == 0 {
		return ""
	}
	return "pwm: cpu clock " + utoa(cpuHz) + "Hz, carrier " +
		utoa(cpuHz/uint32(p.Top)/2) + "Hz instead of " + utoa(p.CarrierHz()) + "Hz"
}
