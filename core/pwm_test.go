package core

import (
	"strings"
	"testing"
)

// setupSimPWM registers a fresh register model as the PWM driver
func setupSimPWM(t *testing.T, p Profile) *SimTimer {
	t.Helper()
	sim := NewSimTimer(p)
	SetPWMDriver(sim)
	t.Cleanup(func() { SetPWMDriver(nil) })
	return sim
}

func TestInitPWM(t *testing.T) {
	for _, p := range []Profile{ProfileATmega, ProfileATtiny} {
		sim := setupSimPWM(t, p)

		InitPWM()

		if sim.OCRA != p.MaxValue() {
			t.Errorf("%s: expected aux register %d, got %d", p.Name, p.MaxValue(), sim.OCRA)
		}
		if sim.OCRB != p.MaxValue() {
			t.Errorf("%s: expected duty register %d, got %d", p.Name, p.MaxValue(), sim.OCRB)
		}
		if FanPwm.Get() != p.MaxValue() {
			t.Errorf("%s: expected FanPwm %d after init, got %d", p.Name, p.MaxValue(), FanPwm.Get())
		}
		if !IsPhaseCorrect(sim.TCCRA, sim.TCCRB) {
			t.Errorf("%s: timer not in phase correct mode: A=%#x B=%#x", p.Name, sim.TCCRA, sim.TCCRB)
		}
		if !IsUnprescaled(sim.TCCRB) {
			t.Errorf("%s: prescaler enabled: B=%#x", p.Name, sim.TCCRB)
		}
		if !sim.PinOutput {
			t.Errorf("%s: fan pin not switched to output", p.Name)
		}
	}
}

func TestInitPWMIdempotent(t *testing.T) {
	sim := setupSimPWM(t, ProfileATtiny)

	InitPWM()
	first := *sim

	// Application changed the duty cycle in between
	FanPwm.Set(42)
	InitPWM()

	if sim.TCCRA != first.TCCRA || sim.TCCRB != first.TCCRB {
		t.Errorf("Mode bits changed: A=%#x B=%#x, expected A=%#x B=%#x",
			sim.TCCRA, sim.TCCRB, first.TCCRA, first.TCCRB)
	}
	if sim.OCRA != first.OCRA || sim.OCRB != first.OCRB {
		t.Errorf("Compare registers changed: A=%d B=%d, expected A=%d B=%d",
			sim.OCRA, sim.OCRB, first.OCRA, first.OCRB)
	}
	if FanPwm.Get() != ATtinyPWMTop {
		t.Errorf("Expected duty %d after second init, got %d", ATtinyPWMTop, FanPwm.Get())
	}
}

func TestFanPwmRoundTrip(t *testing.T) {
	sim := setupSimPWM(t, ProfileATmega)
	InitPWM()

	for d := PWMValue(PWMMinValue); ; d++ {
		FanPwm.Set(d)
		if got := FanPwm.Get(); got != d {
			t.Errorf("Wrote %d, read back %d", d, got)
		}
		if sim.OCRB != d {
			t.Errorf("Wrote %d, duty register holds %d", d, sim.OCRB)
		}
		// Aux register keeps the period
		if sim.OCRA != ATmegaPWMTop {
			t.Errorf("Duty write %d touched aux register: %d", d, sim.OCRA)
		}
		if d == ATmegaPWMTop {
			break
		}
	}
}

func TestFanPwmDutyIsLinear(t *testing.T) {
	sim := setupSimPWM(t, ProfileATtiny)
	InitPWM()

	for _, d := range []PWMValue{0, 1, 40, 80, 159, 160} {
		FanPwm.Set(d)

		// Ticks high over one up-count slope equal the compare value
		high := 0
		for c := PWMValue(0); c < ProfileATtiny.Top; c++ {
			if sim.OutputHigh(c) {
				high++
			}
		}
		if high != int(d) {
			t.Errorf("Duty %d: expected %d high ticks, got %d", d, d, high)
		}
	}
}

func TestAuxChannelDisconnected(t *testing.T) {
	sim := setupSimPWM(t, ProfileATmega)
	InitPWM()

	if com := (sim.TCCRA >> COMxA0) & 0b11; com != 0 {
		t.Errorf("Aux channel connected to its pin: COMxA=%b", com)
	}
}

func TestMustPWMPanicsWithoutDriver(t *testing.T) {
	SetPWMDriver(nil)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic without driver")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "not configured") {
			t.Errorf("Unexpected panic value: %v", r)
		}
	}()
	InitPWM()
}

func TestFanPwmStatus(t *testing.T) {
	setupSimPWM(t, ProfileATmega)
	InitPWM()

	FanPwm.Set(80)
	if got := FanPwm.Status(); got != "fan duty=80/160" {
		t.Errorf("Expected status %q, got %q", "fan duty=80/160", got)
	}
	if got := FormatStatus(0, 160); got != "fan duty=0/160" {
		t.Errorf("Expected status %q, got %q", "fan duty=0/160", got)
	}
}

func TestInitPWMLogs(t *testing.T) {
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(nil)

	setupSimPWM(t, ProfileATmega)
	InitPWM()

	if len(lines) != 1 {
		t.Fatalf("Expected 1 debug line, got %d", len(lines))
	}
	if lines[0] != "pwm: atmega timer2 top=160 carrier=25000Hz" {
		t.Errorf("Unexpected debug line %q", lines[0])
	}

	SetDebugEnabled(false)
	defer SetDebugEnabled(true)
	InitPWM()
	if len(lines) != 1 {
		t.Errorf("Expected no output while disabled, got %d lines", len(lines))
	}
}
