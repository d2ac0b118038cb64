package core

import "testing"

func TestWithInterruptsDisabled(t *testing.T) {
	sim := setupSimPWM(t, ProfileATmega)
	InitPWM()

	called := false
	WithInterruptsDisabled(func() {
		called = true
		FanPwm.Set(100)
	})

	if !called {
		t.Fatal("Function was not run")
	}
	if sim.OCRB != 100 {
		t.Errorf("Expected duty 100, got %d", sim.OCRB)
	}
}
