// PWM (Pulse Width Modulation) support
// Configures the fan timer once at startup and exposes the duty cycle register.
package core

// InitPWM configures the registered driver's timer for 25kHz phase correct PWM
// and parks both compare registers at the top value.
// Must run once before the first duty cycle write. Running it again is safe
// but drops the output back to its boot state for one instant.
func InitPWM() {
	d := MustPWM()
	p := d.Profile()

	d.ConfigureTimer(p.ControlA(), p.ControlB())

	// TOP - DO NOT CHANGE, sets the PWM pulse rate
	d.SetCompare(p.Aux, p.MaxValue())

	// Duty cycle register starts at the top value, fan disabled
	d.SetCompare(p.PWM, p.MaxValue())

	DebugPrintln("pwm: " + p.Name + " timer" + utoa(uint32(p.Timer)) +
		" top=" + utoa(uint32(p.Top)) + " carrier=" + utoa(p.CarrierHz()) + "Hz")
}

// DutyRegister is a handle on the fan's duty cycle compare register.
// Writes are stored as-is: keeping values within [FanSpeedOff, FanSpeedMax]
// is the caller's job.
type DutyRegister struct{}

// FanPwm is the duty cycle register of the active profile
var FanPwm DutyRegister

// Set writes a duty cycle value
func (DutyRegister) Set(v PWMValue) {
	d := MustPWM()
	d.SetCompare(d.Profile().PWM, v)
}

// Get reads back the current duty cycle value
func (DutyRegister) Get() PWMValue {
	d := MustPWM()
	return d.Compare(d.Profile().PWM)
}

// Status formats the current duty cycle as a console status line
func (r DutyRegister) Status() string {
	return FormatStatus(r.Get(), MustPWM().Profile().MaxValue())
}

// StatusPrefix starts every duty status line on the debug console
const StatusPrefix = "fan duty="

// FormatStatus renders a duty status line, e.g. "fan duty=80/160"
func FormatStatus(value, max PWMValue) string {
	return StatusPrefix + utoa(uint32(value)) + "/" + utoa(uint32(max))
}
