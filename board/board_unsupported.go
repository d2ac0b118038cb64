//go:build avr && !(atmega168 || atmega168p || atmega328p || attiny25 || attiny45 || attiny85)

package board

// Selected MCU has no fan PWM hardware profile. Add a board_<family>.go with
// its pin, timer and compare registers before building for it.
var _ = selectedMCUNotImplementedYetPleaseImplementFirst
