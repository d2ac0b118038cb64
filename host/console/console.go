// Package console parses the fan controller's debug console output.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fanpwm/core"
)

// ErrNotStatus is returned for console lines that are not duty status lines
var ErrNotStatus = errors.New("not a duty status line")

// Status is one "fan duty=<value>/<max>" report
type Status struct {
	Duty core.PWMValue
	Max  core.PWMValue
}

// Percent returns the duty cycle as a percentage of the maximum
func (s Status) Percent() float64 {
	if s.Max == 0 {
		return 0
	}
	return float64(s.Duty) * 100 / float64(s.Max)
}

// Off reports whether the fan was set to FAN_SPEED_OFF
func (s Status) Off() bool {
	return s.Duty == core.PWMMinValue
}

// String formats the status like the firmware does
func (s Status) String() string {
	return core.FormatStatus(s.Duty, s.Max)
}

// ParseStatus parses a duty status line.
// Lines that do not start with the status prefix return ErrNotStatus.
func ParseStatus(line string) (Status, error) {
	line = strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(line, core.StatusPrefix)
	if !ok {
		return Status{}, ErrNotStatus
	}

	dutyStr, maxStr, ok := strings.Cut(rest, "/")
	if !ok {
		return Status{}, fmt.Errorf("status %q: missing max value", line)
	}

	duty, err := strconv.ParseUint(dutyStr, 10, 8)
	if err != nil {
		return Status{}, fmt.Errorf("status %q: bad duty: %w", line, err)
	}
	top, err := strconv.ParseUint(maxStr, 10, 8)
	if err != nil {
		return Status{}, fmt.Errorf("status %q: bad max: %w", line, err)
	}
	if duty > top {
		return Status{}, fmt.Errorf("status %q: duty %d above max %d", line, duty, top)
	}

	return Status{Duty: core.PWMValue(duty), Max: core.PWMValue(top)}, nil
}

// Line is one console line, with its parsed status when it is a status line
type Line struct {
	Text   string
	Status *Status
	Err    error // Set when the line looked like a status but failed to parse
}

// Scan reads console lines from r and calls fn for each until r is exhausted
// or fn returns false. Carriage returns from the firmware's "\r\n" are stripped.
func Scan(r io.Reader, fn func(Line) bool) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := strings.TrimRight(scanner.Text(), "\r")
		if text == "" {
			continue
		}

		line := Line{Text: text}
		st, err := ParseStatus(text)
		switch {
		case err == nil:
			line.Status = &st
		case !errors.Is(err, ErrNotStatus):
			line.Err = err
		}

		if !fn(line) {
			return nil
		}
	}
	return scanner.Err()
}
