package console

import (
	"errors"
	"strings"
	"testing"

	"fanpwm/core"
)

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("fan duty=80/160\r")
	if err != nil {
		t.Fatalf("ParseStatus failed: %v", err)
	}
	if st.Duty != 80 || st.Max != 160 {
		t.Errorf("Expected 80/160, got %d/%d", st.Duty, st.Max)
	}
	if st.Percent() != 50 {
		t.Errorf("Expected 50%%, got %v", st.Percent())
	}
	if st.Off() {
		t.Error("Duty 80 reported as off")
	}
}

func TestParseStatusMatchesFirmwareFormat(t *testing.T) {
	line := core.FormatStatus(core.PWMMinValue, core.ATtinyPWMTop)
	st, err := ParseStatus(line)
	if err != nil {
		t.Fatalf("ParseStatus(%q) failed: %v", line, err)
	}
	if !st.Off() || st.Max != core.ATtinyPWMTop {
		t.Errorf("Unexpected status %+v", st)
	}
	if st.String() != line {
		t.Errorf("Expected %q, got %q", line, st.String())
	}
}

func TestParseStatusErrors(t *testing.T) {
	tests := []struct {
		line      string
		notStatus bool
	}{
		{"pwm: atmega timer2 top=160 carrier=25000Hz", true},
		{"", true},
		{"fan duty=80", false},
		{"fan duty=x/160", false},
		{"fan duty=80/999", false},
		{"fan duty=161/160", false},
	}

	for _, tt := range tests {
		_, err := ParseStatus(tt.line)
		if err == nil {
			t.Errorf("ParseStatus(%q): expected error", tt.line)
			continue
		}
		if got := errors.Is(err, ErrNotStatus); got != tt.notStatus {
			t.Errorf("ParseStatus(%q): ErrNotStatus = %v, expected %v (%v)", tt.line, got, tt.notStatus, err)
		}
	}
}

func TestPercentZeroMax(t *testing.T) {
	if (Status{}).Percent() != 0 {
		t.Error("Expected 0% for zero max")
	}
}

func TestScan(t *testing.T) {
	input := "pwm: attiny timer0 top=160 carrier=25000Hz\r\n" +
		"fan duty=0/160\r\n" +
		"\r\n" +
		"fan duty=40/160\r\n" +
		"fan duty=oops/160\r\n"

	var lines []Line
	err := Scan(strings.NewReader(input), func(l Line) bool {
		lines = append(lines, l)
		return true
	})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d", len(lines))
	}
	if lines[0].Status != nil || lines[0].Err != nil {
		t.Errorf("Free text line parsed as status: %+v", lines[0])
	}
	if lines[1].Status == nil || !lines[1].Status.Off() {
		t.Errorf("Expected off status, got %+v", lines[1])
	}
	if lines[2].Status == nil || lines[2].Status.Percent() != 25 {
		t.Errorf("Expected 25%% status, got %+v", lines[2])
	}
	if lines[3].Err == nil {
		t.Errorf("Expected parse error for %q", lines[3].Text)
	}
}

func TestScanStops(t *testing.T) {
	count := 0
	err := Scan(strings.NewReader("a\nb\nc\n"), func(l Line) bool {
		count++
		return count < 2
	})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected scan to stop after 2 lines, got %d", count)
	}
}
