package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/Srinivaspandrala/server-hrm/internals/configs"
)

func defaultShift() Shift {
	return Shift{
		Start:      configs.ClockTime{Hour: 20, Minute: 0},
		LateCutoff: configs.ClockTime{Hour: 20, Minute: 30},
		End:        configs.ClockTime{Hour: 21, Minute: 0},
	}
}

func at(t *testing.T, hour, minute, sec int) time.Time {
	t.Helper()
	return time.Date(2025, 1, 2, hour, minute, sec, 0, time.Local)
}

func TestClassifyBranches(t *testing.T) {
	tests := []struct {
		name          string
		hour, minute  int
		sec           int
		wantArrival   string // "" means nil
		wantLeave     string
		wantEffective string
		wantLogStatus string
	}{
		{"exact start", 20, 0, 0, "On Time", "No", "9:00 Hrs", "Yes"},
		{"exact start late second", 20, 0, 59, "On Time", "No", "9:00 Hrs", "Yes"},
		{"one minute late", 20, 1, 0, "1 minute late", "No", "9:00 Hrs", "No"},
		{"fifteen minutes late", 20, 15, 0, "15 minute late", "No", "9:00 Hrs", "No"},
		{"cutoff boundary", 20, 30, 0, "30 minute late", "No", "9:00 Hrs", "No"},
		{"just past cutoff", 20, 31, 0, "", "No", "0:00 Hrs", "WH"},
		{"end of workday", 21, 0, 0, "", "No", "0:00 Hrs", "WH"},
		{"just past end", 21, 1, 0, "", "Yes", "0:00 Hrs", "EL"},
		{"late evening", 21, 30, 0, "", "Yes", "0:00 Hrs", "EL"},
		{"near midnight", 23, 59, 0, "", "Yes", "0:00 Hrs", "EL"},
		{"before start", 19, 59, 0, "", "No", "0:00 Hrs", "WH"},
		{"morning", 9, 0, 0, "", "No", "0:00 Hrs", "WH"},
		{"midnight", 0, 0, 0, "", "No", "0:00 Hrs", "WH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(at(t, tt.hour, tt.minute, tt.sec), defaultShift())

			if tt.wantArrival == "" {
				if got.ArrivalStatus != nil {
					t.Fatalf("ArrivalStatus = %q, want nil", *got.ArrivalStatus)
				}
			} else {
				if got.ArrivalStatus == nil {
					t.Fatalf("ArrivalStatus = nil, want %q", tt.wantArrival)
				}
				if *got.ArrivalStatus != tt.wantArrival {
					t.Errorf("ArrivalStatus = %q, want %q", *got.ArrivalStatus, tt.wantArrival)
				}
			}
			if got.LeaveStatus != tt.wantLeave {
				t.Errorf("LeaveStatus = %q, want %q", got.LeaveStatus, tt.wantLeave)
			}
			if got.EffectiveHours != tt.wantEffective {
				t.Errorf("EffectiveHours = %q, want %q", got.EffectiveHours, tt.wantEffective)
			}
			if got.GrossHours != tt.wantEffective {
				t.Errorf("GrossHours = %q, want %q", got.GrossHours, tt.wantEffective)
			}
			if got.LogStatus != tt.wantLogStatus {
				t.Errorf("LogStatus = %q, want %q", got.LogStatus, tt.wantLogStatus)
			}
		})
	}
}

// Every minute in the late window maps to its exact offset from shift start.
func TestClassifyLateWindowMinutes(t *testing.T) {
	for minute := 1; minute <= 30; minute++ {
		got := Classify(at(t, 20, minute, 0), defaultShift())
		want := fmt.Sprintf("%d minute late", minute)
		if got.ArrivalStatus == nil || *got.ArrivalStatus != want {
			t.Fatalf("minute %d: ArrivalStatus = %v, want %q", minute, got.ArrivalStatus, want)
		}
		if got.LogStatus != LogStatusClosed {
			t.Fatalf("minute %d: LogStatus = %q, want %q", minute, got.LogStatus, LogStatusClosed)
		}
	}
}

// The exact-start branch wins over the late window: 20:00 is never "0 minute late".
func TestClassifyExactStartPrecedesLateWindow(t *testing.T) {
	for sec := 0; sec < 60; sec += 13 {
		got := Classify(at(t, 20, 0, sec), defaultShift())
		if got.ArrivalStatus == nil || *got.ArrivalStatus != "On Time" {
			t.Fatalf("sec %d: ArrivalStatus = %v, want On Time", sec, got.ArrivalStatus)
		}
		if got.LogStatus != LogStatusOpen {
			t.Fatalf("sec %d: LogStatus = %q, want %q", sec, got.LogStatus, LogStatusOpen)
		}
	}
}

func TestClassifyCustomShift(t *testing.T) {
	shift := Shift{
		Start:      configs.ClockTime{Hour: 9, Minute: 0},
		LateCutoff: configs.ClockTime{Hour: 9, Minute: 30},
		End:        configs.ClockTime{Hour: 18, Minute: 0},
	}

	if got := Classify(at(t, 9, 0, 0), shift); got.LogStatus != LogStatusOpen {
		t.Errorf("09:00 LogStatus = %q, want %q", got.LogStatus, LogStatusOpen)
	}
	if got := Classify(at(t, 9, 10, 0), shift); got.ArrivalStatus == nil || *got.ArrivalStatus != "10 minute late" {
		t.Errorf("09:10 ArrivalStatus = %v, want 10 minute late", got.ArrivalStatus)
	}
	if got := Classify(at(t, 18, 30, 0), shift); got.LogStatus != LogStatusExcused {
		t.Errorf("18:30 LogStatus = %q, want %q", got.LogStatus, LogStatusExcused)
	}
	if got := Classify(at(t, 8, 0, 0), shift); got.LogStatus != LogStatusOutside {
		t.Errorf("08:00 LogStatus = %q, want %q", got.LogStatus, LogStatusOutside)
	}
}

func TestEffectiveHoursBetween(t *testing.T) {
	login := at(t, 20, 0, 0)

	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0},
		{15 * time.Minute, 0.25},
		{time.Hour, 1},
		{8*time.Hour + 59*time.Minute, 8.98},
		{9 * time.Hour, 9},
		{10*time.Hour + 30*time.Minute, 10.5},
	}
	for _, tt := range tests {
		if got := EffectiveHoursBetween(login, login.Add(tt.elapsed)); got != tt.want {
			t.Errorf("EffectiveHoursBetween(+%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

// Effective hours grow with elapsed wall-clock time.
func TestEffectiveHoursMonotonic(t *testing.T) {
	login := at(t, 20, 0, 0)
	prev := -1.0
	for m := 0; m <= 12*60; m += 7 {
		got := EffectiveHoursBetween(login, login.Add(time.Duration(m)*time.Minute))
		if got < prev {
			t.Fatalf("effective hours decreased: %v after %v at +%dm", got, prev, m)
		}
		prev = got
	}
}

func TestLeaveStatusForHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "No"},
		{8.99, "No"},
		{9, "Yes"},
		{9.01, "Yes"},
		{12, "Yes"},
	}
	for _, tt := range tests {
		if got := LeaveStatusForHours(tt.hours); got != tt.want {
			t.Errorf("LeaveStatusForHours(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}

func TestFormatDecimalHours(t *testing.T) {
	if got := FormatDecimalHours(9); got != "9.00 Hrs" {
		t.Errorf("FormatDecimalHours(9) = %q", got)
	}
	if got := FormatDecimalHours(8.25); got != "8.25 Hrs" {
		t.Errorf("FormatDecimalHours(8.25) = %q", got)
	}
}
