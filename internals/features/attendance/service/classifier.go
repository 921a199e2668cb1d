// internals/features/attendance/service/classifier.go
package service

import (
	"fmt"
	"math"
	"time"

	"github.com/Srinivaspandrala/server-hrm/internals/configs"
)

// Log status markers on an attendance row.
const (
	LogStatusOpen    = "Yes" // session opened, currently logged in
	LogStatusClosed  = "No"  // session opened but not the canonical on-time one, or closed
	LogStatusExcused = "EL"  // arrival after end of workday; no session opened
	LogStatusOutside = "WH"  // outside working hours; no session opened
)

const (
	fullDayHours    = "9:00 Hrs"
	zeroHours       = "0:00 Hrs"
	leaveThresholdH = 9.0
)

// Shift holds the daily thresholds the classifier works against, all in the
// machine-local timezone.
type Shift struct {
	Start      configs.ClockTime
	LateCutoff configs.ClockTime
	End        configs.ClockTime
}

// ShiftFromConfig returns the configured workday thresholds.
func ShiftFromConfig() Shift {
	return Shift{
		Start:      configs.ShiftStart,
		LateCutoff: configs.ShiftLateCutoff,
		End:        configs.ShiftEnd,
	}
}

// Classification is the derived attendance state for one login.
type Classification struct {
	ArrivalStatus  *string
	LeaveStatus    string
	EffectiveHours string
	GrossHours     string
	LogStatus      string
}

// Classify derives arrival status, hours and the log flag from a login
// timestamp. Minute granularity; branches are evaluated in order and the
// first match wins, so the exact-start minute never falls into the late
// window.
func Classify(now time.Time, shift Shift) Classification {
	hour, minute := now.Hour(), now.Minute()

	switch {
	// exactly at shift start
	case hour == shift.Start.Hour && minute == shift.Start.Minute:
		s := "On Time"
		return Classification{
			ArrivalStatus:  &s,
			LeaveStatus:    "No",
			EffectiveHours: fullDayHours,
			GrossHours:     fullDayHours,
			LogStatus:      LogStatusOpen,
		}

	// after end of workday
	case hour > shift.End.Hour || (hour == shift.End.Hour && minute > shift.End.Minute):
		return Classification{
			ArrivalStatus:  nil,
			LeaveStatus:    "Yes",
			EffectiveHours: zeroHours,
			GrossHours:     zeroHours,
			LogStatus:      LogStatusExcused,
		}

	// after start, up to and including the late cutoff
	case (hour > shift.Start.Hour || (hour == shift.Start.Hour && minute > shift.Start.Minute)) &&
		(hour < shift.LateCutoff.Hour || (hour == shift.LateCutoff.Hour && minute <= shift.LateCutoff.Minute)):
		minutesLate := (hour-shift.Start.Hour)*60 + (minute - shift.Start.Minute)
		s := fmt.Sprintf("%d minute late", minutesLate)
		return Classification{
			ArrivalStatus:  &s,
			LeaveStatus:    "No",
			EffectiveHours: fullDayHours,
			GrossHours:     fullDayHours,
			LogStatus:      LogStatusClosed,
		}

	// before start, or between cutoff and end of workday
	default:
		return Classification{
			ArrivalStatus:  nil,
			LeaveStatus:    "No",
			EffectiveHours: zeroHours,
			GrossHours:     zeroHours,
			LogStatus:      LogStatusOutside,
		}
	}
}

// EffectiveHoursBetween is the logout pairing computation: wall-clock delta
// in hours, rounded to 2 decimals.
func EffectiveHoursBetween(login, logout time.Time) float64 {
	h := logout.Sub(login).Hours()
	return math.Round(h*100) / 100
}

// LeaveStatusForHours: a full day (>= 9h) earns leave eligibility.
func LeaveStatusForHours(effective float64) string {
	if effective >= leaveThresholdH {
		return "Yes"
	}
	return "No"
}

// FormatDecimalHours renders the closed-session hours ("8.25 Hrs").
func FormatDecimalHours(effective float64) string {
	return fmt.Sprintf("%.2f Hrs", effective)
}
