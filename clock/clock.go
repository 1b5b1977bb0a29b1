// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package clock provides the injectable time source and the read-only time
// computations the site displays: calendar-day keys, the countdown, and the
// ticker rotation.
package clock

import (
	"time"

	"github.com/danielhkuo/queen-house/models"
)

// DayLayout formats a calendar day, e.g. "Sat Oct 18 2026".
const DayLayout = "Mon Jan 02 2006"

// RotationInterval is how long each ticker message stays on screen.
const RotationInterval = 5 * time.Second

// Func returns the current instant.
type Func func() time.Time

// System returns wall-clock time in loc. A nil loc means time.Local.
func System(loc *time.Location) Func {
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// Fixed always returns t.
func Fixed(t time.Time) Func {
	return func() time.Time { return t }
}

// DayKey returns the calendar day of t in t's own location.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// Countdown splits the time left until target. Once target is reached every
// field is zero.
func Countdown(target, now time.Time) models.Countdown {
	diff := target.Sub(now)
	if diff <= 0 {
		return models.Countdown{}
	}
	return models.Countdown{
		Days:    int(diff / (24 * time.Hour)),
		Hours:   int(diff/time.Hour) % 24,
		Minutes: int(diff/time.Minute) % 60,
		Seconds: int(diff/time.Second) % 60,
	}
}

// TickerIndex returns which of n messages is showing after elapsed time,
// or -1 when there is nothing to show.
func TickerIndex(n int, elapsed, interval time.Duration) int {
	if n <= 0 {
		return -1
	}
	if interval <= 0 || elapsed < 0 {
		return 0
	}
	return int((elapsed / interval) % time.Duration(n))
}
