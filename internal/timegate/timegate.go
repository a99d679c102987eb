// Package timegate decides whether the end-of-day "evaluate my day"
// action is unlocked. The boundary is 22:00 wall-clock in a fixed
// UTC+3 civil time: the current instant is converted to UTC and moved
// forward exactly 3 hours, never consulting the viewer's zone.
package timegate

import (
	"fmt"
	"time"
)

const (
	// Civil offset of the platform clock. Turkey has no DST.
	offset = 3 * time.Hour

	// UnlockHour is the local hour at which check-in opens.
	UnlockHour = 22
)

// civil returns the current instant on the platform's UTC+3 clock.
func civil(now time.Time) time.Time {
	return now.UTC().Add(offset)
}

// Open reports whether the check-in window is open at now.
func Open(now time.Time) bool {
	return civil(now).Hour() >= UnlockHour
}

// RemainingSeconds returns the number of seconds until 22:00 on the
// same civil day, or 0 when the window is already open. The arithmetic
// is intentionally ((21-h)*3600)+((59-m)*60)+(60-s): the trailing
// 60-s term counts the current, partially elapsed second as whole.
func RemainingSeconds(now time.Time) int {
	if Open(now) {
		return 0
	}
	t := civil(now)
	h, m, s := t.Hour(), t.Minute(), t.Second()
	return ((UnlockHour-1-h)*3600 + (59-m)*60 + (60 - s))
}

// Countdown formats the remaining wait as "H sa M dk" when at least an
// hour remains, "M dk S sn" when at least a minute remains, and "S sn"
// otherwise. Returns "" when the window is open.
func Countdown(now time.Time) string {
	secs := RemainingSeconds(now)
	switch {
	case secs == 0:
		return ""
	case secs >= 3600:
		return fmt.Sprintf("%d sa %d dk", secs/3600, (secs%3600)/60)
	case secs >= 60:
		return fmt.Sprintf("%d dk %d sn", secs/60, secs%60)
	default:
		return fmt.Sprintf("%d sn", secs)
	}
}

// Today returns the current civil date (UTC+3) at midnight UTC, the
// canonical form used for date-keyed rows.
func Today(now time.Time) time.Time {
	t := civil(now)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Weekday returns the current civil weekday, Monday-first (0=Monday ..
// 6=Sunday), matching the weekly plan's day indexing.
func Weekday(now time.Time) int {
	return (int(civil(now).Weekday()) + 6) % 7
}
