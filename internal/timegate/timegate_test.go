package timegate

import (
	"testing"
	"time"
)

// at builds an instant whose UTC+3 civil time matches the given clock.
func at(hour, min, sec int) time.Time {
	return time.Date(2026, 3, 2, hour, min, sec, 0, time.FixedZone("UTC+3", 3*60*60))
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "one second before", now: at(21, 59, 59), want: false},
		{name: "exactly 22:00", now: at(22, 0, 0), want: true},
		{name: "late evening", now: at(23, 30, 0), want: true},
		{name: "morning", now: at(7, 0, 0), want: false},
		{name: "midnight", now: at(0, 0, 0), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Open(tt.now); got != tt.want {
				t.Errorf("Open() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemainingSeconds(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{name: "one second before", now: at(21, 59, 59), want: 1},
		{name: "open", now: at(22, 0, 0), want: 0},
		// ((21-7)*3600)+((59-0)*60)+(60-0) = 54000
		{name: "morning", now: at(7, 0, 0), want: 54000},
		{name: "one minute before", now: at(21, 59, 0), want: 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemainingSeconds(tt.now); got != tt.want {
				t.Errorf("RemainingSeconds() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountdown(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{name: "seconds only", now: at(21, 59, 59), want: "1 sn"},
		{name: "open", now: at(22, 0, 0), want: ""},
		// 54000s: the formula's 14 sa 59 dk 60 sn normalizes to 15 sa 0 dk
		{name: "morning", now: at(7, 0, 0), want: "15 sa 0 dk"},
		{name: "minutes and seconds", now: at(21, 58, 30), want: "1 dk 30 sn"},
		{name: "exactly one minute", now: at(21, 59, 0), want: "1 dk 0 sn"},
		{name: "hours", now: at(20, 30, 0), want: "1 sa 30 dk"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Countdown(tt.now); got != tt.want {
				t.Errorf("Countdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

// The boundary targets UTC+3 wall-clock regardless of the machine zone.
func TestOpenIgnoresViewerZone(t *testing.T) {
	// 19:00 UTC == 22:00 UTC+3, expressed in a UTC-5 zone.
	ny := time.Date(2026, 3, 2, 14, 0, 0, 0, time.FixedZone("UTC-5", -5*60*60))
	if !Open(ny) {
		t.Error("Open() = false for 22:00 UTC+3 expressed in another zone")
	}
}

func TestWeekdayMondayFirst(t *testing.T) {
	// 2026-03-02 is a Monday.
	if got := Weekday(at(12, 0, 0)); got != 0 {
		t.Errorf("Weekday() = %d, want 0", got)
	}
	// Crossing midnight in UTC+3: 22:30 UTC Monday is 01:30 Tuesday civil.
	mondayLateUTC := time.Date(2026, 3, 2, 22, 30, 0, 0, time.UTC)
	if got := Weekday(mondayLateUTC); got != 1 {
		t.Errorf("Weekday() = %d, want 1", got)
	}
}

func TestToday(t *testing.T) {
	mondayLateUTC := time.Date(2026, 3, 2, 22, 30, 0, 0, time.UTC)
	want := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	if got := Today(mondayLateUTC); !got.Equal(want) {
		t.Errorf("Today() = %v, want %v", got, want)
	}
}
