package fridge

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStatus(t *testing.T) {
	today := date(2026, time.March, 10)

	tests := []struct {
		name   string
		expire *time.Time
		want   ItemStatus
	}{
		{"nil expiry is fresh", nil, StatusFresh},
		{"expired yesterday", ptr(date(2026, time.March, 9)), StatusExpired},
		{"expires today", ptr(date(2026, time.March, 10)), StatusWarning},
		{"expires in 3 days", ptr(date(2026, time.March, 13)), StatusWarning},
		{"expires in 4 days", ptr(date(2026, time.March, 14)), StatusFresh},
		{"expires far out", ptr(date(2026, time.June, 1)), StatusFresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(tt.expire, today); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusIgnoresTimeOfDay(t *testing.T) {
	// An item expiring today at 00:00 stays WARNING even when checked at
	// 23:59: both sides are truncated to midnight.
	expire := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	lateToday := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)

	if got := Status(&expire, lateToday); got != StatusWarning {
		t.Errorf("Status() late in the day = %v, want %v", got, StatusWarning)
	}

	earlyToday := time.Date(2026, time.March, 10, 0, 1, 0, 0, time.UTC)
	if got := Status(&expire, earlyToday); got != StatusWarning {
		t.Errorf("Status() early in the day = %v, want %v", got, StatusWarning)
	}
}

// Expiry dates come out of time.Parse in UTC while "today" carries the
// server's zone. The calendar-day diff must not leak the zone offset.
func TestStatusMixedLocations(t *testing.T) {
	kst := time.FixedZone("KST", 9*60*60)
	est := time.FixedZone("EST", -5*60*60)

	expired, _ := time.Parse("2006-01-02", "2026-03-09")
	seoulNoon := time.Date(2026, time.March, 10, 12, 0, 0, 0, kst)
	if got := Status(&expired, seoulNoon); got != StatusExpired {
		t.Errorf("Status() = %v, want %v for yesterday's expiry seen from KST", got, StatusExpired)
	}
	if got := DaysUntil(expired, seoulNoon); got != -1 {
		t.Errorf("DaysUntil() = %d, want -1 across locations", got)
	}

	dayFour, _ := time.Parse("2006-01-02", "2026-03-14")
	nyNoon := time.Date(2026, time.March, 10, 12, 0, 0, 0, est)
	if got := Status(&dayFour, nyNoon); got != StatusFresh {
		t.Errorf("Status() = %v, want %v for a day-4 expiry seen from EST", got, StatusFresh)
	}
}

func TestDaysUntil(t *testing.T) {
	today := date(2026, time.March, 10)

	tests := []struct {
		date time.Time
		want int
	}{
		{date(2026, time.March, 10), 0},
		{date(2026, time.March, 11), 1},
		{date(2026, time.March, 9), -1},
		{date(2026, time.March, 20), 10},
	}

	for _, tt := range tests {
		if got := DaysUntil(tt.date, today); got != tt.want {
			t.Errorf("DaysUntil(%v) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestStageFor(t *testing.T) {
	tests := []struct {
		progress int
		want     Stage
	}{
		{0, StageUpload},
		{15, StageUpload},
		{32, StageUpload},
		{33, StageRecognize},
		{50, StageRecognize},
		{65, StageRecognize},
		{66, StageExtract},
		{99, StageExtract},
		{100, StageComplete},
	}

	for _, tt := range tests {
		if got := StageFor(tt.progress); got != tt.want {
			t.Errorf("StageFor(%d) = %v, want %v", tt.progress, got, tt.want)
		}
	}
}

// Stage boundaries must be a step function: progress never maps backwards.
func TestStageForMonotonic(t *testing.T) {
	order := map[Stage]int{
		StageUpload:    0,
		StageRecognize: 1,
		StageExtract:   2,
		StageComplete:  3,
	}

	prev := StageUpload
	for p := 0; p <= 100; p++ {
		got := StageFor(p)
		if order[got] < order[prev] {
			t.Fatalf("StageFor(%d) = %v after %v: stages went backwards", p, got, prev)
		}
		prev = got
	}
}

func ptr(t time.Time) *time.Time { return &t }
