package timeutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2026, 8, 15, 18, 30, 45, 123, time.Local)
	got := StartOfDay(ts)
	want := time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}

func TestStartOfWeek(t *testing.T) {
	// 2026-08-15 是周六，所在周的周一是 2026-08-10
	sat := time.Date(2026, 8, 15, 12, 0, 0, 0, time.Local)
	want := time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local)
	if got := StartOfWeek(sat); !got.Equal(want) {
		t.Errorf("StartOfWeek(sat) = %v, want %v", got, want)
	}

	// 周日归属上一个周一
	sun := time.Date(2026, 8, 16, 8, 0, 0, 0, time.Local)
	if got := StartOfWeek(sun); !got.Equal(want) {
		t.Errorf("StartOfWeek(sun) = %v, want %v", got, want)
	}

	// 周一是自身
	mon := time.Date(2026, 8, 10, 23, 59, 0, 0, time.Local)
	if got := StartOfWeek(mon); !got.Equal(want) {
		t.Errorf("StartOfWeek(mon) = %v, want %v", got, want)
	}
}

func TestStartOfMonth(t *testing.T) {
	ts := time.Date(2026, 8, 31, 23, 59, 59, 0, time.Local)
	want := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	if got := StartOfMonth(ts); !got.Equal(want) {
		t.Errorf("StartOfMonth = %v, want %v", got, want)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-08-15")
	if err != nil {
		t.Fatalf("ParseDate err: %v", err)
	}
	if got.Year() != 2026 || got.Month() != 8 || got.Day() != 15 {
		t.Errorf("ParseDate = %v", got)
	}
	if _, err := ParseDate("15/08/2026"); err == nil {
		t.Error("bad format should error")
	}
}
