package engine

import (
	"testing"

	"github.com/amanahdev/ramadan-companion/models"
)

func TestWindowDay(t *testing.T) {
	win := models.RamadanWindow{StartDate: "2025-03-01", EndDate: "2025-03-30"}

	tests := []struct {
		today     string
		wantDay   int
		wantTotal int
	}{
		{"2025-02-20", 0, 30},
		{"2025-03-01", 1, 30},
		{"2025-03-15", 15, 30},
		{"2025-03-30", 30, 30},
		{"2025-04-02", 30, 30},
	}

	for _, tt := range tests {
		day, total := WindowDay(win, tt.today)
		if day != tt.wantDay || total != tt.wantTotal {
			t.Errorf("WindowDay(%s) = (%d, %d), want (%d, %d)", tt.today, day, total, tt.wantDay, tt.wantTotal)
		}
	}
}

func TestWindowDaySingleDay(t *testing.T) {
	win := models.RamadanWindow{StartDate: "2025-03-01", EndDate: "2025-03-01"}
	day, total := WindowDay(win, "2025-03-01")
	if day != 1 || total != 1 {
		t.Errorf("got (%d, %d), want (1, 1)", day, total)
	}
}

func TestValidateWindow(t *testing.T) {
	valid := models.RamadanWindow{StartDate: "2025-03-01", EndDate: "2025-03-30"}
	if err := ValidateWindow(valid); err != nil {
		t.Errorf("valid window rejected: %v", err)
	}

	bad := []models.RamadanWindow{
		{StartDate: "2025-03-30", EndDate: "2025-03-01"},
		{StartDate: "not-a-date", EndDate: "2025-03-30"},
		{StartDate: "2025-03-01", EndDate: ""},
	}
	for _, w := range bad {
		if err := ValidateWindow(w); err == nil {
			t.Errorf("window %+v accepted", w)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	if d := DaysBetween("2025-03-01", "2025-03-05"); d != 4 {
		t.Errorf("DaysBetween forward = %d, want 4", d)
	}
	if d := DaysBetween("2025-03-05", "2025-03-01"); d != -4 {
		t.Errorf("DaysBetween backward = %d, want -4", d)
	}
	if d := DaysBetween("garbage", "2025-03-01"); d != 0 {
		t.Errorf("DaysBetween malformed = %d, want 0", d)
	}
}
