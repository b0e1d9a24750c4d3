package astro

import (
	"errors"
	"testing"
)

func TestToJulian_KnownDates(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		day   int
		want  float64
	}{
		{"J2000 civil day", 2000, 1, 1, 2451544.5},
		{"reference scenario date", 2024, 4, 14, 2460414.5},
		{"last Julian day before the reform", 1582, 10, 4, 2299159.5},
		{"first Gregorian day after the reform", 1582, 10, 15, 2299160.5},
		{"Julian day zero", -4712, 1, 1, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToJulian(tt.year, tt.month, tt.day)
			if err != nil {
				t.Fatalf("ToJulian(%d, %d, %d) error: %v", tt.year, tt.month, tt.day, err)
			}
			if got != tt.want {
				t.Errorf("ToJulian(%d, %d, %d) = %v, want %v", tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestToJulian_J2000Anchor(t *testing.T) {
	// The J2000 epoch is 2000-01-01 at 12:00; ToJulian returns 00:00.
	jd, err := ToJulian(2000, 1, 1)
	if err != nil {
		t.Fatalf("ToJulian(2000, 1, 1) error: %v", err)
	}
	if jd+0.5 != J2000 {
		t.Errorf("ToJulian(2000, 1, 1) + 0.5 = %v, want %v", jd+0.5, J2000)
	}
}

func TestToJulian_ReformBoundaryIsContinuous(t *testing.T) {
	before, err := ToJulian(1582, 10, 4)
	if err != nil {
		t.Fatalf("ToJulian(1582, 10, 4) error: %v", err)
	}
	after, err := ToJulian(1582, 10, 15)
	if err != nil {
		t.Fatalf("ToJulian(1582, 10, 15) error: %v", err)
	}
	if after-before != 1 {
		t.Errorf("reform boundary gap = %v days, want 1", after-before)
	}
}

func TestToJulian_ReformGapDatesDoNotError(t *testing.T) {
	// 1582-10-05 through 1582-10-14 exist in neither calendar. They are
	// accepted without error; only finiteness is promised.
	for day := 5; day <= 14; day++ {
		if _, err := ToJulian(1582, 10, day); err != nil {
			t.Errorf("ToJulian(1582, 10, %d) unexpected error: %v", day, err)
		}
	}
}

func TestToJulian_InvalidDates(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		day   int
	}{
		{"month zero", 2024, 0, 10},
		{"month thirteen", 2024, 13, 1},
		{"day zero", 2024, 4, 0},
		{"day past month end", 2024, 4, 31},
		{"Feb 29 in a common year", 2023, 2, 29},
		{"Feb 30 in a leap year", 2024, 2, 30},
		{"Feb 29 in a century year", 1900, 2, 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToJulian(tt.year, tt.month, tt.day)
			if err == nil {
				t.Fatalf("ToJulian(%d, %d, %d) expected error, got nil", tt.year, tt.month, tt.day)
			}
			var invalid *InvalidDateError
			if !errors.As(err, &invalid) {
				t.Errorf("error type = %T, want *InvalidDateError", err)
			}
		})
	}
}

func TestToJulian_CenturyLeapRule(t *testing.T) {
	// 2000 is a leap year, 1900 is not.
	if _, err := ToJulian(2000, 2, 29); err != nil {
		t.Errorf("ToJulian(2000, 2, 29) unexpected error: %v", err)
	}
	if _, err := ToJulian(1900, 2, 29); err == nil {
		t.Error("ToJulian(1900, 2, 29) expected error, got nil")
	}
}

func TestToJulian_Monotonic(t *testing.T) {
	// Julian day strictly increases with calendar time.
	prev, err := ToJulian(2023, 12, 25)
	if err != nil {
		t.Fatalf("ToJulian error: %v", err)
	}
	for _, d := range []struct{ y, m, day int }{
		{2023, 12, 31}, {2024, 1, 1}, {2024, 2, 29}, {2024, 3, 1}, {2024, 12, 31}, {2025, 1, 1},
	} {
		jd, err := ToJulian(d.y, d.m, d.day)
		if err != nil {
			t.Fatalf("ToJulian(%d, %d, %d) error: %v", d.y, d.m, d.day, err)
		}
		if jd <= prev {
			t.Errorf("ToJulian(%d, %d, %d) = %v, not greater than previous %v", d.y, d.m, d.day, jd, prev)
		}
		prev = jd
	}
}

func TestDaysInMonth_PanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("DaysInMonth(2024, 13) expected panic")
		}
	}()
	DaysInMonth(2024, 13)
}
