package astro

import (
	"math"
	"testing"
)

func TestSolarLongitude_Normalized(t *testing.T) {
	for jd := 1000000.0; jd < 3000000.0; jd += 37777.7 {
		got := SolarLongitude(jd)
		if got < 0 || got >= 360 {
			t.Fatalf("SolarLongitude(%v) = %v, want [0, 360)", jd, got)
		}
	}
}

func TestLunarLongitude_Normalized(t *testing.T) {
	for jd := 1000000.0; jd < 3000000.0; jd += 37777.7 {
		got := LunarLongitude(jd)
		if got < 0 || got >= 360 {
			t.Fatalf("LunarLongitude(%v) = %v, want [0, 360)", jd, got)
		}
	}
}

func TestSolarLongitude_MarchEquinox(t *testing.T) {
	// The March 2024 equinox fell on 2024-03-20 at about 03:06 UT; the
	// Sun's apparent longitude crosses zero there.
	jd := 2460389.5 + 3.1/24
	got := SolarLongitude(jd)
	if got > 0.5 && got < 359.5 {
		t.Errorf("SolarLongitude at 2024 March equinox = %v, want within 0.5 deg of 0/360", got)
	}
}

func TestSolarLongitude_AdvancesDailyByAboutOneDegree(t *testing.T) {
	jd, err := ToJulian(2024, 7, 1)
	if err != nil {
		t.Fatalf("ToJulian error: %v", err)
	}
	delta := normalizeDegrees(SolarLongitude(jd+1) - SolarLongitude(jd))
	if delta < 0.9 || delta > 1.1 {
		t.Errorf("daily solar motion = %v deg, want about 1", delta)
	}
}

func TestLunarLongitude_FullMoonElongation(t *testing.T) {
	// Full moon of 2024-04-23 at about 23:49 UT: elongation near 180.
	jd := 2460423.5 + 23.8/24
	got := Elongation(jd)
	if math.Abs(got-180) > 3 {
		t.Errorf("Elongation at 2024-04-23 full moon = %v, want 180 +/- 3", got)
	}
}

func TestElongation_Normalized(t *testing.T) {
	for jd := 2440000.0; jd < 2470000.0; jd += 333.3 {
		got := Elongation(jd)
		if got < 0 || got >= 360 {
			t.Fatalf("Elongation(%v) = %v, want [0, 360)", jd, got)
		}
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{359.99, 359.99},
		{360, 0},
		{725, 5},
		{-5, 355},
		{-725, 355},
	}
	for _, tt := range tests {
		if got := normalizeDegrees(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("normalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
