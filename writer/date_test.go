package writer

import (
	"testing"
	"time"
)

func TestDateToSerial(t *testing.T) {
	for _, tc := range []struct {
		date   time.Time
		serial float64
	}{
		{time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), 2},
		{time.Date(1900, 1, 1, 12, 0, 0, 0, time.UTC), 2.5},
		{time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), 36526},
		{time.Date(2006, 1, 2, 0, 0, 0, 0, time.UTC), 38719},
		{time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC), 38719.62784},
	} {
		if got := dateToSerial(tc.date); got != tc.serial {
			t.Errorf("dateToSerial(%s) == %v, expected: %v", tc.date, got, tc.serial)
		}
	}
}

func TestDateSerialStability(t *testing.T) {
	date := time.Date(2019, 2, 11, 11, 15, 5, 0, time.UTC)
	first := dateToSerial(date)
	for i := 0; i < 10; i++ {
		if got := dateToSerial(date); got != first {
			t.Fatalf("Serial drifted on repeat conversion: %v != %v", got, first)
		}
	}
}

func TestFormatSerial(t *testing.T) {
	if expected, got := "38719", formatSerial(38719); got != expected {
		t.Errorf("formatSerial == %q, expected: %q", got, expected)
	}
	if expected, got := "38719.62784", formatSerial(38719.62784); got != expected {
		t.Errorf("formatSerial == %q, expected: %q", got, expected)
	}
}
