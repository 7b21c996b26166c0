package timeutil

import (
	"testing"
	"time"
)

func TestParseFlexibleTime_RFC3339(t *testing.T) {
	got := ParseFlexibleTime("2025-03-01T10:30:00Z")

	want := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseFlexibleTime = %v, want %v", got, want)
	}
}

func TestParseFlexibleTime_DateOnly(t *testing.T) {
	got := ParseFlexibleTime("2025-03-01")

	if got.IsZero() {
		t.Error("ParseFlexibleTime should parse date-only strings")
	}
}

func TestParseFlexibleTime_Unparseable(t *testing.T) {
	got := ParseFlexibleTime("not a date")

	if !got.IsZero() {
		t.Errorf("ParseFlexibleTime = %v, want zero time", got)
	}
}

func TestParseFlexibleTime_Empty(t *testing.T) {
	if !ParseFlexibleTime("").IsZero() {
		t.Error("ParseFlexibleTime of empty string should be zero")
	}
}

func TestParseWithDefault_UsesDefaultOnFailure(t *testing.T) {
	fallback := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	got := ParseWithDefault("garbage", fallback)

	if !got.Equal(fallback) {
		t.Errorf("ParseWithDefault = %v, want %v", got, fallback)
	}
}

func TestParseWithNow_UnparseableIsRecent(t *testing.T) {
	before := time.Now()
	got := ParseWithNow("garbage")
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("ParseWithNow = %v, want a current timestamp", got)
	}
}
