package service

import (
	"testing"
	"time"
)

func TestParseISO8601Duration(t *testing.T) {
	duration, ok := ParseISO8601Duration("PT4M13S")
	if !ok || duration != 4*time.Minute+13*time.Second {
		t.Fatalf("PT4M13S parsed as %v, %v", duration, ok)
	}

	duration, ok = ParseISO8601Duration("PT1H2M3S")
	if !ok || duration != time.Hour+2*time.Minute+3*time.Second {
		t.Fatalf("PT1H2M3S parsed as %v, %v", duration, ok)
	}

	duration, ok = ParseISO8601Duration("P1DT2H")
	if !ok || duration != 26*time.Hour {
		t.Fatalf("P1DT2H parsed as %v, %v", duration, ok)
	}

	if _, ok = ParseISO8601Duration("4:13"); ok {
		t.Fatal("non iso duration should fail to parse")
	}
}

func TestIsShort(t *testing.T) {
	if !IsShort("PT45S") {
		t.Error("45s video should be a short")
	}
	if !IsShort("PT1M") {
		t.Error("exactly 60s should still count as a short")
	}
	if IsShort("PT1M1S") {
		t.Error("61s video should not be a short")
	}
	if IsShort("garbage") {
		t.Error("unparseable duration should not be treated as a short")
	}
}
