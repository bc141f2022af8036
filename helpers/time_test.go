package helpers

import (
	"testing"
	"time"
)

func TestHumanizeDuration(t *testing.T) {
	tests := []struct {
		in  time.Duration
		out string
	}{
		{30 * time.Second, "less than a minute"},
		{time.Minute, "1m"},
		{90 * time.Minute, "1h 30m"},
		{25*time.Hour + 5*time.Minute, "1d 1h 5m"},
		{48 * time.Hour, "2d"},
	}

	for _, test := range tests {
		if got := HumanizeDuration(test.in); got != test.out {
			t.Errorf("HumanizeDuration(%v) = %q, expected %q", test.in, got, test.out)
		}
	}
}
