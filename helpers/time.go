package helpers

import (
	"fmt"
	"strings"
	"time"
)

// HumanizeDuration formats a duration as "2d 3h 4m" for countdowns
// and status output. Durations under a minute come back as "less than a minute".
func HumanizeDuration(d time.Duration) string {
	if d < time.Minute {
		return "less than a minute"
	}

	var parts []string

	days := int64(d.Hours()) / 24
	hours := int64(d.Hours()) % 24
	minutes := int64(d.Minutes()) % 60

	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}

	return strings.Join(parts, " ")
}
