package service

import (
	"regexp"
	"strconv"
	"time"
)

var iso8601DurationRegexp = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// ParseISO8601Duration parses the youtube contentDetails.duration format,
// e.g. "PT4M13S". Returns 0 and false on anything it doesn't understand.
func ParseISO8601Duration(raw string) (time.Duration, bool) {
	match := iso8601DurationRegexp.FindStringSubmatch(raw)
	if match == nil {
		return 0, false
	}

	var total time.Duration
	units := []time.Duration{24 * time.Hour, time.Hour, time.Minute, time.Second}

	for i, unit := range units {
		if match[i+1] == "" {
			continue
		}
		value, err := strconv.Atoi(match[i+1])
		if err != nil {
			return 0, false
		}
		total += time.Duration(value) * unit
	}

	return total, true
}

// IsShort reports whether a video duration marks it as a short,
// sixty seconds or less
func IsShort(rawDuration string) bool {
	duration, ok := ParseISO8601Duration(rawDuration)
	if !ok || duration == 0 {
		return false
	}

	return duration <= 60*time.Second
}
