package vidchoose

import (
	"math/rand"

	"github.com/Vect0r2/manuelbot/models"
)

// pickChannel draws a channel from the catalog proportionally to its weight.
// Only entries with a positive weight and at least one stored video qualify.
// Returns the catalog index of the drawn entry, -1 when nothing qualifies.
func pickChannel(catalog []models.VidChannelEntry, rng *rand.Rand) int {
	qualifying := make([]int, 0, len(catalog))
	total := float64(0)

	for i, entry := range catalog {
		if entry.Weight > 0 && len(entry.VideoIDs) > 0 {
			qualifying = append(qualifying, i)
			total += entry.Weight
		}
	}

	if len(qualifying) < 1 {
		return -1
	}

	// guard against float underflow, fall back to a uniform draw
	if total <= 0 {
		return qualifying[rng.Intn(len(qualifying))]
	}

	r := rng.Float64() * total

	sum := float64(0)
	for _, i := range qualifying {
		sum += catalog[i].Weight
		if sum >= r {
			return i
		}
	}

	// r landed on the upper bound, take the last qualifying entry
	return qualifying[len(qualifying)-1]
}

// pickVideo draws uniformly from the channel's videos, preferring ones not
// in the recency buffer. When every video is recent the filter is dropped,
// repetition avoidance is best-effort only.
func pickVideo(videoIDs []string, recent []string, rng *rand.Rand) string {
	if len(videoIDs) < 1 {
		return ""
	}

	fresh := make([]string, 0, len(videoIDs))
	for _, id := range videoIDs {
		if !contains(recent, id) {
			fresh = append(fresh, id)
		}
	}

	if len(fresh) < 1 {
		fresh = videoIDs
	}

	return fresh[rng.Intn(len(fresh))]
}

// recordHistory prepends $id and truncates the buffer to $max entries,
// most-recent-first
func recordHistory(buffer []string, id string, max int) []string {
	result := make([]string, 0, len(buffer)+1)
	result = append(result, id)
	result = append(result, buffer...)

	if max > 0 && len(result) > max {
		result = result[:max]
	}

	return result
}

func contains(list []string, item string) bool {
	for _, entry := range list {
		if entry == item {
			return true
		}
	}
	return false
}
