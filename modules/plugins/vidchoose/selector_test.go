package vidchoose

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Vect0r2/manuelbot/models"
)

func testCatalog() []models.VidChannelEntry {
	return []models.VidChannelEntry{
		{ChannelID: "a", Name: "A", Weight: 1, VideoIDs: []string{"v1", "v2"}},
		{ChannelID: "b", Name: "B", Weight: 2, VideoIDs: []string{"v3"}},
		{ChannelID: "c", Name: "C", Weight: 3, VideoIDs: []string{"v4", "v5"}},
	}
}

func TestPickChannelFrequencies(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	catalog := testCatalog()

	const trials = 10000
	counts := make([]int, len(catalog))
	for i := 0; i < trials; i++ {
		index := pickChannel(catalog, rng)
		if index < 0 {
			t.Fatal("draw returned no channel on a qualifying catalog")
		}
		counts[index]++
	}

	// weights 1:2:3, allow generous sampling error
	expected := []float64{trials * 1.0 / 6, trials * 2.0 / 6, trials * 3.0 / 6}
	for i := range counts {
		if math.Abs(float64(counts[i])-expected[i]) > trials*0.03 {
			t.Errorf("channel %d drawn %d times, expected about %.0f", i, counts[i], expected[i])
		}
	}
}

func TestPickChannelSingleQualifier(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	catalog := []models.VidChannelEntry{
		{ChannelID: "a", Weight: 0, VideoIDs: []string{"v1"}},
		{ChannelID: "b", Weight: 5, VideoIDs: []string{"v2"}},
		{ChannelID: "c", Weight: 3, VideoIDs: nil},
	}

	for i := 0; i < 100; i++ {
		if index := pickChannel(catalog, rng); index != 1 {
			t.Fatalf("only channel b qualifies but draw returned index %d", index)
		}
	}
}

func TestPickChannelNoQualifiers(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	catalog := []models.VidChannelEntry{
		{ChannelID: "a", Weight: 0, VideoIDs: []string{"v1"}},
		{ChannelID: "b", Weight: 2, VideoIDs: nil},
	}

	if index := pickChannel(catalog, rng); index != -1 {
		t.Fatalf("expected no pick, got index %d", index)
	}

	if index := pickChannel(nil, rng); index != -1 {
		t.Fatalf("expected no pick on empty catalog, got index %d", index)
	}
}

func TestPickVideoAvoidsRecent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	videos := []string{"v1", "v2", "v3"}

	for i := 0; i < 100; i++ {
		picked := pickVideo(videos, []string{"v1", "v2"}, rng)
		if picked != "v3" {
			t.Fatalf("expected the only fresh video v3, got %q", picked)
		}
	}
}

func TestPickVideoFallsBackWhenAllRecent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	videos := []string{"v1", "v2"}

	picked := pickVideo(videos, []string{"v1", "v2"}, rng)
	if picked != "v1" && picked != "v2" {
		t.Fatalf("expected fallback to the unfiltered list, got %q", picked)
	}

	if picked := pickVideo(nil, nil, rng); picked != "" {
		t.Fatalf("empty video list should pick nothing, got %q", picked)
	}
}

func TestRecordHistory(t *testing.T) {
	buffer := []string{}
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		buffer = recordHistory(buffer, id, 3)
	}

	if len(buffer) != 3 {
		t.Fatalf("buffer should hold 3 entries, has %d", len(buffer))
	}
	if buffer[0] != "e" || buffer[1] != "d" || buffer[2] != "c" {
		t.Fatalf("expected [e d c], got %v", buffer)
	}
}

func TestRecordHistoryKeepsDuplicates(t *testing.T) {
	buffer := recordHistory([]string{"a"}, "a", 5)
	if len(buffer) != 2 || buffer[0] != "a" || buffer[1] != "a" {
		t.Fatalf("duplicates stay in the buffer, got %v", buffer)
	}
}

func TestEndToEndDrawBias(t *testing.T) {
	catalog := []models.VidChannelEntry{
		{ChannelID: "a", Name: "A", Weight: 1, VideoIDs: []string{"v1", "v2"}},
		{ChannelID: "b", Name: "B", Weight: 3, VideoIDs: []string{"v3"}},
	}

	countB := 0
	const trials = 4000
	for seed := int64(0); seed < trials; seed++ {
		rng := rand.New(rand.NewSource(seed))
		if index := pickChannel(catalog, rng); index == 1 {
			countB++
		}
	}

	ratio := float64(countB) / float64(trials)
	if ratio < 0.70 || ratio > 0.80 {
		t.Errorf("channel b should win about 75%% of draws, got %.2f", ratio)
	}
}
