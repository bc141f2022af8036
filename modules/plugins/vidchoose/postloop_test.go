package vidchoose

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/Vect0r2/manuelbot/models"
)

// The background loop and the force command draw from the same generator,
// so draws from multiple goroutines must stay valid.
func TestDrawConcurrent(t *testing.T) {
	p := &postLoop{rng: rand.New(rand.NewSource(42))}

	settings := models.VidChooseSettings{
		Channels: []models.VidChannelEntry{
			{ChannelID: "a", Name: "A", Weight: 1, VideoIDs: []string{"v1", "v2"}},
			{ChannelID: "b", Name: "B", Weight: 2, VideoIDs: []string{"v3"}},
		},
	}

	var wg sync.WaitGroup
	errs := make(chan string, 8)

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				index, videoID := p.draw(settings)
				if index < 0 || index >= len(settings.Channels) {
					errs <- "draw returned an out-of-range index"
					return
				}
				if videoID == "" {
					errs <- "draw returned no video for a qualifying catalog"
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Fatal(msg)
	}
}

func TestDrawEmptyCatalog(t *testing.T) {
	p := &postLoop{rng: rand.New(rand.NewSource(1))}

	index, videoID := p.draw(models.VidChooseSettings{})
	if index != -1 || videoID != "" {
		t.Fatalf("empty catalog should yield no draw, got %d %q", index, videoID)
	}
}
