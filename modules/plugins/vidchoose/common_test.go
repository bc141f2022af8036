package vidchoose

import (
	"testing"

	"github.com/Vect0r2/manuelbot/models"
)

func TestFindCatalogIndex(t *testing.T) {
	h := &Handler{}

	settings := models.VidChooseSettings{
		Channels: []models.VidChannelEntry{
			{ChannelID: "UCuAXFkgsw1L7xaCfnd5JJOw", Name: "Some Creator"},
			{ChannelID: "single_dQw4w9WgXcQ", Name: "One Video", IsSingle: true},
		},
	}

	if got := h.findCatalogIndex(settings, "UCuAXFkgsw1L7xaCfnd5JJOw"); got != 0 {
		t.Errorf("raw catalog key lookup failed, got %d", got)
	}

	if got := h.findCatalogIndex(settings, "https://www.youtube.com/channel/UCuAXFkgsw1L7xaCfnd5JJOw"); got != 0 {
		t.Errorf("channel url lookup failed, got %d", got)
	}

	if got := h.findCatalogIndex(settings, "https://youtu.be/dQw4w9WgXcQ"); got != 1 {
		t.Errorf("video url lookup should find the single-video entry, got %d", got)
	}

	if got := h.findCatalogIndex(settings, "single_dQw4w9WgXcQ"); got != 1 {
		t.Errorf("raw single key lookup failed, got %d", got)
	}

	if got := h.findCatalogIndex(settings, "some creator"); got != 0 {
		t.Errorf("case-insensitive name lookup failed, got %d", got)
	}

	if got := h.findCatalogIndex(settings, "nothing matches this"); got != -1 {
		t.Errorf("unknown identifier should return -1, got %d", got)
	}
}

func TestRemoveCatalogEntry(t *testing.T) {
	h := &Handler{}

	settings := models.VidChooseSettings{
		Channels: []models.VidChannelEntry{
			{ChannelID: "UCuAXFkgsw1L7xaCfnd5JJOw", Name: ""},
			{ChannelID: "single_dQw4w9WgXcQ", Name: "One Video", IsSingle: true},
		},
		Videos: map[string]models.VidVideoEntry{
			"dQw4w9WgXcQ": {ChannelID: "single_dQw4w9WgXcQ", IsSingle: true},
		},
	}

	// an entry with an empty cached name still counts as removed
	result, name, found := h.removeCatalogEntry(settings, "UCuAXFkgsw1L7xaCfnd5JJOw")
	if !found {
		t.Fatal("removal of an empty-named entry must report found")
	}
	if name != "" {
		t.Fatalf("expected the stored empty name back, got %q", name)
	}
	if len(result.Channels) != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", len(result.Channels))
	}

	result, name, found = h.removeCatalogEntry(result, "single_dQw4w9WgXcQ")
	if !found || name != "One Video" {
		t.Fatalf("expected to remove One Video, got found=%v name=%q", found, name)
	}
	if len(result.Videos) != 0 {
		t.Fatalf("dependent video entries must be dropped, %d left", len(result.Videos))
	}

	if _, _, found = h.removeCatalogEntry(result, "ghost"); found {
		t.Fatal("removing an unknown identifier must report not found")
	}
}
