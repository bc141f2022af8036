package helpers

import (
	"strings"
	"testing"
)

func TestPagify(t *testing.T) {
	pages := Pagify("hello", "\n")
	if len(pages) != 1 || pages[0] != "hello" {
		t.Errorf("short text should stay one page, got %#v", pages)
	}

	long := strings.Repeat("a", 1000) + "\n" + strings.Repeat("b", 1000) + "\n" + strings.Repeat("c", 1000)
	pages = Pagify(long, "\n")
	if len(pages) < 2 {
		t.Errorf("expected long text to be split, got %d pages", len(pages))
	}
	for _, page := range pages {
		if len(page) > 2000 {
			t.Errorf("page exceeds message limit: %d chars", len(page))
		}
	}

	unbroken := strings.Repeat("x", 5000)
	pages = Pagify(unbroken, "\n")
	if len(pages) != 3 {
		t.Errorf("expected unbroken text to hard-split into 3 pages, got %d", len(pages))
	}
}

func TestGetDiscordColorFromHex(t *testing.T) {
	if got := GetDiscordColorFromHex("#FF0000"); got != 0xFF0000 {
		t.Errorf("expected red, got %#x", got)
	}
	if got := GetDiscordColorFromHex("00ff00"); got != 0x00FF00 {
		t.Errorf("expected green, got %#x", got)
	}
	if got := GetDiscordColorFromHex("not a color"); got != 0x0FADED {
		t.Errorf("expected fallback color, got %#x", got)
	}
}
