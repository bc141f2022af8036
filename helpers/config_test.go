package helpers

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBotAdmins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte(`{"discord": {"prefix": "_", "admins": ["111", "222"]}}`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	LoadConfig(path)
	LoadBotAdmins()

	if !IsBotAdmin("111") || !IsBotAdmin("222") {
		t.Fatal("configured admins should be recognized")
	}
	if IsBotAdmin("333") {
		t.Fatal("unknown id must not be a bot admin")
	}

	if got := ConfigString("discord.prefix"); got != "_" {
		t.Fatalf("expected prefix _, got %q", got)
	}
	if got := ConfigString("discord.missing"); got != "" {
		t.Fatalf("unset path should read as empty, got %q", got)
	}
}
