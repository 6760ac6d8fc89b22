package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHistoryRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	entries := []string{":list pub", ":export sec", ":refresh keys"}
	if err := SaveHistory(entries); err != nil {
		t.Fatalf("SaveHistory: %v", err)
	}

	loaded, err := loadHistory()
	if err != nil {
		t.Fatalf("loadHistory: %v", err)
	}
	if len(loaded) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(loaded))
	}
	for i, entry := range entries {
		if loaded[i] != entry {
			t.Errorf("entry %d: got %q, want %q", i, loaded[i], entry)
		}
	}
}

func TestHistoryMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	loaded, err := loadHistory()
	if err != nil {
		t.Fatalf("loadHistory: %v", err)
	}
	if loaded != nil {
		t.Errorf("expected no entries, got %v", loaded)
	}
}

func TestHistoryLimit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	entries := make([]string, historyLimit+50)
	for i := range entries {
		entries[i] = ":get mode"
	}
	entries[len(entries)-1] = ":quit"
	if err := SaveHistory(entries); err != nil {
		t.Fatalf("SaveHistory: %v", err)
	}

	loaded, err := loadHistory()
	if err != nil {
		t.Fatalf("loadHistory: %v", err)
	}
	if len(loaded) != historyLimit {
		t.Errorf("expected %d entries, got %d", historyLimit, len(loaded))
	}
	if loaded[len(loaded)-1] != ":quit" {
		t.Error("expected the newest entry to survive the cap")
	}
}

func TestHistorySkipsBlankLines(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, ".config", "keywarden", "history")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatal(err)
	}
	content := strings.Join([]string{":list pub", "", "  ", ":quit", ""}, "\n")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	loaded, err := loadHistory()
	if err != nil {
		t.Fatalf("loadHistory: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(loaded))
	}
}
