package deck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGenerateDeckPath(t *testing.T) {
	path := GenerateDeckPath("decks")

	if !strings.HasPrefix(path, filepath.Join("decks", "deck_")) {
		t.Errorf("Path should be a deck file in decks: %s", path)
	}
	if filepath.Ext(path) != ".yaml" {
		t.Errorf("Path should be a yaml file: %s", path)
	}
}

func TestFindLatestDeck(t *testing.T) {
	dir := t.TempDir()

	files := []string{
		filepath.Join(dir, "deck_2026-02-12_10-00-00.yaml"),
		filepath.Join(dir, "deck_2026-02-13_01-00-00.yml"),
		filepath.Join(dir, "deck_2026-02-11_15-30-00.yaml"),
	}
	for i, f := range files {
		if err := os.WriteFile(f, []byte("slides: []"), 0644); err != nil {
			t.Fatal(err)
		}
		modTime := time.Now().Add(time.Duration(i) * time.Hour)
		if err := os.Chtimes(f, modTime, modTime); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	latest, err := FindLatestDeck(dir)
	if err != nil {
		t.Fatalf("FindLatestDeck failed: %v", err)
	}
	if latest != files[len(files)-1] {
		t.Errorf("Expected latest to be %s, got %s", files[len(files)-1], latest)
	}
}

func TestFindLatestDeckEmpty(t *testing.T) {
	if _, err := FindLatestDeck(t.TempDir()); err == nil {
		t.Error("Expected an error for a directory without decks")
	}
	if _, err := FindLatestDeck(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected an error for a missing directory")
	}
}
