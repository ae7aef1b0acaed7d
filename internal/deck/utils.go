package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// GenerateDeckPath creates a timestamped deck filename inside dir
func GenerateDeckPath(dir string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("deck_%s.yaml", timestamp))
}

// FindLatestDeck finds the most recently modified deck in dir
func FindLatestDeck(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read decks directory: %w", err)
	}

	type candidate struct {
		path    string
		modTime time.Time
	}
	var decks []candidate
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !(strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		decks = append(decks, candidate{filepath.Join(dir, name), info.ModTime()})
	}

	if len(decks) == 0 {
		return "", fmt.Errorf("no deck files found in %s", dir)
	}

	// Newest first
	sort.Slice(decks, func(i, j int) bool {
		return decks[i].modTime.After(decks[j].modTime)
	})

	return decks[0].path, nil
}
