package engine

import (
	"fmt"
	"log"
	"os"

	"github.com/ivlev/revealer/internal/deck"
)

// SampleDeck returns a small deck exercising every built-in effect and
// transition.
func SampleDeck() *deck.Deck {
	return &deck.Deck{
		Version: "1.0",
		Title:   "Sample deck",
		Slides: []deck.Slide{
			{
				ID:         "intro",
				Transition: "fade",
				Elements: []deck.Element{
					{ID: "title", Text: "Step-by-step reveals", Animation: "appear", Order: "1"},
					{ID: "subtitle", Text: "press → to continue", Animation: "appear", Order: "2"},
				},
			},
			{
				ID:         "sequence",
				Transition: "slide",
				Repeats:    2,
				Elements: []deck.Element{
					{ID: "old", Text: "the old way"},
					{ID: "new", Text: "the new way"},
					{ID: "spin", Text: "and a barrel roll"},
				},
				Sequence: []deck.Step{
					{Target: "old", Animation: "disappear"},
					{Target: "new", Animation: "appear"},
					{Target: "spin", Animation: "barrel-roll"},
				},
			},
			{
				ID:         "outro",
				Transition: "jump",
				Elements: []deck.Element{
					{ID: "thanks", Text: "Thanks!", Animation: "appear rotate", Order: "1,2"},
				},
			},
		},
	}
}

// WriteSample writes SampleDeck to a new timestamped file in dir.
func WriteSample(dir string, logger *log.Logger) (string, error) {
	if logger == nil {
		logger = log.Default()
	}
	logger.Println("[*] Writing a sample deck...")

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	path := deck.GenerateDeckPath(dir)
	if err := deck.WriteDeck(SampleDeck(), path); err != nil {
		return "", err
	}

	logger.Printf("[+++] Sample deck saved: %s", path)
	return path, nil
}
