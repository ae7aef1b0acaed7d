package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/ivlev/revealer/internal/config"
	"github.com/ivlev/revealer/internal/deck"
	"github.com/ivlev/revealer/internal/engine"
)

var version = "dev"

func main() {
	// .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[!] Could not read .env: %v", err)
	}

	configPtr := flag.String("config", "", "Path to a YAML config (default: ./revealer.yaml when present)")
	deckPtr := flag.String("deck", "", "Path to a deck (default: the newest deck in the decks directory)")
	decksDirPtr := flag.String("decks-dir", "", "Directory searched for decks")
	durationPtr := flag.Duration("duration", 0, "Default animation duration, e.g. 400ms")
	fpsPtr := flag.Int("fps", 0, "Frames per second for animations and transitions")
	transitionPtr := flag.String("transition", "", "Default transition: fade, slide, jump")
	remotePtr := flag.Bool("remote", false, "Accept commands from the MQTT clicker")
	checkPtr := flag.Bool("check", false, "Print the step order of every slide and exit")
	estimatePtr := flag.Bool("estimate", false, "Print how long the deck takes to play straight through and exit")
	initPtr := flag.Bool("init", false, "Write a sample deck to the decks directory and exit")

	flag.Parse()

	cfg, err := config.Load(*configPtr)
	if err != nil {
		log.Fatalf("[-] Config error: %v", err)
	}
	cfg.BuildVersion = version

	if *decksDirPtr != "" {
		cfg.DecksDir = *decksDirPtr
	}
	if *durationPtr > 0 {
		cfg.Animation.Duration = *durationPtr
	}
	if *fpsPtr > 0 {
		cfg.Animation.FPS = *fpsPtr
	}
	if *transitionPtr != "" {
		cfg.Transition.Default = *transitionPtr
	}
	if *remotePtr {
		cfg.Remote.Enabled = true
	}

	if *initPtr {
		if _, err := engine.WriteSample(cfg.DecksDir, nil); err != nil {
			log.Fatalf("[-] Could not write the sample deck: %v", err)
		}
		return
	}

	deckPath := *deckPtr
	if deckPath == "" {
		deckPath = cfg.Deck
	}
	if deckPath == "" {
		latest, err := deck.FindLatestDeck(cfg.DecksDir)
		if err != nil {
			log.Fatalf("[-] Error: %v. Put a deck in %s/ or run with -init", err, cfg.DecksDir)
		}
		deckPath = latest
		fmt.Printf("[*] Selected deck: %s\n", deckPath)
	}

	d, err := deck.ReadDeck(deckPath)
	if err != nil {
		log.Fatalf("[-] Deck error: %v", err)
	}

	if *checkPtr || *estimatePtr {
		p, err := engine.NewPresentation(&cfg, d, nil)
		if err != nil {
			log.Fatalf("[-] Presentation error: %v", err)
		}
		if *estimatePtr {
			durations, total := p.Estimate()
			for i, dur := range durations {
				fmt.Printf("Slide %d: %s\n", i+1, dur.Round(10*time.Millisecond))
			}
			fmt.Printf("Total: %s\n", total.Round(10*time.Millisecond))
		}
		if *checkPtr {
			if problems := p.Describe(os.Stdout); problems > 0 {
				fmt.Printf("[!] %d problem(s) found\n", problems)
				os.Exit(1)
			}
			fmt.Println("[+++] Deck looks good")
		}
		return
	}

	// The terminal belongs to the player from here on.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "revealer ")
		if err != nil {
			log.Fatalf("[-] Could not open log file: %v", err)
		}
		defer f.Close()
	}

	p, err := engine.NewPresentation(&cfg, d, nil)
	if err != nil {
		log.Fatalf("[-] Presentation error: %v", err)
	}
	if err := p.Run(); err != nil {
		log.Fatalf("[-] Player error: %v", err)
	}
}
