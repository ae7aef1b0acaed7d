package deck

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteDeck writes a deck to a YAML file
func WriteDeck(d *Deck, path string) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadDeck reads, validates and compiles a deck from a YAML file
func ReadDeck(path string) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Decode reads a deck from r, then validates and compiles it
func Decode(r io.Reader) (*Deck, error) {
	var d Deck
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if err == io.EOF {
			return nil, ErrNoSlides
		}
		return nil, fmt.Errorf("decode deck: %w", err)
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := d.Compile(); err != nil {
		return nil, err
	}
	return &d, nil
}
