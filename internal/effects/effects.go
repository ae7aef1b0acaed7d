package effects

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/agnivade/levenshtein"
)

// Kind tells what an effect does to an element's visibility.
type Kind int

const (
	// Show reveals the element going forward.
	Show Kind = iota
	// Hide removes the element going forward.
	Hide
	// Maintain keeps the element visible in both directions.
	Maintain
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case Show:
		return "show"
	case Hide:
		return "hide"
	case Maintain:
		return "maintain"
	default:
		return "unknown"
	}
}

// Effect describes one element animation.
type Effect struct {
	Name         string
	Kind         Kind
	Class        string
	ReverseClass string
	Duration     time.Duration // 0 means the player's default
	Turns        float64       // full rotations, Maintain effects only
}

// ClassFor returns the marker class applied while the effect plays.
func (e Effect) ClassFor(forward bool) string {
	if !forward && e.ReverseClass != "" {
		return e.ReverseClass
	}
	return e.Class
}

// Baseline reports whether an element whose first effect is of kind k is
// visible before the sequence touches it.
func Baseline(k Kind) bool {
	return k != Show
}

// StartState is the visibility an element has when an effect of kind k starts.
func StartState(k Kind, forward bool) bool {
	return EndState(k, !forward)
}

// EndState is the visibility an element has once an effect of kind k ends.
func EndState(k Kind, forward bool) bool {
	switch k {
	case Show:
		return forward
	case Hide:
		return !forward
	default:
		return true
	}
}

// DefaultEffect is used when a catalog is created with an unknown default.
const DefaultEffect = "appear"

func builtins() []Effect {
	return []Effect{
		{Name: "appear", Kind: Show, Class: "appear", ReverseClass: "disappear"},
		{Name: "disappear", Kind: Hide, Class: "disappear", ReverseClass: "appear"},
		{Name: "rotate", Kind: Maintain, Class: "rotate", ReverseClass: "rotate-reverse", Turns: 1},
		{Name: "barrel-roll", Kind: Maintain, Class: "barrel-roll", ReverseClass: "barrel-roll-reverse", Turns: 2},
	}
}

// Catalog maps animation names to effects.
type Catalog struct {
	mu       sync.RWMutex
	effects  map[string]Effect
	fallback string
}

// NewCatalog creates a catalog holding the built-in effects. Unknown
// animation names resolve to defaultName.
func NewCatalog(defaultName string) *Catalog {
	c := &Catalog{effects: make(map[string]Effect)}
	for _, e := range builtins() {
		c.effects[e.Name] = e
	}
	if _, ok := c.effects[defaultName]; !ok {
		defaultName = DefaultEffect
	}
	c.fallback = defaultName
	return c
}

// Register adds or replaces an effect.
func (c *Catalog) Register(e Effect) error {
	if e.Name == "" {
		return fmt.Errorf("effect without a name")
	}
	if e.Class == "" {
		e.Class = e.Name
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.effects[e.Name] = e
	return nil
}

// Lookup returns the effect registered under name. Unknown names return the
// default effect and false.
func (c *Catalog) Lookup(name string) (Effect, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if e, ok := c.effects[name]; ok {
		return e, true
	}
	return c.effects[c.fallback], false
}

// Default returns the effect used for unknown names.
func (c *Catalog) Default() Effect {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.effects[c.fallback]
}

// Names returns the registered effect names, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.effects))
	for name := range c.effects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Suggest returns the registered name closest to name, or "" when nothing is
// close enough to be a likely typo.
func (c *Catalog) Suggest(name string) string {
	best, bestDist := "", -1
	for _, candidate := range c.Names() {
		d := levenshtein.ComputeDistance(name, candidate)
		if bestDist < 0 || d < bestDist {
			best, bestDist = candidate, d
		}
	}
	limit := len(name) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist < 0 || bestDist > limit {
		return ""
	}
	return best
}

// Classes returns every marker class used by the catalog, sorted.
func (c *Catalog) Classes() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for _, e := range c.effects {
		for _, class := range []string{e.Class, e.ReverseClass} {
			if class != "" && !seen[class] {
				seen[class] = true
				out = append(out, class)
			}
		}
	}
	sort.Strings(out)
	return out
}
