// Package repeat counts how many times each slide has played its sequence.
package repeat

import (
	"strconv"
	"strings"
)

// Counter holds the configured and current repeat of every slide.
type Counter struct {
	max     []int
	current []int
}

// New creates a counter from the configured repeat of each slide.
// Values below one are treated as one.
func New(limits []int) *Counter {
	c := &Counter{
		max:     make([]int, len(limits)),
		current: make([]int, len(limits)),
	}
	for i, m := range limits {
		if m < 1 {
			m = 1
		}
		c.max[i] = m
		c.current[i] = 1
	}
	return c
}

// ParseMax reads a slide's repeats attribute. Missing or invalid values mean one.
func ParseMax(attr string) int {
	n, err := strconv.Atoi(strings.TrimSpace(attr))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func (c *Counter) valid(slide int) bool {
	return slide >= 0 && slide < len(c.max)
}

// Max returns the configured repeat of slide.
func (c *Counter) Max(slide int) int {
	if !c.valid(slide) {
		return 1
	}
	return c.max[slide]
}

// Current returns the repeat slide is playing, starting at one.
func (c *Counter) Current(slide int) int {
	if !c.valid(slide) {
		return 1
	}
	return c.current[slide]
}

// Set forces the current repeat of slide, clamped to its configured range.
func (c *Counter) Set(slide, n int) {
	if !c.valid(slide) {
		return
	}
	if n < 1 {
		n = 1
	}
	if n > c.max[slide] {
		n = c.max[slide]
	}
	c.current[slide] = n
}

// Reset puts slide back on its first repeat.
func (c *Counter) Reset(slide int) {
	c.Set(slide, 1)
}

// ResetAll puts every slide back on its first repeat.
func (c *Counter) ResetAll() {
	for i := range c.current {
		c.current[i] = 1
	}
}

// Advance is called when slide's sequence runs out going forward.
// It returns true when another repeat starts.
func (c *Counter) Advance(slide int) bool {
	if !c.valid(slide) || c.current[slide] >= c.max[slide] {
		return false
	}
	c.current[slide]++
	return true
}

// Regress is called when slide's sequence runs out going backward.
// It returns true when the previous repeat is resumed.
func (c *Counter) Regress(slide int) bool {
	if !c.valid(slide) || c.current[slide] <= 1 {
		return false
	}
	c.current[slide]--
	return true
}
