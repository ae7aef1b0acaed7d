package engine

import (
	"time"

	"github.com/ivlev/revealer/internal/descriptor"
	"github.com/ivlev/revealer/internal/repeat"
	"github.com/ivlev/revealer/internal/sequence"
)

// Estimate returns how long each slide takes to play straight through,
// including the transition into it, and the total.
func (p *Presentation) Estimate() ([]time.Duration, time.Duration) {
	count := p.Stage.SlideCount()
	durations := make([]time.Duration, count)
	var total time.Duration

	for i := 0; i < count; i++ {
		var d time.Duration
		for _, step := range sequence.New(p.Stage.Elements(i)).Steps() {
			e, _ := p.Catalog.Lookup(step.Animation)
			if e.Duration > 0 {
				d += e.Duration
			} else {
				d += p.Animator.Duration
			}
		}
		d *= time.Duration(repeat.ParseMax(p.Stage.SlideAttr(i, descriptor.AttrRepeats)))

		if i > 0 {
			d += p.Transitioner.Resolve(i-1, i, true).Duration
		}
		durations[i] = d
		total += d
	}
	return durations, total
}
