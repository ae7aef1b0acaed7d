// Package ledger tracks the slides actually visited so that going back
// retraces the path taken, not the slide numbering.
package ledger

// Ledger is a stack of visited slide indices.
type Ledger struct {
	count   int
	current int
	visited []int
}

// New creates a ledger for count slides, positioned on the first one.
func New(count int) *Ledger {
	l := &Ledger{count: count}
	l.Reset()
	return l
}

// Reset returns to the first slide and forgets the visited path.
func (l *Ledger) Reset() {
	l.current = 0
	l.visited = []int{0}
}

// Count returns the number of slides.
func (l *Ledger) Count() int { return l.count }

// Current returns the index of the displayed slide.
func (l *Ledger) Current() int { return l.current }

// IsFirst reports whether the ledger is on the first slide.
func (l *Ledger) IsFirst() bool { return l.current == 0 }

// IsLast reports whether the ledger is on the last slide.
func (l *Ledger) IsLast() bool { return l.current >= l.count-1 }

// CanGoBack reports whether Previous would move.
func (l *Ledger) CanGoBack() bool { return len(l.visited) > 1 }

// Visited returns the visited path, oldest first.
func (l *Ledger) Visited() []int {
	out := make([]int, len(l.visited))
	copy(out, l.visited)
	return out
}

// Next moves to the following slide.
func (l *Ledger) Next() bool {
	if l.IsLast() {
		return false
	}
	l.current++
	l.push(l.current)
	return true
}

// Jump moves to an arbitrary slide, recording it on the path.
func (l *Ledger) Jump(index int) bool {
	if index < 0 || index >= l.count || index == l.current {
		return false
	}
	l.current = index
	l.push(index)
	return true
}

// Previous returns to the slide visited before the current one.
func (l *Ledger) Previous() bool {
	if !l.CanGoBack() {
		return false
	}
	if l.visited[len(l.visited)-1] == l.current {
		l.visited = l.visited[:len(l.visited)-1]
	}
	l.current = l.visited[len(l.visited)-1]
	return true
}

func (l *Ledger) push(index int) {
	if n := len(l.visited); n > 0 && l.visited[n-1] == index {
		return
	}
	l.visited = append(l.visited, index)
}
