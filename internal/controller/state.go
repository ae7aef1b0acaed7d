package controller

// State is the controller's concurrency gate.
type State int

const (
	// Idle accepts navigation requests.
	Idle State = iota
	// Animating drops navigation requests.
	Animating
)

// String returns the string representation of State
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Animating:
		return "animating"
	default:
		return "unknown"
	}
}

// Outcome describes what a navigation request did.
type Outcome int

const (
	// None means the request hit a boundary and nothing changed.
	None Outcome = iota
	// Busy means the request was dropped because another one was in flight.
	Busy
	// Stepped means one animation step was played.
	Stepped
	// Repeated means the slide started its next repeat.
	Repeated
	// Rewound means the slide went back to the end of its previous repeat.
	Rewound
	// Advanced means a later slide is now displayed.
	Advanced
	// Retreated means the previously visited slide is displayed again.
	Retreated
)

// String returns the string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case None:
		return "none"
	case Busy:
		return "busy"
	case Stepped:
		return "stepped"
	case Repeated:
		return "repeated"
	case Rewound:
		return "rewound"
	case Advanced:
		return "advanced"
	case Retreated:
		return "retreated"
	default:
		return "unknown"
	}
}

// Moved reports whether the request changed anything.
func (o Outcome) Moved() bool {
	return o != None && o != Busy
}

// Position summarises where the presentation is.
type Position struct {
	Slide   int
	Slides  int
	Step    int
	Steps   int
	Repeat  int
	Repeats int
	State   State
}
