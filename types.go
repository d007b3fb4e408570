package main

// Command keys accepted at the exploration prompt.
const (
	KeyLeft  = 'e'
	KeyRight = 'd'
	KeyClues = 'p'
	KeyQuit  = 's'
)

type Room struct {
	Name  string
	Clue  string
	Left  *Room
	Right *Room
}

// Clue is a node of the clue catalog, a binary search tree ordered by Name.
type Clue struct {
	Name  string
	Left  *Clue
	Right *Clue
}

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDeadEnd
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDeadEnd:
		return "dead_end"
	case OutcomeQuit:
		return "quit"
	}
	return ""
}
