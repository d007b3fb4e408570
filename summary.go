package main

type SessionSummary struct {
	SessionID string   `json:"session_id" jsonschema:"Exploration session ID"`
	Room      string   `json:"room" jsonschema:"Name of the room currently occupied"`
	RoomClue  string   `json:"room_clue,omitempty" jsonschema:"Clue found in the current room, if any"`
	Active    bool     `json:"active" jsonschema:"Whether the exploration is still running"`
	Outcome   string   `json:"outcome,omitempty" jsonschema:"How the exploration ended: dead_end or quit"`
	Steps     int      `json:"steps" jsonschema:"Number of moves between rooms"`
	Clues     []string `json:"clues" jsonschema:"Clues collected so far in alphabetical order"`
	Options   []string `json:"options" jsonschema:"Command keys accepted in the current room"`
}

func SummarizeSession(s *ExplorationState) SessionSummary {
	summary := SessionSummary{
		SessionID: s.SessionID,
		Active:    s.IsPlaying,
		Outcome:   s.Outcome.String(),
		Steps:     s.Steps,
		Clues:     listClues(s.Clues),
		Options:   availableKeys(s),
	}
	if s.CurrentRoom != nil {
		summary.Room = s.CurrentRoom.Name
		summary.RoomClue = s.CurrentRoom.Clue
	}
	if summary.Clues == nil {
		summary.Clues = []string{}
	}
	if summary.Options == nil {
		summary.Options = []string{}
	}
	return summary
}
