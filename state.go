package main

import (
	"bufio"
	"io"

	"go.uber.org/zap"
)

// ExplorationState is one exploration session: the cursor over the room
// tree and the catalog of clues found so far.
type ExplorationState struct {
	SessionID   string
	Root        *Room
	CurrentRoom *Room
	Clues       *Clue

	IsPlaying  bool
	IsHeadless bool
	Outcome    Outcome
	Steps      int

	In  io.Reader
	Out io.Writer
	Log *zap.Logger

	lineReader *bufio.Reader
	styles     styles
}
