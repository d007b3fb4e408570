package main

import (
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewExploration starts a session at root and announces the first room.
// A root without passages ends the session immediately.
func NewExploration(root *Room, in io.Reader, out io.Writer, logger *zap.Logger) *ExplorationState {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &ExplorationState{
		SessionID: uuid.New().String(),
		Root:      root,
		IsPlaying: true,
		In:        in,
		Out:       out,
	}
	s.Log = logger.With(zap.String("session", s.SessionID))
	s.styles = newStyles(outWriter(s))
	s.Log.Debug("exploration started", zap.String("room", root.Name))
	enterRoom(s, root)
	return s
}

func terminate(s *ExplorationState, outcome Outcome) {
	s.IsPlaying = false
	s.Outcome = outcome
	s.Log.Debug("exploration finished",
		zap.Stringer("outcome", outcome),
		zap.Int("steps", s.Steps),
		zap.Int("clues", countClues(s.Clues)),
	)
}
