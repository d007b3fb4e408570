package main

import (
	"strings"

	"go.uber.org/zap"
)

type commandHandler func(s *ExplorationState) bool

type commandEntry struct {
	key     rune
	label   string
	handler commandHandler
	// available reports whether the command is offered in the current room.
	available func(r *Room) bool
}

var commands = []commandEntry{
	{KeyLeft, "Esquerda", cmdGoLeft, func(r *Room) bool { return r.Left != nil }},
	{KeyRight, "Direita", cmdGoRight, func(r *Room) bool { return r.Right != nil }},
	{KeyClues, "Ver pistas", cmdShowClues, nil},
	{KeyQuit, "Sair", cmdQuit, nil},
}

// enterRoom moves the cursor to r, collects its clue and ends the
// exploration when r is a dead end.
func enterRoom(s *ExplorationState, r *Room) {
	s.CurrentRoom = r
	announceRoom(s)
	s.Log.Debug("room entered", zap.String("room", r.Name), zap.Int("steps", s.Steps))

	if r.Clue != "" {
		outPrintf(s, "💡 Você encontrou uma pista: %s!\n", s.styles.Clue.Render(r.Clue))
		if hasClue(s.Clues, r.Clue) {
			s.Log.Debug("clue already cataloged", zap.String("clue", r.Clue))
		} else {
			s.Log.Debug("clue cataloged", zap.String("clue", r.Clue))
		}
		s.Clues = insertClue(s.Clues, r.Clue)
	}

	if isDeadEnd(r) {
		outPrintln(s, "🚪 Fim da exploração! Você chegou a um beco sem saída.")
		terminate(s, OutcomeDeadEnd)
	}
}

func announceRoom(s *ExplorationState) {
	outPrintln(s)
	outPrintf(s, "📍 Você está em: %s\n", s.CurrentRoom.Name)
}

// describeRoom repeats where the cursor is without entering the room again,
// so no clue is collected and no step is counted.
func describeRoom(s *ExplorationState) {
	announceRoom(s)
	if s.CurrentRoom.Clue != "" {
		outPrintf(s, "💡 Pista desta sala: %s\n", s.styles.Clue.Render(s.CurrentRoom.Clue))
	}
	if !s.IsPlaying {
		outPrintln(s, "A exploração já terminou.")
	}
}

// availableKeys lists the command keys valid in the current room.
func availableKeys(s *ExplorationState) []string {
	if !s.IsPlaying {
		return nil
	}
	var keys []string
	for _, c := range commands {
		if c.available == nil || c.available(s.CurrentRoom) {
			keys = append(keys, string(c.key))
		}
	}
	return keys
}

func menuLine(r *Room) string {
	var moves, always []string
	for _, c := range commands {
		item := "(" + string(c.key) + ") " + c.label
		switch {
		case c.available == nil:
			always = append(always, item)
		case c.available(r):
			moves = append(moves, item)
		}
	}
	line := strings.Join(moves, " ")
	if line != "" {
		line += " "
	}
	return line + "| " + strings.Join(always, " | ")
}

func showMenu(s *ExplorationState) {
	outPrintln(s, "Escolha um caminho:")
	outPrintln(s, menuLine(s.CurrentRoom))
}

// processCommand applies one line of operator input. Input that names no
// available command is rejected and leaves the session untouched.
func processCommand(s *ExplorationState, input string) {
	if !s.IsPlaying {
		outPrintln(s, "A exploração já terminou.")
		return
	}

	handled := false
	if key, ok := parseCommand(input); ok {
		for _, c := range commands {
			if c.key == key {
				handled = c.handler(s)
				break
			}
		}
	}
	if !handled {
		outPrintln(s, s.styles.Error.Render("❌ Opção inválida!"))
		s.Log.Debug("invalid input", zap.String("input", input), zap.String("room", s.CurrentRoom.Name))
	}
}

func cmdGoLeft(s *ExplorationState) bool {
	return moveTo(s, s.CurrentRoom.Left)
}

func cmdGoRight(s *ExplorationState) bool {
	return moveTo(s, s.CurrentRoom.Right)
}

func moveTo(s *ExplorationState, next *Room) bool {
	if next == nil {
		return false
	}
	s.Steps++
	enterRoom(s, next)
	return true
}

func cmdShowClues(s *ExplorationState) bool {
	outPrintln(s)
	outPrintln(s, s.styles.Heading.Render("📜 Pistas coletadas até agora:"))
	printClues(s, s.Clues)
	return true
}

func cmdQuit(s *ExplorationState) bool {
	outPrintln(s, "Exploração encerrada!")
	terminate(s, OutcomeQuit)
	return true
}

func printClues(s *ExplorationState, root *Clue) {
	if root == nil {
		outPrintln(s, "Nenhuma pista encontrada.")
		return
	}
	walkClues(root, func(name string) {
		outPrintf(s, " - %s\n", name)
	})
}

// explore runs the prompt loop until the session ends and hands back the
// catalog root.
func explore(s *ExplorationState) *Clue {
	for s.IsPlaying {
		showMenu(s)
		processCommand(s, readCommand(s, "-> "))
	}
	return s.Clues
}
