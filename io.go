package main

import (
	"bufio"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/term"
)

// readCommand shows prompt and returns the operator's answer. A terminal
// answers with a single keypress; anything else is read a line at a time.
// A closed or failing input answers with the quit key.
func readCommand(s *ExplorationState, prompt string) string {
	outPrint(s, prompt)

	if f, ok := s.In.(*os.File); ok && !s.IsHeadless && term.IsTerminal(int(f.Fd())) {
		if key, ok := readKey(s, f); ok {
			return key
		}
	}

	if s.lineReader == nil {
		s.lineReader = bufio.NewReader(s.In)
	}
	line, err := s.lineReader.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		outPrintln(s)
		return string(KeyQuit)
	}
	return line
}

// readKey reads one keypress in raw mode. It reports false when the
// terminal cannot be switched to raw mode.
func readKey(s *ExplorationState, f *os.File) (string, bool) {
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", false
	}
	defer func() {
		_ = term.Restore(fd, oldState)
		outPrint(s, "\r\n")
	}()

	buf := make([]byte, 4)
	for {
		n, err := f.Read(buf)
		if err != nil || n == 0 {
			return string(KeyQuit), true
		}
		key, echo, ok := classifyKey(buf[:n])
		if !ok {
			continue
		}
		outPrint(s, echo)
		return key, true
	}
}

// classifyKey turns the bytes of one raw keypress into a command answer and
// the text to echo. It reports false for keys that do not answer the prompt.
func classifyKey(chunk []byte) (key, echo string, ok bool) {
	switch b := chunk[0]; {
	case b == '\x03' || b == '\x04': // Ctrl-C / Ctrl-D
		return string(KeyQuit), string(KeyQuit), true
	case b == '\r' || b == '\n' || b == ' ':
		return "", "", false
	case b == '\x1b':
		// Escape sequences (arrow keys) are not commands.
		return "\x1b", "", true
	}
	r, _ := utf8.DecodeRune(chunk)
	if r != utf8.RuneError && unicode.IsPrint(r) {
		echo = string(r)
	}
	return string(chunk), echo, true
}

// parseCommand accepts exactly one non-blank character, case-insensitive.
func parseCommand(input string) (rune, bool) {
	trimmed := strings.TrimSpace(input)
	if utf8.RuneCountInString(trimmed) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(trimmed)
	return unicode.ToLower(r), true
}
