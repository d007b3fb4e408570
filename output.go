package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Clue    lipgloss.Style
	Error   lipgloss.Style
}

// newStyles binds the styles to w so output that is not a terminal stays plain.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		Clue:    r.NewStyle().Foreground(lipgloss.Color("229")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

func outWriter(s *ExplorationState) io.Writer {
	if s != nil && s.Out != nil {
		return s.Out
	}
	return os.Stdout
}

func outPrint(s *ExplorationState, a ...any) {
	_, _ = fmt.Fprint(outWriter(s), a...)
}

func outPrintln(s *ExplorationState, a ...any) {
	_, _ = fmt.Fprintln(outWriter(s), a...)
}

func outPrintf(s *ExplorationState, format string, a ...any) {
	_, _ = fmt.Fprintf(outWriter(s), format, a...)
}

func printBanner(w io.Writer) {
	st := newStyles(w)
	_, _ = fmt.Fprintln(w, st.Title.Render("=== Mansão Misteriosa ==="))
	_, _ = fmt.Fprintln(w, "Explore os cômodos e encontre pistas!")
}
