package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the jornada banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{"     _                        _       ", "#34d399"},
		{"    (_) ___  _ __ _ __   __ _| | __ _ ", "#2dd4bf"},
		{"    | |/ _ \\| '__| '_ \\ / _` | |/ _` |", "#22d3ee"},
		{"    | | (_) | |  | | | | (_| | | (_| |", "#38bdf8"},
		{"   _/ |\\___/|_|  |_| |_|\\__,_|_|\\__,_|", "#60a5fa"},
		{"  |__/                                ", "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  "+version).Faint())
	fmt.Fprintln(w)
}
