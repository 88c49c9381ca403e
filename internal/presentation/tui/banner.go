package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the nfa banner to w using the given color profile.
func PrintBanner(w io.Writer, p termenv.Profile) {
	lines := []struct {
		text  string
		color string
	}{
		{" _ __  / _| __ _ ", "#818cf8"},
		{"| '_ \\| |_ / _` |", "#c084fc"},
		{"| | | |  _| (_| |", "#f472b6"},
		{"|_| |_|_|  \\__,_|", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		if p == termenv.Ascii {
			fmt.Fprintln(w, l.text)
			continue
		}
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
