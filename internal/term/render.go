package term

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Render writes text into the surface without ever overflowing its width.
//
// Embedded newlines split the text into lines processed independently. With
// wrap enabled, a line wider than the surface is emitted in successive
// width-sized segments, each on its own row, and every line ends with a line
// break. With wrap disabled, an overwide line is truncated to width-1 cells
// (the last column is reserved against edge-wrapping artifacts on some
// terminal backends) and emitted without a line break. When trailingNewline
// is set, one blank line follows the content. The surface is refreshed
// before returning.
func Render(s Surface, text string, wrap, trailingNewline bool) {
	_, width := s.Size()

	for _, line := range splitLines(text) {
		if wrap {
			if width > 0 {
				for runewidth.StringWidth(line) > width {
					var segment string
					segment, line = splitWidth(line, width)
					s.Print(segment + "\n")
				}
			}
			s.Print(line + "\n")
		} else {
			if width > 0 && runewidth.StringWidth(line) > width {
				line = runewidth.Truncate(line, width-1, "")
			}
			s.Print(line)
		}
	}

	if trailingNewline {
		s.Print("\n")
	}

	s.Refresh()
}

// Print renders text wrapped, one line per row, followed by a blank line.
func Print(s Surface, text string) {
	Render(s, text, true, true)
}

// PrintInline renders text truncated to the surface width with the cursor
// left at the end of it, for prompts.
func PrintInline(s Surface, text string) {
	Render(s, text, false, false)
}

// splitLines behaves like splitting on line breaks without yielding a
// phantom empty line for trailing-newline input.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// splitWidth cuts line into a head of at most width display cells and the
// remainder.
func splitWidth(line string, width int) (head, tail string) {
	cells := 0
	for i, r := range line {
		rw := runewidth.RuneWidth(r)
		if cells+rw > width {
			return line[:i], line[i:]
		}
		cells += rw
	}
	return line, ""
}
