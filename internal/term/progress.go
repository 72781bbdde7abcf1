package term

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultBarWidth is the character length of the progress bar body.
const DefaultBarWidth = 40

// DrawBar renders a proportional progress bar with a one-line status
// message into the bottom three rows of the surface.
//
// The rows are cleared first so a shorter message fully replaces a longer
// one from the previous call; repeated calls with increasing current values
// produce a visually advancing bar with no residue. A zero total renders an
// empty bar rather than dividing by zero.
func DrawBar(s Surface, current, total int, message string) {
	drawBar(s, current, total, message, DefaultBarWidth)
}

func drawBar(s Surface, current, total int, message string, barWidth int) {
	height, width := s.Size()

	proportion := 0.0
	if total != 0 {
		proportion = float64(current) / float64(total)
	}
	filled := int(float64(barWidth) * proportion)
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled)

	barY := height - 3

	for y := barY; y < height; y++ {
		s.Move(y, 0)
		s.ClearToEnd()
	}

	s.Move(barY, 0)
	s.Print(truncateCells(message, width-1))

	s.Move(barY+1, 0)
	barLine := fmt.Sprintf("[%s] %d%%", bar, int(proportion*100))
	s.Print(truncateCells(barLine, width-1))

	s.Refresh()
}

func truncateCells(text string, width int) string {
	if width < 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "")
}
