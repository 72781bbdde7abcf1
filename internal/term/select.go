package term

import "fmt"

// Cancelled is returned by [Select] when the user backs out without
// choosing an item.
const Cancelled = -1

const selectHelp = "[UP/DOWN] scroll, [PgUp/PgDn] faster scroll, " +
	"[Home/End], [Enter] select, [q] or [ESC] to cancel."

// Select presents items as a scrollable single-choice list and blocks until
// the user confirms a choice or cancels.
//
// The cursor row is drawn in reverse video. Four rows are reserved for the
// title, spacing, and help line; everything between scrolls. The screen is
// fully redrawn after every key press and the surface dimensions are
// re-read each iteration, so resizes between presses are picked up. An
// empty item list returns [Cancelled] immediately without reading a key.
func Select(s Surface, items []string, title string) int {
	s.HideCursor()

	if len(items) == 0 {
		return Cancelled
	}

	selected := 0
	top := 0

	for {
		s.Clear()
		height, _ := s.Size()

		Print(s, fmt.Sprintf("=== %s ===\n", title))

		visibleRows := height - 4

		end := top + visibleRows
		if end > len(items) {
			end = len(items)
		}
		if end < top {
			end = top
		}

		for i, line := range items[top:end] {
			if top+i == selected {
				s.SetReverse(true)
				Render(s, line, false, true)
				s.SetReverse(false)
			} else {
				Render(s, line, false, true)
			}
		}

		s.Move(2+visibleRows, 0)
		Render(s, selectHelp, false, true)
		s.Refresh()

		switch key := s.ReadKey(); {
		case key.Kind == KeyEscape || (key.Kind == KeyRune && key.Rune == 'q'):
			return Cancelled
		case key.Kind == KeyEnter:
			return selected
		case key.Kind == KeyUp || (key.Kind == KeyRune && key.Rune == 'k'):
			selected = max(0, selected-1)
			if selected < top {
				top = selected
			}
		case key.Kind == KeyDown || (key.Kind == KeyRune && key.Rune == 'j'):
			selected = min(len(items)-1, selected+1)
			if selected >= top+visibleRows {
				top = selected - visibleRows + 1
			}
		case key.Kind == KeyPageUp:
			selected = max(0, selected-visibleRows)
			if selected < top {
				top = selected
			}
		case key.Kind == KeyPageDown:
			selected = min(len(items)-1, selected+visibleRows)
			if selected >= top+visibleRows {
				top = selected - visibleRows + 1
			}
		case key.Kind == KeyHome:
			selected = 0
			top = 0
		case key.Kind == KeyEnd:
			selected = len(items) - 1
			top = max(0, len(items)-visibleRows)
		}
	}
}
