package term

import "strings"

// Prompt displays promptText at the current cursor position and reads a
// line of input, echoing each character as typed. Backspace erases;
// Enter submits. The result is whitespace-trimmed.
func Prompt(s Surface, promptText string) string {
	return readLine(s, promptText, false)
}

// PasswordPrompt reads a line of input like [Prompt] but echoes '*' for
// every character so the value never appears on screen.
func PasswordPrompt(s Surface, promptText string) string {
	return readLine(s, promptText, true)
}

// WaitKey blocks until any key is pressed, for "press any key" pauses.
func WaitKey(s Surface) {
	s.ReadKey()
}

func readLine(s Surface, promptText string, mask bool) string {
	s.ShowCursor()
	PrintInline(s, promptText)

	var input []rune
	for {
		switch key := s.ReadKey(); key.Kind {
		case KeyEnter:
			s.Print("\n")
			s.Refresh()
			return strings.TrimSpace(string(input))
		case KeyBackspace:
			if len(input) == 0 {
				continue
			}
			input = input[:len(input)-1]
			if row, col := s.Pos(); col > 0 {
				s.Move(row, col-1)
				s.Print(" ")
				s.Move(row, col-1)
				s.Refresh()
			}
		case KeyRune:
			// Printable ASCII only, matching what the masked variant can
			// reliably erase one cell at a time.
			if key.Rune < 0x20 || key.Rune > 0x7e {
				continue
			}
			input = append(input, key.Rune)
			if mask {
				s.Print("*")
			} else {
				s.Print(string(key.Rune))
			}
			s.Refresh()
		}
	}
}
