package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen implements [Surface] on a tcell terminal screen.
type Screen struct {
	ts            tcell.Screen
	row, col      int
	style         tcell.Style
	cursorVisible bool
}

// NewScreen allocates and initializes a terminal screen. Callers must call
// [Screen.Fini] before the process exits to restore the terminal.
func NewScreen() (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate screen: %w", err)
	}
	if err := ts.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}

	return &Screen{ts: ts, style: tcell.StyleDefault, cursorVisible: true}, nil
}

// Fini restores the terminal to its previous state.
func (s *Screen) Fini() {
	s.ts.Fini()
}

func (s *Screen) Size() (height, width int) {
	w, h := s.ts.Size()
	return h, w
}

func (s *Screen) Clear() {
	s.ts.Clear()
	s.row, s.col = 0, 0
	s.syncCursor()
}

func (s *Screen) Move(row, col int) {
	s.row, s.col = row, col
	s.syncCursor()
}

func (s *Screen) Pos() (row, col int) {
	return s.row, s.col
}

func (s *Screen) Print(text string) {
	h, w := s.Size()
	for _, r := range text {
		if r == '\n' {
			s.row++
			s.col = 0
			continue
		}
		if s.row >= 0 && s.row < h && s.col >= 0 && s.col < w {
			s.ts.SetContent(s.col, s.row, r, nil, s.style)
		}
		s.col += runewidth.RuneWidth(r)
	}
	s.syncCursor()
}

func (s *Screen) ClearToEnd() {
	h, w := s.Size()
	if s.row < 0 || s.row >= h {
		return
	}
	for x := s.col; x < w; x++ {
		s.ts.SetContent(x, s.row, ' ', nil, tcell.StyleDefault)
	}
}

func (s *Screen) Refresh() {
	s.ts.Show()
}

// ReadKey blocks for the next key press. Resize events resynchronize the
// screen and surface as [KeyUnknown] so interaction loops redraw against the
// new dimensions.
func (s *Screen) ReadKey() Key {
	for {
		switch ev := s.ts.PollEvent().(type) {
		case *tcell.EventResize:
			s.ts.Sync()
			return Key{Kind: KeyUnknown}
		case *tcell.EventKey:
			return mapKey(ev)
		}
	}
}

func (s *Screen) HideCursor() {
	s.cursorVisible = false
	s.ts.HideCursor()
}

func (s *Screen) ShowCursor() {
	s.cursorVisible = true
	s.syncCursor()
}

func (s *Screen) SetReverse(on bool) {
	s.style = tcell.StyleDefault.Reverse(on)
}

func (s *Screen) syncCursor() {
	if s.cursorVisible {
		s.ts.ShowCursor(s.col, s.row)
	}
}

func mapKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyEnter:
		return Key{Kind: KeyEnter}
	case tcell.KeyESC:
		return Key{Kind: KeyEscape}
	case tcell.KeyUp:
		return Key{Kind: KeyUp}
	case tcell.KeyDown:
		return Key{Kind: KeyDown}
	case tcell.KeyPgUp:
		return Key{Kind: KeyPageUp}
	case tcell.KeyPgDn:
		return Key{Kind: KeyPageDown}
	case tcell.KeyHome:
		return Key{Kind: KeyHome}
	case tcell.KeyEnd:
		return Key{Kind: KeyEnd}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Key{Kind: KeyBackspace}
	case tcell.KeyRune:
		return Key{Kind: KeyRune, Rune: ev.Rune()}
	default:
		return Key{Kind: KeyUnknown}
	}
}
