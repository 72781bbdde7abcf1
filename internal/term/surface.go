package term

// KeyKind classifies a key press into the vocabulary the interaction core
// understands. Anything else maps to [KeyUnknown] and is ignored.
type KeyKind int

const (
	KeyUnknown KeyKind = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyBackspace
)

// Key is one discrete key event. Rune is set only when Kind is [KeyRune].
type Key struct {
	Kind KeyKind
	Rune rune
}

// Surface is an opaque handle over a fixed-size character grid.
//
// Implementations clip writes that fall outside the grid instead of
// reporting them; rendering is best-effort and must never abort the
// interaction loop. The cursor position advances as text is printed and a
// newline moves it to column zero of the next row.
type Surface interface {
	// Size returns the current grid dimensions. Callers re-query before
	// every draw; the terminal may have been resized since the last call.
	Size() (height, width int)

	// Clear erases the whole grid and homes the cursor.
	Clear()

	// Move places the cursor. Out-of-range positions are tolerated; writes
	// from such positions are dropped.
	Move(row, col int)

	// Pos reports the current cursor position.
	Pos() (row, col int)

	// Print writes text at the cursor, advancing it. Characters past the
	// right edge or below the bottom row are dropped.
	Print(text string)

	// ClearToEnd erases from the cursor to the end of the current row.
	ClearToEnd()

	// Refresh makes all pending writes visible.
	Refresh()

	// ReadKey blocks until the next key press.
	ReadKey() Key

	HideCursor()
	ShowCursor()

	// SetReverse toggles reverse-video styling for subsequent prints.
	SetReverse(on bool)
}
