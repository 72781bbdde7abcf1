package term_test

import (
	"fmt"
	"testing"

	"github.com/desertthunder/qbtui/internal/term"
	qbtesting "github.com/desertthunder/qbtui/internal/testing"
)

func items(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("item-%03d", i)
	}
	return out
}

// key is shorthand for a non-rune key event.
func key(kind term.KeyKind) term.Key { return term.Key{Kind: kind} }

func repeat(k term.Key, n int) []term.Key {
	out := make([]term.Key, n)
	for i := range out {
		out[i] = k
	}
	return out
}

func TestSelectEmptyList(t *testing.T) {
	s := qbtesting.NewFakeSurface(14, 60)

	if got := term.Select(s, nil, "Empty"); got != term.Cancelled {
		t.Errorf("Select() = %d, want Cancelled", got)
	}
	if s.KeyReads != 0 {
		t.Errorf("Select read %d keys on an empty list, want 0", s.KeyReads)
	}
	if !s.CursorHidden {
		t.Error("Select should hide the cursor")
	}
}

func TestSelectConfirmAndCancel(t *testing.T) {
	t.Run("enter returns current index", func(t *testing.T) {
		s := qbtesting.NewFakeSurface(14, 60)
		s.Keys = []term.Key{key(term.KeyDown), key(term.KeyDown), qbtesting.Enter}

		if got := term.Select(s, items(5), "Pick"); got != 2 {
			t.Errorf("Select() = %d, want 2", got)
		}
	})

	t.Run("escape cancels", func(t *testing.T) {
		s := qbtesting.NewFakeSurface(14, 60)
		s.Keys = []term.Key{key(term.KeyDown), key(term.KeyEscape)}

		if got := term.Select(s, items(5), "Pick"); got != term.Cancelled {
			t.Errorf("Select() = %d, want Cancelled", got)
		}
	})

	t.Run("q cancels", func(t *testing.T) {
		s := qbtesting.NewFakeSurface(14, 60)
		s.Keys = []term.Key{{Kind: term.KeyRune, Rune: 'q'}}

		if got := term.Select(s, items(5), "Pick"); got != term.Cancelled {
			t.Errorf("Select() = %d, want Cancelled", got)
		}
	})

	t.Run("vi keys move the cursor", func(t *testing.T) {
		s := qbtesting.NewFakeSurface(14, 60)
		s.Keys = []term.Key{
			{Kind: term.KeyRune, Rune: 'j'},
			{Kind: term.KeyRune, Rune: 'j'},
			{Kind: term.KeyRune, Rune: 'k'},
			qbtesting.Enter,
		}

		if got := term.Select(s, items(5), "Pick"); got != 1 {
			t.Errorf("Select() = %d, want 1", got)
		}
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		s := qbtesting.NewFakeSurface(14, 60)
		s.Keys = []term.Key{key(term.KeyUnknown), {Kind: term.KeyRune, Rune: 'x'}, qbtesting.Enter}

		if got := term.Select(s, items(5), "Pick"); got != 0 {
			t.Errorf("Select() = %d, want 0", got)
		}
	})
}

func TestSelectClamping(t *testing.T) {
	t.Run("up at top stays", func(t *testing.T) {
		s := qbtesting.NewFakeSurface(14, 60)
		s.Keys = append(repeat(key(term.KeyUp), 3), qbtesting.Enter)

		if got := term.Select(s, items(5), "Pick"); got != 0 {
			t.Errorf("Select() = %d, want 0", got)
		}
	})

	t.Run("down at bottom stays", func(t *testing.T) {
		s := qbtesting.NewFakeSurface(14, 60)
		s.Keys = append(repeat(key(term.KeyDown), 10), qbtesting.Enter)

		if got := term.Select(s, items(5), "Pick"); got != 4 {
			t.Errorf("Select() = %d, want 4", got)
		}
	})
}

// Height 14 gives visibleRows = 10: row 0 title, row 1 blank, rows 2-11
// items, row 12 help.
func TestSelectViewport(t *testing.T) {
	t.Run("scrolling down keeps cursor visible with minimal shift", func(t *testing.T) {
		s := qbtesting.NewFakeSurface(14, 60)
		s.Keys = append(repeat(key(term.KeyDown), 10), qbtesting.Enter)

		if got := term.Select(s, items(30), "Pick"); got != 10 {
			t.Fatalf("Select() = %d, want 10", got)
		}
		// After the final redraw top must be 1 so item 10 sits on the last
		// visible row.
		if s.Row(2) != "item-001" {
			t.Errorf("first visible row = %q, want item-001", s.Row(2))
		}
		if s.Row(11) != "item-010" {
			t.Errorf("last visible row = %q, want item-010", s.Row(11))
		}
		if !s.RowReversed(11) {
			t.Error("cursor row should be drawn reversed")
		}
	})

	t.Run("home then end", func(t *testing.T) {
		s := qbtesting.NewFakeSurface(14, 60)
		s.Keys = []term.Key{key(term.KeyEnd), key(term.KeyHome), key(term.KeyEnd), qbtesting.Enter}

		if got := term.Select(s, items(30), "Pick"); got != 29 {
			t.Fatalf("Select() = %d, want 29", got)
		}
		// End on 30 items with 10 visible rows puts top at 20.
		if s.Row(2) != "item-020" {
			t.Errorf("first visible row = %q, want item-020", s.Row(2))
		}
		if s.Row(11) != "item-029" {
			t.Errorf("last visible row = %q, want item-029", s.Row(11))
		}
	})

	t.Run("end on short list keeps top at zero", func(t *testing.T) {
		s := qbtesting.NewFakeSurface(14, 60)
		s.Keys = []term.Key{key(term.KeyEnd), qbtesting.Enter}

		if got := term.Select(s, items(4), "Pick"); got != 3 {
			t.Fatalf("Select() = %d, want 3", got)
		}
		if s.Row(2) != "item-000" {
			t.Errorf("first visible row = %q, want item-000", s.Row(2))
		}
	})

	t.Run("nine page-downs over 100 items land on 90", func(t *testing.T) {
		s := qbtesting.NewFakeSurface(14, 60)
		s.Keys = append(repeat(key(term.KeyPageDown), 9), qbtesting.Enter)

		if got := term.Select(s, items(100), "Pick"); got != 90 {
			t.Fatalf("Select() = %d, want 90", got)
		}
		// Paging shifts the viewport minimally, like a plain down with a
		// bigger step: the cursor lands on the last visible row, so top is
		// 90 - 10 + 1.
		if s.Row(2) != "item-081" {
			t.Errorf("first visible row = %q, want item-081", s.Row(2))
		}
		if s.Row(11) != "item-090" {
			t.Errorf("last visible row = %q, want item-090", s.Row(11))
		}
		if !s.RowReversed(11) {
			t.Error("cursor row should be drawn reversed")
		}
	})

	t.Run("page-down overshoot clamps to last item", func(t *testing.T) {
		s := qbtesting.NewFakeSurface(14, 60)
		s.Keys = append(repeat(key(term.KeyPageDown), 15), qbtesting.Enter)

		if got := term.Select(s, items(100), "Pick"); got != 99 {
			t.Errorf("Select() = %d, want 99", got)
		}
	})

	t.Run("page-up returns toward the top", func(t *testing.T) {
		s := qbtesting.NewFakeSurface(14, 60)
		s.Keys = []term.Key{key(term.KeyEnd), key(term.KeyPageUp), key(term.KeyPageUp), qbtesting.Enter}

		// 99 - 10 - 10
		if got := term.Select(s, items(100), "Pick"); got != 79 {
			t.Errorf("Select() = %d, want 79", got)
		}
	})

	t.Run("long items are truncated not wrapped", func(t *testing.T) {
		s := qbtesting.NewFakeSurface(14, 20)
		s.Keys = []term.Key{qbtesting.Enter}

		long := []string{"0123456789012345678901234567890123456789"}
		if got := term.Select(s, long, "Pick"); got != 0 {
			t.Fatalf("Select() = %d, want 0", got)
		}
		if got := len(s.Row(2)); got != 19 {
			t.Errorf("item row width = %d, want 19", got)
		}
		if s.Row(3) != "" {
			t.Errorf("row 3 = %q, wrapped item leaked", s.Row(3))
		}
	})

	t.Run("title drawn every frame", func(t *testing.T) {
		s := qbtesting.NewFakeSurface(14, 60)
		s.Keys = []term.Key{key(term.KeyDown), qbtesting.Enter}

		term.Select(s, items(5), "Remove a Tracker")
		if s.Row(0) != "=== Remove a Tracker ===" {
			t.Errorf("title row = %q", s.Row(0))
		}
		if !s.Contains("[UP/DOWN] scroll") {
			t.Error("help line missing")
		}
	})
}

// The viewport invariants must hold after any sequence of navigation keys:
// the cursor stays inside [top, top+visibleRows) and both indexes stay in
// range. The Fake surface exposes them through what is drawn: the reversed
// row must always be on screen.
func TestSelectInvariantsUnderRandomWalk(t *testing.T) {
	walk := []term.KeyKind{
		term.KeyDown, term.KeyDown, term.KeyPageDown, term.KeyUp,
		term.KeyPageDown, term.KeyPageDown, term.KeyHome, term.KeyPageUp,
		term.KeyEnd, term.KeyUp, term.KeyUp, term.KeyPageUp,
		term.KeyDown, term.KeyEnd, term.KeyPageDown,
	}

	for _, n := range []int{1, 3, 9, 10, 11, 25, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			s := qbtesting.NewFakeSurface(14, 60)
			for _, k := range walk {
				s.Keys = append(s.Keys, key(k))
			}
			s.Keys = append(s.Keys, qbtesting.Enter)

			got := term.Select(s, items(n), "Pick")
			if got < 0 || got >= n {
				t.Fatalf("Select() = %d, out of range [0,%d)", got, n)
			}

			reversed := -1
			for y := 2; y <= 11; y++ {
				if s.RowReversed(y) {
					reversed = y
					break
				}
			}
			if reversed == -1 {
				t.Fatal("cursor row not visible after walk")
			}
			if want := fmt.Sprintf("item-%03d", got); s.Row(reversed) != want {
				t.Errorf("reversed row = %q, want %q", s.Row(reversed), want)
			}
		})
	}
}
