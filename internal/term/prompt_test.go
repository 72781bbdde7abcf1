package term_test

import (
	"testing"

	"github.com/desertthunder/qbtui/internal/term"
	qbtesting "github.com/desertthunder/qbtui/internal/testing"
)

func TestPrompt(t *testing.T) {
	t.Run("echoes and returns input", func(t *testing.T) {
		s := qbtesting.NewFakeSurface(5, 40)
		s.Keys = append(qbtesting.Runes("admin"), qbtesting.Enter)

		got := term.Prompt(s, "Enter Username: ")
		if got != "admin" {
			t.Errorf("Prompt() = %q, want admin", got)
		}
		if s.Row(0) != "Enter Username: admin" {
			t.Errorf("row 0 = %q", s.Row(0))
		}
		if s.CursorHidden {
			t.Error("prompt should show the cursor")
		}
	})

	t.Run("input is trimmed", func(t *testing.T) {
		s := qbtesting.NewFakeSurface(5, 40)
		s.Keys = append(qbtesting.Runes("  spaced  "), qbtesting.Enter)

		if got := term.Prompt(s, "> "); got != "spaced" {
			t.Errorf("Prompt() = %q, want spaced", got)
		}
	})

	t.Run("backspace erases", func(t *testing.T) {
		s := qbtesting.NewFakeSurface(5, 40)
		s.Keys = append(qbtesting.Runes("abx"),
			term.Key{Kind: term.KeyBackspace},
			term.Key{Kind: term.KeyRune, Rune: 'c'},
			qbtesting.Enter,
		)

		if got := term.Prompt(s, "> "); got != "abc" {
			t.Errorf("Prompt() = %q, want abc", got)
		}
		if s.Row(0) != "> abc" {
			t.Errorf("row 0 = %q", s.Row(0))
		}
	})

	t.Run("backspace on empty input is a no-op", func(t *testing.T) {
		s := qbtesting.NewFakeSurface(5, 40)
		s.Keys = []term.Key{
			{Kind: term.KeyBackspace},
			{Kind: term.KeyRune, Rune: 'a'},
			qbtesting.Enter,
		}

		if got := term.Prompt(s, "> "); got != "a" {
			t.Errorf("Prompt() = %q, want a", got)
		}
	})

	t.Run("non-printable keys are ignored", func(t *testing.T) {
		s := qbtesting.NewFakeSurface(5, 40)
		s.Keys = []term.Key{
			{Kind: term.KeyUp},
			{Kind: term.KeyRune, Rune: 0x07},
			{Kind: term.KeyRune, Rune: 'o'},
			{Kind: term.KeyRune, Rune: 'k'},
			qbtesting.Enter,
		}

		if got := term.Prompt(s, "> "); got != "ok" {
			t.Errorf("Prompt() = %q, want ok", got)
		}
	})
}

func TestPasswordPrompt(t *testing.T) {
	s := qbtesting.NewFakeSurface(5, 40)
	s.Keys = append(qbtesting.Runes("hunter2"), qbtesting.Enter)

	got := term.PasswordPrompt(s, "Enter Password: ")
	if got != "hunter2" {
		t.Errorf("PasswordPrompt() = %q, want hunter2", got)
	}
	if s.Row(0) != "Enter Password: *******" {
		t.Errorf("row 0 = %q, password leaked to screen", s.Row(0))
	}
}

func TestPasswordPromptBackspace(t *testing.T) {
	s := qbtesting.NewFakeSurface(5, 40)
	s.Keys = append(qbtesting.Runes("ab"),
		term.Key{Kind: term.KeyBackspace},
		qbtesting.Enter,
	)

	if got := term.PasswordPrompt(s, "pw: "); got != "a" {
		t.Errorf("PasswordPrompt() = %q, want a", got)
	}
	if s.Row(0) != "pw: *" {
		t.Errorf("row 0 = %q", s.Row(0))
	}
}

func TestWaitKey(t *testing.T) {
	s := qbtesting.NewFakeSurface(5, 40)
	s.Keys = []term.Key{{Kind: term.KeyRune, Rune: 'x'}}

	term.WaitKey(s)
	if s.KeyReads != 1 {
		t.Errorf("WaitKey read %d keys, want 1", s.KeyReads)
	}
}
